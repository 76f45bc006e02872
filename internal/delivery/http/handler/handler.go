package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-booking-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// decodeJSON decodes the request body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// pathUUID reads a uuid path variable. Malformed ids cannot match a row and
// are reported as not found.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.NotFound(w, "Not found")
		return uuid.Nil, false
	}
	return id, true
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		response.NotFound(w, "Not found")
		return 0, false
	}
	return id, true
}
