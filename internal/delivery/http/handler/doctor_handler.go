package handler

import (
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

// ListDoctors handles the public doctor search
// @Summary List doctors
// @Tags Doctors
// @Produce json
// @Param search query string false "Matches price and working days"
// @Param ordering query string false "price or -price"
// @Param price__gt query int false "Minimum price (exclusive)"
// @Param price__lt query int false "Maximum price (exclusive)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size, at most 5"
// @Success 200 {object} response.Response
// @Router /doctors/ [get]
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r, pagination.Doctors)
	q := r.URL.Query()
	query := dto.DoctorListQuery{
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
		PriceGT:  q.Get("price__gt"),
		PriceLT:  q.Get("price__lt"),
	}

	doctors, total, err := h.doctorUsecase.ListDoctors(r.Context(), query, params)
	if err != nil {
		response.FromError(w, err, "Failed to get doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", doctors, params.Meta(total))
}

// GetDoctor handles the public doctor profile
// @Summary Get doctor
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/{id}/ [get]
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// CreateDoctor handles creating doctor (admin only)
// @Summary Create doctor
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDoctorRequest true "Create Doctor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /doctor_create/ [post]
func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	var req dto.CreateDoctorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), actor, &req)
	if err != nil {
		response.FromError(w, err, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}
