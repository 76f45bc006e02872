package pagination

import (
	"net/http"
	"strconv"

	"clinic-booking-api/pkg/response"
)

const DefaultPage = 1

// Policy describes the page size a list endpoint uses and whether the
// client may change it with page_size.
type Policy struct {
	DefaultSize int
	MaxSize     int
	ClientSize  bool
}

var (
	Doctors  = Policy{DefaultSize: 2, MaxSize: 5, ClientSize: true}
	Patients = Policy{DefaultSize: 2, MaxSize: 2}
	Catalog  = Policy{DefaultSize: 5, MaxSize: 5}
	Records  = Policy{DefaultSize: 10, MaxSize: 50, ClientSize: true}
)

// Params represents pagination query parameters
type Params struct {
	Page  int `json:"page"`  // Current page number (1-based)
	Limit int `json:"limit"` // Number of items per page
}

// ParseParams reads page and page_size from the query. Malformed values
// fall back to defaults and page_size is clamped to the policy maximum.
func ParseParams(r *http.Request, policy Policy) Params {
	p := Params{Page: DefaultPage, Limit: policy.DefaultSize}
	query := r.URL.Query()

	if pageStr := query.Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}

	if policy.ClientSize {
		if sizeStr := query.Get("page_size"); sizeStr != "" {
			if size, err := strconv.Atoi(sizeStr); err == nil && size > 0 {
				p.Limit = size
			}
		}
	}

	p.Validate(policy)
	return p
}

// Validate ensures pagination parameters are valid and sets defaults if needed
func (p *Params) Validate(policy Policy) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = policy.DefaultSize
	}
	if p.Limit > policy.MaxSize {
		p.Limit = policy.MaxSize
	}
}

// Offset returns the SQL OFFSET value based on page and limit
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta creates the response metadata for total matching rows
func (p Params) Meta(total int64) *response.Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	if totalPages < 1 {
		totalPages = 1
	}

	return &response.Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
