package handler

import (
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
)

// CatalogHandler serves departments and specialties.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

func (h *CatalogHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r, pagination.Catalog)

	departments, total, err := h.catalogUsecase.ListDepartments(r.Context(), r.URL.Query().Get("search"), params)
	if err != nil {
		response.FromError(w, err, "Failed to get departments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Departments retrieved successfully", departments, params.Meta(total))
}

func (h *CatalogHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r, pagination.Catalog)

	specialties, total, err := h.catalogUsecase.ListSpecialties(r.Context(), r.URL.Query().Get("search"), params)
	if err != nil {
		response.FromError(w, err, "Failed to get specialties")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Specialties retrieved successfully", specialties, params.Meta(total))
}

func (h *CatalogHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	department, err := h.catalogUsecase.CreateDepartment(r.Context(), middleware.GetActorFromContext(r.Context()), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create department")
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

func (h *CatalogHandler) CreateSpecialty(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSpecialtyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	specialty, err := h.catalogUsecase.CreateSpecialty(r.Context(), middleware.GetActorFromContext(r.Context()), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create specialty")
		return
	}

	response.Success(w, http.StatusCreated, "Specialty created successfully", specialty)
}
