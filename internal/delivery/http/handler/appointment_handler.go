package handler

import (
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
	}
}

// ListAppointments lists the caller's appointments, newest first
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Response
// @Router /appointment/ [get]
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r, pagination.Records)

	appointments, total, err := h.appointmentUsecase.ListAppointments(r.Context(), middleware.GetActorFromContext(r.Context()), params)
	if err != nil {
		response.FromError(w, err, "Failed to get appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, params.Meta(total))
}

// CreateAppointment books a planned appointment
// @Summary Create appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /appointment_create/ [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), middleware.GetActorFromContext(r.Context()), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// UpdateAppointmentStatus completes or cancels an appointment
// @Summary Change appointment status
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointment/{id}/ [patch]
func (h *AppointmentHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointmentStatus(r.Context(), middleware.GetActorFromContext(r.Context()), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}
