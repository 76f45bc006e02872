package handler

import (
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
	}
}

func (h *MedicalRecordHandler) ListMedicalRecords(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r, pagination.Records)

	records, total, err := h.recordUsecase.ListMedicalRecords(r.Context(), middleware.GetActorFromContext(r.Context()), params)
	if err != nil {
		response.FromError(w, err, "Failed to get medical records")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Medical records retrieved successfully", records, params.Meta(total))
}

func (h *MedicalRecordHandler) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.recordUsecase.CreateMedicalRecord(r.Context(), middleware.GetActorFromContext(r.Context()), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create medical record")
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

func (h *MedicalRecordHandler) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	record, err := h.recordUsecase.GetMedicalRecord(r.Context(), middleware.GetActorFromContext(r.Context()), id)
	if err != nil {
		response.FromError(w, err, "Failed to get medical record")
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

func (h *MedicalRecordHandler) ReplaceMedicalRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req dto.ReplaceMedicalRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.recordUsecase.ReplaceMedicalRecord(r.Context(), middleware.GetActorFromContext(r.Context()), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update medical record")
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", record)
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.recordUsecase.UpdateMedicalRecord(r.Context(), middleware.GetActorFromContext(r.Context()), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update medical record")
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", record)
}

func (h *MedicalRecordHandler) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.recordUsecase.DeleteMedicalRecord(r.Context(), middleware.GetActorFromContext(r.Context()), id); err != nil {
		response.FromError(w, err, "Failed to delete medical record")
		return
	}

	response.Empty(w, http.StatusNoContent)
}
