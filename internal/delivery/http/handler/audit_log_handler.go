package handler

import (
	"net/http"

	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), middleware.GetActorFromContext(r.Context()), int64(auditLogID))
	if err != nil {
		response.FromError(w, err, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r, pagination.Records)

	auditLogs, total, err := h.auditLogUsecase.ListAuditLogs(r.Context(), middleware.GetActorFromContext(r.Context()), params)
	if err != nil {
		response.FromError(w, err, "Failed to get audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs, params.Meta(total))
}
