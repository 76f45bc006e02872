package handler

import (
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
)

type FeedbackHandler struct {
	feedbackUsecase usecase.FeedbackUsecase
}

func NewFeedbackHandler(feedbackUsecase usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUsecase: feedbackUsecase,
	}
}

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r, pagination.Records)

	feedback, total, err := h.feedbackUsecase.ListFeedback(r.Context(), middleware.GetActorFromContext(r.Context()), params)
	if err != nil {
		response.FromError(w, err, "Failed to get feedback")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Feedback retrieved successfully", feedback, params.Meta(total))
}

func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	feedback, err := h.feedbackUsecase.CreateFeedback(r.Context(), middleware.GetActorFromContext(r.Context()), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create feedback")
		return
	}

	response.Success(w, http.StatusCreated, "Feedback created successfully", feedback)
}

func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	feedback, err := h.feedbackUsecase.GetFeedback(r.Context(), middleware.GetActorFromContext(r.Context()), id)
	if err != nil {
		response.FromError(w, err, "Failed to get feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback retrieved successfully", feedback)
}

func (h *FeedbackHandler) ReplaceFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req dto.ReplaceFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	feedback, err := h.feedbackUsecase.ReplaceFeedback(r.Context(), middleware.GetActorFromContext(r.Context()), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback updated successfully", feedback)
}

func (h *FeedbackHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	feedback, err := h.feedbackUsecase.UpdateFeedback(r.Context(), middleware.GetActorFromContext(r.Context()), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback updated successfully", feedback)
}

func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.feedbackUsecase.DeleteFeedback(r.Context(), middleware.GetActorFromContext(r.Context()), id); err != nil {
		response.FromError(w, err, "Failed to delete feedback")
		return
	}

	response.Empty(w, http.StatusNoContent)
}
