package handler

import (
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r, pagination.Records)

	chats, total, err := h.chatUsecase.ListChats(r.Context(), middleware.GetActorFromContext(r.Context()), params)
	if err != nil {
		response.FromError(w, err, "Failed to get chats")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Chats retrieved successfully", chats, params.Meta(total))
}

func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	chat, err := h.chatUsecase.CreateChat(r.Context(), middleware.GetActorFromContext(r.Context()), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create chat")
		return
	}

	response.Success(w, http.StatusCreated, "Chat created successfully", chat)
}

func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	chatID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	params := pagination.ParseParams(r, pagination.Records)

	messages, total, err := h.chatUsecase.ListMessages(r.Context(), middleware.GetActorFromContext(r.Context()), chatID, params)
	if err != nil {
		response.FromError(w, err, "Failed to get messages")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Messages retrieved successfully", messages, params.Meta(total))
}

func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	chatID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}

	var req dto.CreateMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	message, err := h.chatUsecase.PostMessage(r.Context(), middleware.GetActorFromContext(r.Context()), chatID, &req)
	if err != nil {
		response.FromError(w, err, "Failed to post message")
		return
	}

	response.Success(w, http.StatusCreated, "Message posted successfully", message)
}
