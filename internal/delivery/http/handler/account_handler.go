package handler

import (
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/response"
)

type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
}

func NewAccountHandler(accountUsecase usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
	}
}

// ListAccounts returns the caller's own account
// @Summary List accounts visible to the caller
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /users/ [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, _, err := h.accountUsecase.ListAccounts(r.Context(), middleware.GetActorFromContext(r.Context()))
	if err != nil {
		response.FromError(w, err, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", accounts)
}

// CreateAccount creates an account of any role
// @Summary Create account (admin)
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Create Account Request"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users/ [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.accountUsecase.CreateAccount(r.Context(), middleware.GetActorFromContext(r.Context()), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create user")
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", account)
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	account, err := h.accountUsecase.GetAccount(r.Context(), middleware.GetActorFromContext(r.Context()), id)
	if err != nil {
		response.FromError(w, err, "Failed to get user")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", account)
}

func (h *AccountHandler) ReplaceAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.ReplaceAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.accountUsecase.ReplaceAccount(r.Context(), middleware.GetActorFromContext(r.Context()), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update user")
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", account)
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.accountUsecase.UpdateAccount(r.Context(), middleware.GetActorFromContext(r.Context()), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update user")
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", account)
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.accountUsecase.DeleteAccount(r.Context(), middleware.GetActorFromContext(r.Context()), id); err != nil {
		response.FromError(w, err, "Failed to delete user")
		return
	}

	response.Empty(w, http.StatusNoContent)
}
