package usecase

import (
	"context"
	"testing"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/pkg/apperror"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChat_OnlyPatients(t *testing.T) {
	u := NewChatUsecase(nil, newTestLogger(), validator.NewValidator(), nil, nil, nil, nil)
	doctor := policy.NewActor(uuid.New(), entity.RoleIDDoctor)

	_, err := u.CreateChat(context.Background(), doctor, &dto.CreateChatRequest{DoctorIDs: []string{doctor.UserID.String()}})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreateChat_ValidatesDoctorIDs(t *testing.T) {
	u := NewChatUsecase(nil, newTestLogger(), validator.NewValidator(), nil, nil, nil, nil)
	patient := policy.NewActor(uuid.New(), entity.RoleIDPatient)
	id := uuid.NewString()

	_, err := u.CreateChat(context.Background(), patient, &dto.CreateChatRequest{DoctorIDs: []string{id, id}})

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "doctor_ids")
}

func TestPostMessage_NeedsPayload(t *testing.T) {
	u := NewChatUsecase(nil, newTestLogger(), validator.NewValidator(), nil, nil, nil, nil)
	patient := policy.NewActor(uuid.New(), entity.RoleIDPatient)

	_, err := u.PostMessage(context.Background(), patient, 1, &dto.CreateMessageRequest{})

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "text")
}

func TestChatRoutes_RequireAuthentication(t *testing.T) {
	u := NewChatUsecase(nil, newTestLogger(), validator.NewValidator(), nil, nil, nil, nil)
	anon := policy.Anonymous()
	ctx := context.Background()
	page := pagination.Params{Page: 1, Limit: 10}

	_, _, err := u.ListChats(ctx, anon, page)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, _, err = u.ListMessages(ctx, anon, 1, page)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	text := "hello"
	_, err = u.PostMessage(ctx, anon, 1, &dto.CreateMessageRequest{Text: &text})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
