package usecase

import (
	"context"
	"strconv"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/pagination"
	"clinic-booking-api/internal/policy"
	"clinic-booking-api/internal/service"
	"clinic-booking-api/pkg/apperror"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrChatNotFound = apperror.NotFound("chat not found")

type ChatUsecase interface {
	ListChats(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.ChatResponse, int64, error)
	CreateChat(ctx context.Context, actor policy.Actor, req *dto.CreateChatRequest) (*dto.ChatResponse, error)
	ListMessages(ctx context.Context, actor policy.Actor, chatID int, page pagination.Params) ([]dto.MessageResponse, int64, error)
	PostMessage(ctx context.Context, actor policy.Actor, chatID int, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
}

type chatUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validate     *validator.CustomValidator
	chatRepo     repository.ChatRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewChatUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	chatRepo repository.ChatRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) ChatUsecase {
	return &chatUsecase{
		db:           db,
		log:          log,
		validate:     validate,
		chatRepo:     chatRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *chatUsecase) ListChats(ctx context.Context, actor policy.Actor, page pagination.Params) ([]dto.ChatResponse, int64, error) {
	scope, err := actorScope(actor, page)
	if err != nil {
		return nil, 0, err
	}

	chats, total, err := u.chatRepo.FindAll(u.db.WithContext(ctx), scope)
	if err != nil {
		u.log.Warnf("Failed to find chats: %+v", err)
		return nil, 0, err
	}

	return converter.ChatsToResponses(chats), total, nil
}

// CreateChat opens a chat between the calling patient and the given doctors.
func (u *chatUsecase) CreateChat(ctx context.Context, actor policy.Actor, req *dto.CreateChatRequest) (*dto.ChatResponse, error) {
	if !policy.CanOpenChat(actor) {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	doctorIDs := make([]uuid.UUID, len(req.DoctorIDs))
	for i, id := range req.DoctorIDs {
		doctorIDs[i] = uuid.MustParse(id)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", actor.UserID, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.Validation("opened_by", "create your patient details before opening a chat")
	}

	count, err := u.doctorRepo.CountByIDs(tx, doctorIDs)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	if count != int64(len(doctorIDs)) {
		return nil, apperror.Validation("doctor_ids", "one or more doctors do not exist")
	}

	chat := &entity.Chat{OpenedByID: actor.UserID}
	if err := u.chatRepo.Create(tx, chat); err != nil {
		u.log.Warnf("Failed to create chat: %+v", err)
		return nil, err
	}
	if err := u.chatRepo.AddParticipants(tx, chat.ID, doctorIDs); err != nil {
		u.log.Warnf("Failed to add chat participants: %+v", err)
		return nil, err
	}

	created, err := u.chatRepo.FindByID(tx, chat.ID)
	if err != nil {
		u.log.Warnf("Failed to reload chat %d: %+v", chat.ID, err)
		return nil, err
	}

	resp := converter.ChatToResponse(created)
	u.auditService.LogCreate(tx, actor, entity.AuditActionChatCreate, "chat", strconv.Itoa(chat.ID), resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *chatUsecase) ListMessages(ctx context.Context, actor policy.Actor, chatID int, page pagination.Params) ([]dto.MessageResponse, int64, error) {
	if !actor.Authenticated {
		return nil, 0, ErrPermissionDenied
	}

	db := u.db.WithContext(ctx)

	if _, err := u.readableChat(db, actor, chatID); err != nil {
		return nil, 0, err
	}

	messages, total, err := u.chatRepo.FindMessages(db, chatID, page.Limit, page.Offset())
	if err != nil {
		u.log.Warnf("Failed to find messages of chat %d: %+v", chatID, err)
		return nil, 0, err
	}

	return converter.MessagesToResponses(messages), total, nil
}

func (u *chatUsecase) PostMessage(ctx context.Context, actor policy.Actor, chatID int, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	if !actor.Authenticated {
		return nil, ErrPermissionDenied
	}
	if err := u.validate.ValidateRequest(req); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ChatID:   chatID,
		AuthorID: actor.UserID,
		Text:     req.Text,
		Image:    req.Image,
		Video:    req.Video,
	}
	if err := message.Validate(); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	chat, err := u.readableChat(tx, actor, chatID)
	if err != nil {
		return nil, err
	}
	if !policy.CanPostMessage(actor, chat) {
		return nil, ErrPermissionDenied
	}

	if err := u.chatRepo.CreateMessage(tx, message); err != nil {
		u.log.Warnf("Failed to create message in chat %d: %+v", chatID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	message.Author = chat.OpenedBy
	return converter.MessageToResponse(message), nil
}

func (u *chatUsecase) readableChat(db *gorm.DB, actor policy.Actor, chatID int) (*entity.Chat, error) {
	chat, err := u.chatRepo.FindByID(db, chatID)
	if err != nil {
		u.log.Warnf("Failed to find chat %d: %+v", chatID, err)
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}
	if !policy.CanReadChat(actor, chat) {
		return nil, ErrPermissionDenied
	}
	return chat, nil
}
