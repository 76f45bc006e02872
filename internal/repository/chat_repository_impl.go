package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type chatRepository struct{}

func NewChatRepository() domainRepo.ChatRepository {
	return &chatRepository{}
}

func (r *chatRepository) Create(db *gorm.DB, chat *entity.Chat) error {
	return db.Omit(clause.Associations).Create(chat).Error
}

func (r *chatRepository) AddParticipants(db *gorm.DB, chatID int, doctorIDs []uuid.UUID) error {
	if len(doctorIDs) == 0 {
		return nil
	}
	rows := make([]entity.ChatParticipant, 0, len(doctorIDs))
	for _, id := range doctorIDs {
		rows = append(rows, entity.ChatParticipant{ChatID: chatID, DoctorID: id})
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *chatRepository) FindByID(db *gorm.DB, id int) (*entity.Chat, error) {
	var chat entity.Chat
	err := db.Preload("OpenedBy.Account").
		Preload("Participants.Account").
		Where("id = ?", id).
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) FindAll(db *gorm.DB, scope entity.ScopeFilter) ([]entity.Chat, int64, error) {
	var chats []entity.Chat
	var total int64

	if err := applyChatScope(db.Model(&entity.Chat{}), scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyChatScope(db, scope).
		Preload("OpenedBy.Account").
		Preload("Participants.Account").
		Order("chats.created_at DESC, chats.id DESC").
		Limit(scope.Limit).
		Offset(scope.Offset).
		Find(&chats).Error
	if err != nil {
		return nil, 0, err
	}
	return chats, total, nil
}

func (r *chatRepository) CreateMessage(db *gorm.DB, message *entity.Message) error {
	return db.Omit(clause.Associations).Create(message).Error
}

func (r *chatRepository) FindMessages(db *gorm.DB, chatID int, limit, offset int) ([]entity.Message, int64, error) {
	var messages []entity.Message
	var total int64

	if err := db.Model(&entity.Message{}).Where("chat_id = ?", chatID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Author.Account").
		Where("chat_id = ?", chatID).
		Order("created_date ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// applyChatScope matches chats opened by the patient or joined by the doctor.
func applyChatScope(query *gorm.DB, scope entity.ScopeFilter) *gorm.DB {
	if scope.PatientID != nil {
		query = query.Where("chats.opened_by_id = ?", *scope.PatientID)
	}
	if scope.DoctorID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM chat_participants cp WHERE cp.chat_id = chats.id AND cp.doctor_id = ?)",
			*scope.DoctorID,
		)
	}
	return query
}
