package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(db *gorm.DB, chat *entity.Chat) error
	AddParticipants(db *gorm.DB, chatID int, doctorIDs []uuid.UUID) error
	FindByID(db *gorm.DB, id int) (*entity.Chat, error)
	// FindAll lists chats opened by scope.PatientID or joined by scope.DoctorID.
	FindAll(db *gorm.DB, scope entity.ScopeFilter) ([]entity.Chat, int64, error)
	CreateMessage(db *gorm.DB, message *entity.Message) error
	FindMessages(db *gorm.DB, chatID int, limit, offset int) ([]entity.Message, int64, error)
}
