package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(db *gorm.DB, feedback *entity.Feedback) error
	FindByID(db *gorm.DB, id int) (*entity.Feedback, error)
	FindAll(db *gorm.DB, scope entity.ScopeFilter) ([]entity.Feedback, int64, error)
	Update(db *gorm.DB, feedback *entity.Feedback) error
	Delete(db *gorm.DB, id int) (int64, error)
	// RatingStats aggregates feedback per doctor. Doctors without feedback
	// are absent from the result.
	RatingStats(db *gorm.DB, doctorIDs []uuid.UUID) (map[uuid.UUID]entity.RatingStats, error)
}
