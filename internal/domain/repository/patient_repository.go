package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.PatientDetails) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientDetails, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.PatientDetails, int64, error)
}
