package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error)
	FindAll(db *gorm.DB, scope entity.ScopeFilter) ([]entity.MedicalRecord, int64, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) error
	Delete(db *gorm.DB, id int) (int64, error)
}
