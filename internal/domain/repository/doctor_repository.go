package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.DoctorDetails) error
	AddSpecialties(db *gorm.DB, doctorID uuid.UUID, specialtyIDs []int) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorDetails, error)
	FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.DoctorDetails, int64, error)
	// CountByIDs returns how many of ids are existing doctors.
	CountByIDs(db *gorm.DB, ids []uuid.UUID) (int64, error)
}
