package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.PatientDetails) error {
	return db.Omit(clause.Associations).Create(patient).Error
}

func (r *patientRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientDetails, error) {
	var patient entity.PatientDetails
	err := db.Preload("Account").Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.PatientDetails, int64, error) {
	var patients []entity.PatientDetails
	var total int64

	if err := db.Model(&entity.PatientDetails{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Account").
		Order("user_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}
