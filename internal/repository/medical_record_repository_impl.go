package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Omit(clause.Associations).Create(record).Error
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Preload("Patient.Account").
		Preload("Doctor.Account").
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindAll(db *gorm.DB, scope entity.ScopeFilter) ([]entity.MedicalRecord, int64, error) {
	var records []entity.MedicalRecord
	var total int64

	if err := applyScope(db.Model(&entity.MedicalRecord{}), scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyScope(db, scope).
		Preload("Patient.Account").
		Preload("Doctor.Account").
		Order("created_at DESC, id DESC").
		Limit(scope.Limit).
		Offset(scope.Offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *medicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Omit(clause.Associations).Save(record).Error
}

func (r *medicalRecordRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.MedicalRecord{})
	return result.RowsAffected, result.Error
}
