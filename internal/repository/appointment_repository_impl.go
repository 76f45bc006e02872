package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient.Account").
		Preload("Doctor.Account").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, scope entity.ScopeFilter) ([]entity.Appointment, int64, error) {
	var appointments []entity.Appointment
	var total int64

	if err := applyScope(db.Model(&entity.Appointment{}), scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyScope(db, scope).
		Preload("Patient.Account").
		Preload("Doctor.Account").
		Order("date_time DESC, id DESC").
		Limit(scope.Limit).
		Offset(scope.Offset).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

// UpdateStatus changes status only while the appointment is still planned,
// so two concurrent transitions cannot both succeed.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusPlanned).
		Update("status", status)
	return result.RowsAffected, result.Error
}
