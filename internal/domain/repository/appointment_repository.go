package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindAll(db *gorm.DB, scope entity.ScopeFilter) ([]entity.Appointment, int64, error)
	// UpdateStatus moves a planned appointment to status. It returns the
	// number of rows changed, 0 when the appointment is no longer planned.
	UpdateStatus(db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error)
}
