package entity

import (
	"fmt"
	"time"

	"clinic-booking-api/pkg/apperror"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPlanned   AppointmentStatus = "planned"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPlanned, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment links a patient with a doctor at a point in time
type Appointment struct {
	ID        int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DateTime  time.Time         `gorm:"not null;index" json:"date_time"`
	Status    AppointmentStatus `gorm:"type:varchar(16);not null;default:'planned';index" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient PatientDetails `gorm:"foreignKey:PatientID;references:UserID" json:"patient,omitempty"`
	Doctor  DoctorDetails  `gorm:"foreignKey:DoctorID;references:UserID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsTerminal reports whether no further transitions are possible
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCancelled
}

// TransitionTo moves a planned appointment to completed or cancelled.
func (a *Appointment) TransitionTo(to AppointmentStatus) error {
	if !to.Valid() {
		return apperror.Validation("status", fmt.Sprintf("%q is not a valid status", to))
	}
	if a.IsTerminal() {
		return apperror.Validation("status", fmt.Sprintf("appointment is already %s", a.Status))
	}
	if to == AppointmentStatusPlanned {
		return apperror.Validation("status", "appointment is already planned")
	}
	a.Status = to
	return nil
}
