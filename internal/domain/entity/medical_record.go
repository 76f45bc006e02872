package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is written by a doctor about a patient
type MedicalRecord struct {
	ID                   int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID            uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID             uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Diagnosis            string    `gorm:"type:text;not null" json:"diagnosis"`
	Treatment            string    `gorm:"type:text;not null" json:"treatment"`
	PrescribedMedication string    `gorm:"type:varchar(64);not null" json:"prescribed_medication"`
	CreatedAt            time.Time `gorm:"type:date;not null" json:"created_at"`

	// Relationships
	Patient PatientDetails `gorm:"foreignKey:PatientID;references:UserID" json:"patient,omitempty"`
	Doctor  DoctorDetails  `gorm:"foreignKey:DoctorID;references:UserID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
