package entity

import (
	"github.com/google/uuid"
)

// PatientDetails attaches patient-specific data to an Account
type PatientDetails struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	EmergencyContact string    `gorm:"type:varchar(20);not null" json:"emergency_contact"`
	BloodType        string    `gorm:"type:varchar(16);not null" json:"blood_type"`

	// Relationships
	Account      Account       `gorm:"foreignKey:UserID" json:"account,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID;references:UserID" json:"appointments,omitempty"`
}

func (PatientDetails) TableName() string {
	return "patient_details"
}

var bloodTypes = map[string]bool{
	"A+": true, "A-": true,
	"B+": true, "B-": true,
	"AB+": true, "AB-": true,
	"O+": true, "O-": true,
}

func ValidBloodType(s string) bool {
	return bloodTypes[s]
}
