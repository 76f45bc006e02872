package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	EmergencyContact string `json:"emergency_contact" validate:"required,e164"`
	BloodType        string `json:"blood_type" validate:"required,blood_type"`
}

// Response DTOs

// PatientUser is the account part of a patient representation
type PatientUser struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Age            *int   `json:"age"`
	PhoneNumber    string `json:"phone_number"`
	ProfilePicture string `json:"profile_picture"`
}

type PatientListItem struct {
	ID               uuid.UUID   `json:"id"`
	User             PatientUser `json:"user"`
	EmergencyContact string      `json:"emergency_contact"`
	BloodType        string      `json:"blood_type"`
}

type PatientDetailResponse struct {
	User             PatientUser `json:"user"`
	EmergencyContact string      `json:"emergency_contact"`
	BloodType        string      `json:"blood_type"`
	Role             string      `json:"role"`
}
