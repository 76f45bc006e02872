package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAccountRequest is used by admins to create an account of any role.
type CreateAccountRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=150"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Role           string `json:"role" validate:"required,oneof=admin doctor patient"`
	FirstName      string `json:"first_name" validate:"omitempty,max=150"`
	LastName       string `json:"last_name" validate:"omitempty,max=150"`
	Age            *int   `json:"age" validate:"omitempty,gte=0,lte=100"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,e164"`
	ProfilePicture string `json:"profile_picture" validate:"omitempty,max=512"`
}

// ReplaceAccountRequest is the full representation accepted by PUT.
type ReplaceAccountRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=150"`
	Email          string `json:"email" validate:"required,email"`
	FirstName      string `json:"first_name" validate:"max=150"`
	LastName       string `json:"last_name" validate:"max=150"`
	Age            *int   `json:"age" validate:"omitempty,gte=0,lte=100"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,e164"`
	ProfilePicture string `json:"profile_picture" validate:"omitempty,max=512"`
}

// UpdateAccountRequest is the partial representation accepted by PATCH.
type UpdateAccountRequest struct {
	Username       *string `json:"username" validate:"omitempty,min=3,max=150"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password" validate:"omitempty,min=8"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=150"`
	LastName       *string `json:"last_name" validate:"omitempty,max=150"`
	Age            *int    `json:"age" validate:"omitempty,gte=0,lte=100"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,e164"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,max=512"`
}

// Response DTOs

type AccountResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Age            *int      `json:"age"`
	PhoneNumber    string    `json:"phone_number"`
	ProfilePicture string    `json:"profile_picture"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PersonName is the compact account shape embedded in appointments,
// records and feedback.
type PersonName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PatientRef wraps the patient's name the way nested patient objects render.
type PatientRef struct {
	User PersonName `json:"user"`
}
