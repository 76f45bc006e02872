package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateChatRequest struct {
	DoctorIDs []string `json:"doctor_ids" validate:"required,min=1,unique,dive,uuid"`
}

type CreateMessageRequest struct {
	Text  *string `json:"text" validate:"omitempty"`
	Image *string `json:"image" validate:"omitempty,max=512"`
	Video *string `json:"video" validate:"omitempty,max=512"`
}

// Response DTOs

type ChatParticipant struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type ChatResponse struct {
	ID           int               `json:"id"`
	OpenedBy     PatientRef        `json:"opened_by"`
	Participants []ChatParticipant `json:"participants"`
	CreatedAt    string            `json:"created_at"`
}

type MessageResponse struct {
	ID          int        `json:"id"`
	ChatID      int        `json:"chat_id"`
	Author      PatientRef `json:"author"`
	Text        *string    `json:"text"`
	Image       *string    `json:"image"`
	Video       *string    `json:"video"`
	CreatedDate time.Time  `json:"created_date"`
}
