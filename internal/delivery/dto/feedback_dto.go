package dto

// FeedbackCreatedAtLayout renders created_at as e.g. 05-Mar-2025 14:30
const FeedbackCreatedAtLayout = "02-Jan-2006 15:04"

// Request DTOs

// CreateFeedbackRequest needs at least one of rating or comment.
type CreateFeedbackRequest struct {
	DoctorID string  `json:"doctor_id" validate:"required,uuid"`
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment  *string `json:"comment" validate:"omitempty"`
}

type ReplaceFeedbackRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty"`
}

// UpdateFeedbackRequest changes only the fields that are present. Clear
// removes rating or comment explicitly.
type UpdateFeedbackRequest struct {
	Rating  *int     `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string  `json:"comment" validate:"omitempty"`
	Clear   []string `json:"clear" validate:"omitempty,dive,oneof=rating comment"`
}

// Response DTOs

type FeedbackResponse struct {
	ID        int        `json:"id"`
	Patient   PatientRef `json:"patient"`
	Doctor    PersonName `json:"doctor"`
	Rating    *int       `json:"rating"`
	Comment   *string    `json:"comment"`
	CreatedAt string     `json:"created_at"`
}
