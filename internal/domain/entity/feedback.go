package entity

import (
	"strings"
	"time"

	"clinic-booking-api/pkg/apperror"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a patient's rating and/or comment about a doctor
type Feedback struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Rating    *int      `gorm:"type:smallint" json:"rating,omitempty"`
	Comment   *string   `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient PatientDetails `gorm:"foreignKey:PatientID;references:UserID" json:"patient,omitempty"`
	Doctor  DoctorDetails  `gorm:"foreignKey:DoctorID;references:UserID" json:"doctor,omitempty"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

// Validate enforces that at least one of rating or comment is set.
func (f *Feedback) Validate() error {
	if f.Rating != nil && (*f.Rating < MinRating || *f.Rating > MaxRating) {
		return apperror.Validation("rating", "rating must be between 1 and 5")
	}
	hasComment := f.Comment != nil && strings.TrimSpace(*f.Comment) != ""
	if f.Rating == nil && !hasComment {
		return apperror.ValidationFields(map[string]string{
			"rating":  "Choose at least one of rating or comment",
			"comment": "Choose at least one of rating or comment",
		})
	}
	return nil
}
