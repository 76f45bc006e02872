package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RatingStats is the per-doctor feedback aggregate, computed on read
type RatingStats struct {
	DoctorID      uuid.UUID
	RatingSum     int64
	RatedCount    int64
	FeedbackCount int64
}

// AverageRating is the mean of non-null ratings rounded to one decimal
// place, or nil when the doctor has no rated feedback.
func (s RatingStats) AverageRating() *float64 {
	if s.RatedCount == 0 {
		return nil
	}
	avg := decimal.NewFromInt(s.RatingSum).
		Div(decimal.NewFromInt(s.RatedCount)).
		Round(1)
	f, _ := avg.Float64()
	return &f
}

// CommentCount is the number of feedback rows for the doctor.
func (s RatingStats) CommentCount() int64 {
	return s.FeedbackCount
}
