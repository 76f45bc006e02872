package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestFeedbackValidate(t *testing.T) {
	tests := []struct {
		name    string
		fb      Feedback
		wantErr bool
	}{
		{"rating only", Feedback{Rating: intPtr(4)}, false},
		{"comment only", Feedback{Comment: strPtr("great doctor")}, false},
		{"both", Feedback{Rating: intPtr(5), Comment: strPtr("ok")}, false},
		{"neither", Feedback{}, true},
		{"blank comment", Feedback{Comment: strPtr("   ")}, true},
		{"rating out of range", Feedback{Rating: intPtr(6)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fb.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAverageRating(t *testing.T) {
	// ratings 3, 4, 5 plus one comment-only row
	stats := RatingStats{DoctorID: uuid.New(), RatingSum: 12, RatedCount: 3, FeedbackCount: 4}

	avg := stats.AverageRating()
	if assert.NotNil(t, avg) {
		assert.Equal(t, 4.0, *avg)
	}
	assert.Equal(t, int64(4), stats.CommentCount())
}

func TestAverageRating_NoRatings(t *testing.T) {
	stats := RatingStats{DoctorID: uuid.New(), FeedbackCount: 1}

	assert.Nil(t, stats.AverageRating())
	assert.Equal(t, int64(1), stats.CommentCount())
	assert.Nil(t, RatingStats{}.AverageRating())
}

func TestAverageRating_RoundsToOneDecimal(t *testing.T) {
	// 4 + 4 + 5 = 13 / 3 = 4.333...
	stats := RatingStats{RatingSum: 13, RatedCount: 3}
	assert.Equal(t, 4.3, *stats.AverageRating())

	// 4 + 5 = 9 / 2 = 4.5
	stats = RatingStats{RatingSum: 9, RatedCount: 2}
	assert.Equal(t, 4.5, *stats.AverageRating())

	// 1 + 2 + 2 + 2 + 2 + 2 = 11 / 6 = 1.8333...
	stats = RatingStats{RatingSum: 11, RatedCount: 6}
	assert.Equal(t, 1.8, *stats.AverageRating())
}
