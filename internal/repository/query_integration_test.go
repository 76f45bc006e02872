package repository

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackCreate_RequiresRatingOrComment(t *testing.T) {
	db := openTestDB(t)
	patientID := newTestPatient(t, db)
	doctorID := newTestDoctor(t, db, 500, "Monday")
	empty := ""

	tests := []struct {
		name    string
		comment *string
	}{
		{name: "nil comment", comment: nil},
		{name: "empty comment", comment: &empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFeedbackRepository().Create(db, &entity.Feedback{PatientID: patientID, DoctorID: doctorID, Comment: tt.comment})
			require.Error(t, err)

			var pgErr *pgconn.PgError
			require.True(t, errors.As(err, &pgErr))
			assert.Equal(t, "23514", pgErr.Code)
			assert.Equal(t, "feedbacks_rating_or_comment_check", pgErr.ConstraintName)
		})
	}
}

func TestFeedbackRatingStats(t *testing.T) {
	db := openTestDB(t)
	repo := NewFeedbackRepository()
	patientID := newTestPatient(t, db)
	rated := newTestDoctor(t, db, 500, "Monday")
	commented := newTestDoctor(t, db, 500, "Tuesday")
	silent := newTestDoctor(t, db, 500, "Wednesday")

	for _, r := range []int{3, 4, 5} {
		rating := r
		require.NoError(t, repo.Create(db, &entity.Feedback{PatientID: patientID, DoctorID: rated, Rating: &rating}))
	}
	comment := "friendly"
	require.NoError(t, repo.Create(db, &entity.Feedback{PatientID: patientID, DoctorID: commented, Comment: &comment}))

	stats, err := repo.RatingStats(db, []uuid.UUID{rated, commented, silent})
	require.NoError(t, err)

	got := stats[rated]
	if assert.NotNil(t, got.AverageRating()) {
		assert.Equal(t, 4.0, *got.AverageRating())
	}
	assert.Equal(t, int64(3), got.CommentCount())

	assert.Nil(t, stats[commented].AverageRating())
	assert.Equal(t, int64(1), stats[commented].CommentCount())

	_, ok := stats[silent]
	assert.False(t, ok)
}

func TestDoctorFindAll_Filters(t *testing.T) {
	db := openTestDB(t)
	repo := NewDoctorRepository()

	// a price window no other row is likely to fall into
	base := 1_000_000 + rand.Intn(100_000)*100
	cheap := newTestDoctor(t, db, base+10, "Monday")
	middle := newTestDoctor(t, db, base+20, "Saturday", "Monday")
	pricey := newTestDoctor(t, db, base+30, "Friday")

	inactive := newTestDoctor(t, db, base+40, "Saturday")
	require.NoError(t, db.Model(&entity.Account{}).Where("id = ?", inactive).Update("is_active", false).Error)

	gt, lt := base, base+100
	ids := func(doctors []entity.DoctorDetails) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(doctors))
		for _, d := range doctors {
			out = append(out, d.UserID)
		}
		return out
	}

	tests := []struct {
		name      string
		filter    entity.DoctorFilter
		want      []uuid.UUID
		wantTotal int64
	}{
		{
			name:      "price ascending",
			filter:    entity.DoctorFilter{PriceGT: &gt, PriceLT: &lt, Ordering: "price"},
			want:      []uuid.UUID{cheap, middle, pricey},
			wantTotal: 3,
		},
		{
			name:      "price descending",
			filter:    entity.DoctorFilter{PriceGT: &gt, PriceLT: &lt, Ordering: "-price"},
			want:      []uuid.UUID{pricey, middle, cheap},
			wantTotal: 3,
		},
		{
			name:      "bounds are exclusive",
			filter:    entity.DoctorFilter{PriceGT: intPtr(base + 10), PriceLT: intPtr(base + 30), Ordering: "price"},
			want:      []uuid.UUID{middle},
			wantTotal: 1,
		},
		{
			name:      "search working days",
			filter:    entity.DoctorFilter{Search: "saturday", PriceGT: &gt, PriceLT: &lt},
			want:      []uuid.UUID{middle},
			wantTotal: 1,
		},
		{
			name:      "every term must match",
			filter:    entity.DoctorFilter{Search: "Saturday, Friday", PriceGT: &gt, PriceLT: &lt},
			want:      []uuid.UUID{},
			wantTotal: 0,
		},
		{
			name:      "search price",
			filter:    entity.DoctorFilter{Search: strconv.Itoa(base + 30), PriceGT: &gt, PriceLT: &lt},
			want:      []uuid.UUID{pricey},
			wantTotal: 1,
		},
		{
			name:      "paged",
			filter:    entity.DoctorFilter{PriceGT: &gt, PriceLT: &lt, Ordering: "price", Offset: 1},
			want:      []uuid.UUID{middle, pricey},
			wantTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.filter.Limit == 0 {
				tt.filter.Limit = 10
			}
			doctors, total, err := repo.FindAll(db, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.want, ids(doctors))
		})
	}
}

func intPtr(i int) *int { return &i }
