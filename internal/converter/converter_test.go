package converter

import (
	"encoding/json"
	"testing"
	"time"

	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentToResponse_DateFormat(t *testing.T) {
	appt := &entity.Appointment{
		ID:       7,
		DateTime: time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC),
		Status:   entity.AppointmentStatusPlanned,
		Patient:  entity.PatientDetails{Account: entity.Account{FirstName: "Ann", LastName: "Lee"}},
		Doctor:   entity.DoctorDetails{Account: entity.Account{FirstName: "Bob", LastName: "Ray"}},
	}

	resp := AppointmentToResponse(appt)

	assert.Equal(t, "05-March-2025 14:30", resp.DateTime)
	assert.Equal(t, "Ann", resp.Patient.User.FirstName)
	assert.Equal(t, "Ray", resp.Doctor.LastName)
	assert.Equal(t, "planned", resp.Status)
}

func TestFeedbackToResponse_DateFormat(t *testing.T) {
	rating := 4
	fb := &entity.Feedback{
		ID:        1,
		Rating:    &rating,
		CreatedAt: time.Date(2025, time.March, 5, 9, 5, 0, 0, time.UTC),
	}

	resp := FeedbackToResponse(fb)

	assert.Equal(t, "05-Mar-2025 09:05", resp.CreatedAt)
	assert.Nil(t, resp.Comment)
}

func TestDoctorToDetailResponse_NoFeedback(t *testing.T) {
	doctor := &entity.DoctorDetails{
		UserID:      uuid.New(),
		ShiftStart:  "09:00:00",
		ShiftEnd:    "17:00:00",
		WorkingDays: []string{"Monday"},
		Price:       100,
		Gender:      entity.GenderMale,
		Departments: []entity.Department{{DepartmentName: "Cardiology"}},
	}

	resp := DoctorToDetailResponse(doctor, entity.RatingStats{})

	assert.Nil(t, resp.AvgRating)
	assert.Equal(t, int64(0), resp.CommentCount)
	assert.Equal(t, "09:00", resp.ShiftStart)
	assert.Equal(t, "doctor", resp.Role)
	assert.Equal(t, "Cardiology", resp.Department[0].DepartmentName)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"avg_rating":null`)
	assert.Contains(t, string(body), `"specialty":[]`)
}

func TestDoctorsToListItems_UsesStats(t *testing.T) {
	withFeedback := entity.DoctorDetails{UserID: uuid.New()}
	without := entity.DoctorDetails{UserID: uuid.New()}
	stats := map[uuid.UUID]entity.RatingStats{
		withFeedback.UserID: {DoctorID: withFeedback.UserID, RatingSum: 12, RatedCount: 3, FeedbackCount: 3},
	}

	items := DoctorsToListItems([]entity.DoctorDetails{withFeedback, without}, stats)

	require.Len(t, items, 2)
	require.NotNil(t, items[0].AvgRating)
	assert.Equal(t, 4.0, *items[0].AvgRating)
	assert.Nil(t, items[1].AvgRating)
	assert.Equal(t, []string{}, items[1].WorkingDays)
}

func TestAccountToResponse_HidesPassword(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Username: "ann", Password: "hash", RoleID: entity.RoleIDPatient}

	body, err := json.Marshal(AccountToResponse(account))

	require.NoError(t, err)
	assert.NotContains(t, string(body), "hash")
	assert.Contains(t, string(body), `"role":"patient"`)
}
