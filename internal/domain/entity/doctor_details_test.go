package entity

import (
	"testing"

	"clinic-booking-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDoctor() *DoctorDetails {
	return &DoctorDetails{
		ShiftStart:  "09:00",
		ShiftEnd:    "17:00",
		WorkingDays: []string{"Monday", "Tuesday"},
		Price:       150,
		Gender:      GenderFemale,
	}
}

func TestAddWorkingDay_SixthDayFails(t *testing.T) {
	d := &DoctorDetails{}
	for _, day := range []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday} {
		require.NoError(t, d.AddWorkingDay(day))
	}

	err := d.AddWorkingDay(Saturday)

	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Len(t, d.WorkingDays, MaxWorkingDays)
}

func TestAddWorkingDay_RejectsDuplicatesAndSunday(t *testing.T) {
	d := &DoctorDetails{}
	require.NoError(t, d.AddWorkingDay(Monday))

	assert.Error(t, d.AddWorkingDay(Monday))
	assert.Error(t, d.AddWorkingDay(Weekday("Sunday")))
	assert.Len(t, d.WorkingDays, 1)
}

func TestDoctorDetailsValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validDoctor().Validate())
	})

	tests := []struct {
		name   string
		mutate func(d *DoctorDetails)
		field  string
	}{
		{"six working days", func(d *DoctorDetails) {
			d.WorkingDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
		}, "working_days"},
		{"no working days", func(d *DoctorDetails) { d.WorkingDays = nil }, "working_days"},
		{"duplicate day", func(d *DoctorDetails) { d.WorkingDays = []string{"Monday", "Monday"} }, "working_days"},
		{"zero price", func(d *DoctorDetails) { d.Price = 0 }, "price"},
		{"bad gender", func(d *DoctorDetails) { d.Gender = "x" }, "gender"},
		{"end before start", func(d *DoctorDetails) { d.ShiftEnd = "08:00" }, "shift_end"},
		{"bad start format", func(d *DoctorDetails) { d.ShiftStart = "9am" }, "shift_start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDoctor()
			tt.mutate(d)

			err := d.Validate()

			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Fields, tt.field)
		})
	}
}

func TestFormatShiftTime(t *testing.T) {
	assert.Equal(t, "09:30", FormatShiftTime("09:30:00"))
	assert.Equal(t, "09:30", FormatShiftTime("09:30"))
}
