package entity

import (
	"testing"

	"clinic-booking-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		wantErr bool
	}{
		{"planned to completed", AppointmentStatusPlanned, AppointmentStatusCompleted, false},
		{"planned to cancelled", AppointmentStatusPlanned, AppointmentStatusCancelled, false},
		{"planned to planned", AppointmentStatusPlanned, AppointmentStatusPlanned, true},
		{"completed to cancelled", AppointmentStatusCompleted, AppointmentStatusCancelled, true},
		{"cancelled to completed", AppointmentStatusCancelled, AppointmentStatusCompleted, true},
		{"unknown status", AppointmentStatusPlanned, AppointmentStatus("archived"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}

			err := a.TransitionTo(tt.to)

			if tt.wantErr {
				assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
				assert.Equal(t, tt.from, a.Status)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, a.Status)
			assert.True(t, a.IsTerminal())
		})
	}
}

func TestMessageValidate(t *testing.T) {
	assert.Error(t, (&Message{}).Validate())
	assert.Error(t, (&Message{Text: strPtr(" ")}).Validate())
	assert.NoError(t, (&Message{Image: strPtr("uploads/x.png")}).Validate())
}

func TestSearchTerms(t *testing.T) {
	assert.Equal(t, []string{"Monday", "150"}, SearchTerms(" Monday, 150 "))
	assert.Empty(t, SearchTerms(""))
}
