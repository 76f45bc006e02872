package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Patient.Account and Doctor.Account must be loaded.
func AppointmentToResponse(appt *entity.Appointment) *dto.AppointmentResponse {
	if appt == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:       appt.ID,
		Patient:  PatientToRef(&appt.Patient),
		Doctor:   AccountToPersonName(&appt.Doctor.Account),
		DateTime: appt.DateTime.Format(dto.AppointmentDateTimeLayout),
		Status:   string(appt.Status),
	}
}

func AppointmentsToResponses(appts []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appts))
	for i := range appts {
		responses[i] = *AppointmentToResponse(&appts[i])
	}
	return responses
}
