package dto

// AppointmentDateTimeLayout renders date_time as e.g. 05-March-2025 14:30
const AppointmentDateTimeLayout = "02-January-2006 15:04"

// Request DTOs

// CreateAppointmentRequest takes date_time in RFC 3339. A patient may omit
// patient_id and a doctor may omit doctor_id; both default to the caller.
type CreateAppointmentRequest struct {
	PatientID string `json:"patient_id" validate:"omitempty,uuid"`
	DoctorID  string `json:"doctor_id" validate:"omitempty,uuid"`
	DateTime  string `json:"date_time" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=planned completed cancelled"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planned completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID       int        `json:"id"`
	Patient  PatientRef `json:"patient"`
	Doctor   PersonName `json:"doctor"`
	DateTime string     `json:"date_time"`
	Status   string     `json:"status"`
}
