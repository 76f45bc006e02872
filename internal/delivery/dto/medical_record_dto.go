package dto

const MedicalRecordDateLayout = "2006-01-02"

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID            string `json:"patient_id" validate:"required,uuid"`
	DoctorID             string `json:"doctor_id" validate:"omitempty,uuid"`
	Diagnosis            string `json:"diagnosis" validate:"required"`
	Treatment            string `json:"treatment" validate:"required"`
	PrescribedMedication string `json:"prescribed_medication" validate:"required,max=64"`
}

type ReplaceMedicalRecordRequest struct {
	Diagnosis            string `json:"diagnosis" validate:"required"`
	Treatment            string `json:"treatment" validate:"required"`
	PrescribedMedication string `json:"prescribed_medication" validate:"required,max=64"`
}

type UpdateMedicalRecordRequest struct {
	Diagnosis            *string `json:"diagnosis" validate:"omitempty,min=1"`
	Treatment            *string `json:"treatment" validate:"omitempty,min=1"`
	PrescribedMedication *string `json:"prescribed_medication" validate:"omitempty,min=1,max=64"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID                   int        `json:"id"`
	Patient              PatientRef `json:"patient"`
	Doctor               PersonName `json:"doctor"`
	Diagnosis            string     `json:"diagnosis"`
	Treatment            string     `json:"treatment"`
	PrescribedMedication string     `json:"prescribed_medication"`
	CreatedAt            string     `json:"created_at"`
}
