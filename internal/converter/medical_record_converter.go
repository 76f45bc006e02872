package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:                   record.ID,
		Patient:              PatientToRef(&record.Patient),
		Doctor:               AccountToPersonName(&record.Doctor.Account),
		Diagnosis:            record.Diagnosis,
		Treatment:            record.Treatment,
		PrescribedMedication: record.PrescribedMedication,
		CreatedAt:            record.CreatedAt.Format(dto.MedicalRecordDateLayout),
	}
}

func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}
