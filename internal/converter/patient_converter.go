package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

func patientUser(account *entity.Account) dto.PatientUser {
	return dto.PatientUser{
		FirstName:      account.FirstName,
		LastName:       account.LastName,
		Age:            account.Age,
		PhoneNumber:    account.PhoneNumber,
		ProfilePicture: account.ProfilePicture,
	}
}

func PatientToListItem(patient *entity.PatientDetails) dto.PatientListItem {
	return dto.PatientListItem{
		ID:               patient.UserID,
		User:             patientUser(&patient.Account),
		EmergencyContact: patient.EmergencyContact,
		BloodType:        patient.BloodType,
	}
}

func PatientsToListItems(patients []entity.PatientDetails) []dto.PatientListItem {
	items := make([]dto.PatientListItem, len(patients))
	for i := range patients {
		items[i] = PatientToListItem(&patients[i])
	}
	return items
}

func PatientToDetailResponse(patient *entity.PatientDetails) *dto.PatientDetailResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientDetailResponse{
		User:             patientUser(&patient.Account),
		EmergencyContact: patient.EmergencyContact,
		BloodType:        patient.BloodType,
		Role:             entity.RoleName(patient.Account.RoleID),
	}
}
