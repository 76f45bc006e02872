package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// AccountToResponse converts an Account entity to AccountResponse DTO
func AccountToResponse(account *entity.Account) *dto.AccountResponse {
	if account == nil {
		return nil
	}

	return &dto.AccountResponse{
		ID:             account.ID,
		Username:       account.Username,
		Email:          account.Email,
		FirstName:      account.FirstName,
		LastName:       account.LastName,
		Age:            account.Age,
		PhoneNumber:    account.PhoneNumber,
		ProfilePicture: account.ProfilePicture,
		Role:           entity.RoleName(account.RoleID),
		IsActive:       account.IsActive,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}

func AccountToAuthUser(account *entity.Account) dto.AuthUser {
	return dto.AuthUser{Username: account.Username, Email: account.Email}
}

func AccountToPersonName(account *entity.Account) dto.PersonName {
	return dto.PersonName{FirstName: account.FirstName, LastName: account.LastName}
}

func PatientToRef(patient *entity.PatientDetails) dto.PatientRef {
	return dto.PatientRef{User: AccountToPersonName(&patient.Account)}
}
