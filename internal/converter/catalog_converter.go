package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i, d := range departments {
		responses[i] = dto.DepartmentResponse{ID: d.ID, DepartmentName: d.DepartmentName}
	}
	return responses
}

func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i, s := range specialties {
		responses[i] = dto.SpecialtyResponse{ID: s.ID, SpecialtyName: s.SpecialtyName}
	}
	return responses
}
