package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToListItem converts doctor details plus its rating aggregate to a list row
func DoctorToListItem(doctor *entity.DoctorDetails, stats entity.RatingStats) dto.DoctorListItem {
	return dto.DoctorListItem{
		ID:          doctor.UserID,
		FirstName:   doctor.Account.FirstName,
		LastName:    doctor.Account.LastName,
		Specialty:   namedSpecialties(doctor.Specialties),
		Department:  namedDepartments(doctor.Departments),
		Price:       doctor.Price,
		WorkingDays: workingDays(doctor),
		AvgRating:   stats.AverageRating(),
	}
}

// DoctorsToListItems looks up each doctor's stats; doctors without feedback get zero stats
func DoctorsToListItems(doctors []entity.DoctorDetails, stats map[uuid.UUID]entity.RatingStats) []dto.DoctorListItem {
	items := make([]dto.DoctorListItem, len(doctors))
	for i := range doctors {
		items[i] = DoctorToListItem(&doctors[i], stats[doctors[i].UserID])
	}
	return items
}

func DoctorToDetailResponse(doctor *entity.DoctorDetails, stats entity.RatingStats) *dto.DoctorDetailResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorDetailResponse{
		ID:                doctor.UserID,
		FirstName:         doctor.Account.FirstName,
		LastName:          doctor.Account.LastName,
		Age:               doctor.Account.Age,
		PhoneNumber:       doctor.Account.PhoneNumber,
		ProfilePicture:    doctor.Account.ProfilePicture,
		Specialty:         namedSpecialties(doctor.Specialties),
		Department:        namedDepartments(doctor.Departments),
		ShiftStart:        entity.FormatShiftTime(doctor.ShiftStart),
		ShiftEnd:          entity.FormatShiftTime(doctor.ShiftEnd),
		WorkingDays:       workingDays(doctor),
		Role:              entity.RoleDoctor,
		DoctorInformation: doctor.DoctorInformation,
		Experience:        doctor.Experience,
		Gender:            string(doctor.Gender),
		Price:             doctor.Price,
		AvgRating:         stats.AverageRating(),
		CommentCount:      stats.CommentCount(),
	}
}

func workingDays(doctor *entity.DoctorDetails) []string {
	if doctor.WorkingDays == nil {
		return []string{}
	}
	return []string(doctor.WorkingDays)
}

func namedSpecialties(specialties []entity.Specialty) []dto.NamedSpecialty {
	named := make([]dto.NamedSpecialty, len(specialties))
	for i, s := range specialties {
		named[i] = dto.NamedSpecialty{SpecialtyName: s.SpecialtyName}
	}
	return named
}

func namedDepartments(departments []entity.Department) []dto.NamedDepartment {
	named := make([]dto.NamedDepartment, len(departments))
	for i, d := range departments {
		named[i] = dto.NamedDepartment{DepartmentName: d.DepartmentName}
	}
	return named
}
