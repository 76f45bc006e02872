package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// CreateDoctorRequest creates a doctor account together with its details.
type CreateDoctorRequest struct {
	Username          string   `json:"username" validate:"required,min=3,max=150"`
	Email             string   `json:"email" validate:"required,email"`
	Password          string   `json:"password" validate:"required,min=8"`
	FirstName         string   `json:"first_name" validate:"required,max=150"`
	LastName          string   `json:"last_name" validate:"required,max=150"`
	Age               *int     `json:"age" validate:"omitempty,gte=0,lte=100"`
	PhoneNumber       string   `json:"phone_number" validate:"omitempty,e164"`
	ProfilePicture    string   `json:"profile_picture" validate:"omitempty,max=512"`
	ShiftStart        string   `json:"shift_start" validate:"required,hhmm"`
	ShiftEnd          string   `json:"shift_end" validate:"required,hhmm"`
	WorkingDays       []string `json:"working_days" validate:"required,min=1,max=5,unique,dive,weekday"`
	Price             int      `json:"price" validate:"required,gt=0"`
	Experience        *int     `json:"experience" validate:"omitempty,gte=0"`
	Gender            string   `json:"gender" validate:"omitempty,gender"`
	DoctorInformation string   `json:"doctor_information" validate:"omitempty"`
	Departments       []string `json:"departments" validate:"omitempty,dive,required,max=64"`
	SpecialtyIDs      []int    `json:"specialty_ids" validate:"omitempty,unique,dive,gt=0"`
}

// Response DTOs

type NamedDepartment struct {
	DepartmentName string `json:"department_name"`
}

type NamedSpecialty struct {
	SpecialtyName string `json:"specialty_name"`
}

// DoctorListItem is a row of GET /doctors/.
type DoctorListItem struct {
	ID          uuid.UUID         `json:"id"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Specialty   []NamedSpecialty  `json:"specialty"`
	Department  []NamedDepartment `json:"department"`
	Price       int               `json:"price"`
	WorkingDays []string          `json:"working_days"`
	AvgRating   *float64          `json:"avg_rating"`
}

// DoctorDetailResponse is the body of GET /doctor/{id}/.
type DoctorDetailResponse struct {
	ID                uuid.UUID         `json:"id"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	Age               *int              `json:"age"`
	PhoneNumber       string            `json:"phone_number"`
	ProfilePicture    string            `json:"profile_picture"`
	Specialty         []NamedSpecialty  `json:"specialty"`
	Department        []NamedDepartment `json:"department"`
	ShiftStart        string            `json:"shift_start"`
	ShiftEnd          string            `json:"shift_end"`
	WorkingDays       []string          `json:"working_days"`
	Role              string            `json:"role"`
	DoctorInformation string            `json:"doctor_information"`
	Experience        *int              `json:"experience"`
	Gender            string            `json:"gender"`
	Price             int               `json:"price"`
	AvgRating         *float64          `json:"avg_rating"`
	CommentCount      int64             `json:"comment_count"`
}

// DoctorListQuery holds the raw query parameters of GET /doctors/.
type DoctorListQuery struct {
	Search   string
	Ordering string
	PriceGT  string
	PriceLT  string
}
