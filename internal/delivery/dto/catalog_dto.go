package dto

type CreateDepartmentRequest struct {
	DoctorID       string `json:"doctor_id" validate:"required,uuid"`
	DepartmentName string `json:"department_name" validate:"required,max=64"`
}

type CreateSpecialtyRequest struct {
	SpecialtyName string `json:"specialty_name" validate:"required,max=64"`
}

type DepartmentResponse struct {
	ID             int    `json:"id"`
	DepartmentName string `json:"department_name"`
}

type SpecialtyResponse struct {
	ID            int    `json:"id"`
	SpecialtyName string `json:"specialty_name"`
}
