package entity

import "github.com/google/uuid"

// Department belongs to exactly one doctor
type Department struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID       uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DepartmentName string    `gorm:"type:varchar(64);not null" json:"department_name"`

	// Relationships
	Doctor *DoctorDetails `gorm:"foreignKey:DoctorID;references:UserID" json:"doctor,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}
