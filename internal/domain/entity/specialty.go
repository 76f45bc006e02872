package entity

// Specialty is shared between doctors; its name is unique
type Specialty struct {
	ID            int    `gorm:"primaryKey;autoIncrement" json:"id"`
	SpecialtyName string `gorm:"type:varchar(64);uniqueIndex;not null" json:"specialty_name"`

	// Relationships
	Doctors []DoctorDetails `gorm:"many2many:doctor_specialties;joinForeignKey:SpecialtyID;joinReferences:DoctorID" json:"doctors,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}
