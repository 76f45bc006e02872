package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the base identity every actor logs in with. Role-specific data
// lives in the optional DoctorDetails or PatientDetails attachments.
type Account struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID         int       `gorm:"not null;index" json:"role_id"`
	Username       string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"type:text;not null" json:"-"`
	FirstName      string    `gorm:"type:varchar(150)" json:"first_name"`
	LastName       string    `gorm:"type:varchar(150)" json:"last_name"`
	Age            *int      `gorm:"type:smallint" json:"age,omitempty"`
	PhoneNumber    string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	ProfilePicture string    `gorm:"type:varchar(512)" json:"profile_picture,omitempty"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role           Role            `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	DoctorDetails  *DoctorDetails  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"doctor_details,omitempty"`
	PatientDetails *PatientDetails `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"patient_details,omitempty"`
}

func (Account) TableName() string {
	return "accounts"
}

// MaxAge is the upper bound accepted for Account.Age
const MaxAge = 100
