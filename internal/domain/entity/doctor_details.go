package entity

import (
	"fmt"
	"time"

	"clinic-booking-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Weekday is a day a doctor can be scheduled on
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// MaxWorkingDays caps how many weekdays a doctor can work
const MaxWorkingDays = 5

func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}

// Gender is an open enumeration rather than a binary flag.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUnspecified Gender = "unspecified"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUnspecified:
		return true
	}
	return false
}

// DoctorDetails attaches doctor-specific data to an Account
type DoctorDetails struct {
	UserID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	ShiftStart        string         `gorm:"type:time;not null" json:"shift_start"`
	ShiftEnd          string         `gorm:"type:time;not null" json:"shift_end"`
	WorkingDays       pq.StringArray `gorm:"type:text[];not null" json:"working_days"`
	Price             int            `gorm:"not null;index" json:"price"`
	Experience        *int           `gorm:"type:smallint" json:"experience,omitempty"`
	Gender            Gender         `gorm:"type:varchar(16);not null;default:'unspecified'" json:"gender"`
	DoctorInformation string         `gorm:"type:text" json:"doctor_information,omitempty"`

	// Relationships
	Account     Account      `gorm:"foreignKey:UserID" json:"account,omitempty"`
	Departments []Department `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"departments,omitempty"`
	Specialties []Specialty  `gorm:"many2many:doctor_specialties;foreignKey:UserID;joinForeignKey:DoctorID;joinReferences:SpecialtyID" json:"specialties,omitempty"`
}

func (DoctorDetails) TableName() string {
	return "doctor_details"
}

// DoctorSpecialty is a row of the doctor/specialty join table
type DoctorSpecialty struct {
	DoctorID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpecialtyID int       `gorm:"primaryKey"`
}

func (DoctorSpecialty) TableName() string {
	return "doctor_specialties"
}

// AddWorkingDay appends day, enforcing the working-day invariants.
func (d *DoctorDetails) AddWorkingDay(day Weekday) error {
	if !day.Valid() {
		return apperror.Validation("working_days", fmt.Sprintf("%q is not a valid working day", day))
	}
	for _, existing := range d.WorkingDays {
		if existing == string(day) {
			return apperror.Validation("working_days", fmt.Sprintf("%s is already a working day", day))
		}
	}
	if len(d.WorkingDays) >= MaxWorkingDays {
		return apperror.Validation("working_days", fmt.Sprintf("working_days must contain at most %d items", MaxWorkingDays))
	}
	d.WorkingDays = append(d.WorkingDays, string(day))
	return nil
}

// Validate checks the structural invariants of the doctor attachment.
func (d *DoctorDetails) Validate() error {
	fields := map[string]string{}

	switch {
	case len(d.WorkingDays) == 0:
		fields["working_days"] = "working_days is required"
	case len(d.WorkingDays) > MaxWorkingDays:
		fields["working_days"] = fmt.Sprintf("working_days must contain at most %d items", MaxWorkingDays)
	default:
		seen := make(map[string]bool, len(d.WorkingDays))
		for _, day := range d.WorkingDays {
			if !Weekday(day).Valid() {
				fields["working_days"] = fmt.Sprintf("%q is not a valid working day", day)
				break
			}
			if seen[day] {
				fields["working_days"] = "working_days must not contain duplicates"
				break
			}
			seen[day] = true
		}
	}

	if d.Price <= 0 {
		fields["price"] = "price must be a positive integer"
	}
	if d.Experience != nil && *d.Experience < 0 {
		fields["experience"] = "experience must not be negative"
	}
	if !d.Gender.Valid() {
		fields["gender"] = "gender must be one of [male female other unspecified]"
	}

	start, startErr := ParseShiftTime(d.ShiftStart)
	if startErr != nil {
		fields["shift_start"] = "shift_start must use the HH:MM format"
	}
	end, endErr := ParseShiftTime(d.ShiftEnd)
	if endErr != nil {
		fields["shift_end"] = "shift_end must use the HH:MM format"
	}
	if startErr == nil && endErr == nil && !end.After(start) {
		fields["shift_end"] = "shift_end must be after shift_start"
	}

	return apperror.ValidationFields(fields)
}

// ParseShiftTime accepts HH:MM or the HH:MM:SS form PostgreSQL returns for time columns.
func ParseShiftTime(s string) (time.Time, error) {
	if t, err := time.Parse("15:04", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04:05", s)
}

// FormatShiftTime normalizes a stored shift time to HH:MM.
func FormatShiftTime(s string) string {
	t, err := ParseShiftTime(s)
	if err != nil {
		return s
	}
	return t.Format("15:04")
}
