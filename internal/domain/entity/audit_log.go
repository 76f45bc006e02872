package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditLog records who changed what. Rows outlive the account they reference.
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Account *Account `gorm:"foreignKey:UserID" json:"account,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON is a jsonb column decoded into a generic map. An empty map is stored
// as SQL NULL.
type JSON map[string]interface{}

func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSON) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("audit metadata: unsupported column type %T", value)
	}

	decoded := JSON{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("audit metadata: %w", err)
	}
	*j = decoded
	return nil
}

// Audit actions
const (
	AuditActionAccountRegister     = "account.register"
	AuditActionAccountLogin        = "account.login"
	AuditActionAccountLogout       = "account.logout"
	AuditActionAccountCreate       = "account.create"
	AuditActionAccountUpdate       = "account.update"
	AuditActionAccountDelete       = "account.delete"
	AuditActionDoctorCreate        = "doctor.create"
	AuditActionPatientCreate       = "patient.create"
	AuditActionDepartmentCreate    = "department.create"
	AuditActionSpecialtyCreate     = "specialty.create"
	AuditActionAppointmentCreate   = "appointment.create"
	AuditActionAppointmentComplete = "appointment.complete"
	AuditActionAppointmentCancel   = "appointment.cancel"
	AuditActionMedicalRecordCreate = "medical_record.create"
	AuditActionMedicalRecordUpdate = "medical_record.update"
	AuditActionMedicalRecordDelete = "medical_record.delete"
	AuditActionFeedbackCreate      = "feedback.create"
	AuditActionFeedbackUpdate      = "feedback.update"
	AuditActionFeedbackDelete      = "feedback.delete"
	AuditActionChatCreate          = "chat.create"
)
