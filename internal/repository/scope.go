package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

// applyScope restricts rows to the patient and/or doctor of the scope.
func applyScope(query *gorm.DB, scope entity.ScopeFilter) *gorm.DB {
	if scope.PatientID != nil {
		query = query.Where("patient_id = ?", *scope.PatientID)
	}
	if scope.DoctorID != nil {
		query = query.Where("doctor_id = ?", *scope.DoctorID)
	}
	return query
}
