package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(db *gorm.DB, department *entity.Department) error
	FindAll(db *gorm.DB, filter entity.NameFilter) ([]entity.Department, int64, error)
}

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	FindAll(db *gorm.DB, filter entity.NameFilter) ([]entity.Specialty, int64, error)
	CountByIDs(db *gorm.DB, ids []int) (int64, error)
}
