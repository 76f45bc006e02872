package repository

import (
	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	return db.Omit(clause.Associations).Create(department).Error
}

func (r *departmentRepository) FindAll(db *gorm.DB, filter entity.NameFilter) ([]entity.Department, int64, error) {
	var departments []entity.Department
	var total int64

	if err := applyNameFilter(db.Model(&entity.Department{}), "department_name", filter.Search).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyNameFilter(db, "department_name", filter.Search).
		Order("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&departments).Error
	if err != nil {
		return nil, 0, err
	}
	return departments, total, nil
}

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

func (r *specialtyRepository) Create(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Omit(clause.Associations).Create(specialty).Error
}

func (r *specialtyRepository) FindAll(db *gorm.DB, filter entity.NameFilter) ([]entity.Specialty, int64, error) {
	var specialties []entity.Specialty
	var total int64

	if err := applyNameFilter(db.Model(&entity.Specialty{}), "specialty_name", filter.Search).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyNameFilter(db, "specialty_name", filter.Search).
		Order("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&specialties).Error
	if err != nil {
		return nil, 0, err
	}
	return specialties, total, nil
}

func (r *specialtyRepository) CountByIDs(db *gorm.DB, ids []int) (int64, error) {
	var count int64
	err := db.Model(&entity.Specialty{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// column is always a package constant, never user input.
func applyNameFilter(query *gorm.DB, column, search string) *gorm.DB {
	for _, term := range entity.SearchTerms(search) {
		query = query.Where(column+" ILIKE ?", "%"+term+"%")
	}
	return query
}
