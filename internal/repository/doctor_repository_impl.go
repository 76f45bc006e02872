package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.DoctorDetails) error {
	return db.Omit(clause.Associations).Create(doctor).Error
}

func (r *doctorRepository) AddSpecialties(db *gorm.DB, doctorID uuid.UUID, specialtyIDs []int) error {
	if len(specialtyIDs) == 0 {
		return nil
	}
	rows := make([]entity.DoctorSpecialty, 0, len(specialtyIDs))
	for _, id := range specialtyIDs {
		rows = append(rows, entity.DoctorSpecialty{DoctorID: doctorID, SpecialtyID: id})
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorDetails, error) {
	var doctor entity.DoctorDetails
	err := db.Preload("Account").
		Preload("Departments").
		Preload("Specialties").
		Where("user_id = ?", userID).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindAll returns doctors whose account is active, filtered by search terms
// and price range. Each search term must match price or working days.
func (r *doctorRepository) FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.DoctorDetails, int64, error) {
	var doctors []entity.DoctorDetails
	var total int64

	if err := applyDoctorFilter(db.Model(&entity.DoctorDetails{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "doctor_details.user_id ASC"
	switch filter.Ordering {
	case entity.DoctorOrderPrice:
		order = "doctor_details.price ASC, doctor_details.user_id ASC"
	case "-" + entity.DoctorOrderPrice:
		order = "doctor_details.price DESC, doctor_details.user_id ASC"
	}

	err := applyDoctorFilter(db.Model(&entity.DoctorDetails{}), filter).
		Preload("Account").
		Preload("Departments").
		Preload("Specialties").
		Order(order).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) CountByIDs(db *gorm.DB, ids []uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.DoctorDetails{}).Where("user_id IN ?", ids).Count(&count).Error
	return count, err
}

func applyDoctorFilter(query *gorm.DB, filter entity.DoctorFilter) *gorm.DB {
	query = query.
		Joins("JOIN accounts ON accounts.id = doctor_details.user_id").
		Where("accounts.is_active = ?", true)

	for _, term := range entity.SearchTerms(filter.Search) {
		like := "%" + term + "%"
		query = query.Where(
			"(CAST(doctor_details.price AS TEXT) ILIKE ? OR array_to_string(doctor_details.working_days, ',') ILIKE ?)",
			like, like,
		)
	}
	if filter.PriceGT != nil {
		query = query.Where("doctor_details.price > ?", *filter.PriceGT)
	}
	if filter.PriceLT != nil {
		query = query.Where("doctor_details.price < ?", *filter.PriceLT)
	}
	return query
}
