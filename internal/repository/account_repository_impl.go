package repository

import (
	"errors"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct{}

func NewAccountRepository() domainRepo.AccountRepository {
	return &accountRepository{}
}

func (r *accountRepository) Create(db *gorm.DB, account *entity.Account) error {
	return db.Omit(clause.Associations).Create(account).Error
}

func (r *accountRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := db.Preload("Role").
		Preload("DoctorDetails").
		Preload("PatientDetails").
		Where("id = ?", id).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByUsername(db *gorm.DB, username string) (*entity.Account, error) {
	var account entity.Account
	err := db.Preload("Role").Where("username = ?", username).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// Update writes every column of the account. IsActive is listed
// explicitly so that false is persisted despite the column default.
func (r *accountRepository) Update(db *gorm.DB, account *entity.Account) error {
	return db.Model(account).
		Omit(clause.Associations).
		Select("username", "email", "password", "first_name", "last_name", "age",
			"phone_number", "profile_picture", "is_active", "updated_at").
		Updates(account).Error
}

// Delete removes the account. Details, appointments, records, feedback and
// chats go with it through ON DELETE CASCADE.
func (r *accountRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Account{})
	return result.RowsAffected, result.Error
}
