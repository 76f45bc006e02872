package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(db *gorm.DB, account *entity.Account) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Account, error)
	FindByUsername(db *gorm.DB, username string) (*entity.Account, error)
	Update(db *gorm.DB, account *entity.Account) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
