package repository

import (
	"pet-census-api/internal/domain/entity"

	"gorm.io/gorm"
)

type OwnerRepository interface {
	Create(db *gorm.DB, owner *entity.Owner) error
	FindByID(db *gorm.DB, id uint) (*entity.Owner, error)
	FindByIDWithPets(db *gorm.DB, id uint) (*entity.Owner, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Owner, error)
	FindAll(db *gorm.DB) ([]entity.Owner, error)
	FindAllOrderedByName(db *gorm.DB) ([]entity.Owner, error)
	FindEnabledVeterinarians(db *gorm.DB) ([]entity.Owner, error)
	Update(db *gorm.DB, owner *entity.Owner) error
	UpdateStatus(db *gorm.DB, id uint, status entity.AccountStatus) error
}
