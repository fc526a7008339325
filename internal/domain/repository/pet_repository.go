package repository

import (
	"pet-census-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet) error
	FindByID(db *gorm.DB, id uint) (*entity.Pet, error)
	FindEnabledByOwnerID(db *gorm.DB, ownerID uint) ([]entity.Pet, error)
	FindAllEnabled(db *gorm.DB) ([]entity.Pet, error)
	// FindEnabledLinkedToVeterinarian returns enabled pets that appear in at
	// least one consultation assigned to the given veterinarian.
	FindEnabledLinkedToVeterinarian(db *gorm.DB, veterinarianID uint) ([]entity.Pet, error)
	Update(db *gorm.DB, pet *entity.Pet) error
	// Disable soft-disables a pet and returns the number of affected rows.
	// Disabling an already-disabled pet affects zero rows and is not an error.
	Disable(db *gorm.DB, id uint) (int64, error)
	DisableByOwnerID(db *gorm.DB, ownerID uint) error
}
