package repository

import (
	"errors"

	"pet-census-api/internal/domain/entity"
	domainRepo "pet-census-api/internal/domain/repository"

	"gorm.io/gorm"
)

type ownerRepository struct{}

func NewOwnerRepository() domainRepo.OwnerRepository {
	return &ownerRepository{}
}

func (r *ownerRepository) Create(db *gorm.DB, owner *entity.Owner) error {
	return db.Create(owner).Error
}

func (r *ownerRepository) FindByID(db *gorm.DB, id uint) (*entity.Owner, error) {
	var owner entity.Owner
	err := db.Where("id = ?", id).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindByIDWithPets(db *gorm.DB, id uint) (*entity.Owner, error) {
	var owner entity.Owner
	err := db.Preload("Pets", "status = ?", entity.StatusEnabled).
		Where("id = ?", id).
		First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindByEmail(db *gorm.DB, email string) (*entity.Owner, error) {
	var owner entity.Owner
	err := db.Where("email = ?", email).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindAll(db *gorm.DB) ([]entity.Owner, error) {
	var owners []entity.Owner
	err := db.Find(&owners).Error
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *ownerRepository) FindAllOrderedByName(db *gorm.DB) ([]entity.Owner, error) {
	var owners []entity.Owner
	err := db.Order("name ASC").Find(&owners).Error
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *ownerRepository) FindEnabledVeterinarians(db *gorm.DB) ([]entity.Owner, error) {
	var vets []entity.Owner
	err := db.Where("role = ? AND status = ?", entity.RoleVeterinarian, entity.StatusEnabled).
		Order("name ASC").
		Find(&vets).Error
	if err != nil {
		return nil, err
	}
	return vets, nil
}

func (r *ownerRepository) Update(db *gorm.DB, owner *entity.Owner) error {
	return db.Save(owner).Error
}

func (r *ownerRepository) UpdateStatus(db *gorm.DB, id uint, status entity.AccountStatus) error {
	return db.Model(&entity.Owner{}).
		Where("id = ?", id).
		Update("status", status).Error
}
