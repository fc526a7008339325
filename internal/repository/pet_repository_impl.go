package repository

import (
	"errors"

	"pet-census-api/internal/domain/entity"
	domainRepo "pet-census-api/internal/domain/repository"

	"gorm.io/gorm"
)

type petRepository struct{}

func NewPetRepository() domainRepo.PetRepository {
	return &petRepository{}
}

func (r *petRepository) Create(db *gorm.DB, pet *entity.Pet) error {
	return db.Create(pet).Error
}

func (r *petRepository) FindByID(db *gorm.DB, id uint) (*entity.Pet, error) {
	var pet entity.Pet
	err := db.Preload("Owner").Where("id = ?", id).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) FindEnabledByOwnerID(db *gorm.DB, ownerID uint) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Preload("Owner").
		Where("owner_id = ? AND status = ?", ownerID, entity.StatusEnabled).
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) FindAllEnabled(db *gorm.DB) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Preload("Owner").
		Where("status = ?", entity.StatusEnabled).
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) FindEnabledLinkedToVeterinarian(db *gorm.DB, veterinarianID uint) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Preload("Owner").
		Joins("JOIN medical_consultations ON medical_consultations.pet_id = pets.id").
		Where("medical_consultations.veterinarian_id = ? AND pets.status = ?", veterinarianID, entity.StatusEnabled).
		Distinct("pets.*").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) Update(db *gorm.DB, pet *entity.Pet) error {
	return db.Save(pet).Error
}

func (r *petRepository) Disable(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Pet{}).
		Where("id = ? AND status != ?", id, entity.StatusDisabled).
		Update("status", entity.StatusDisabled)
	return result.RowsAffected, result.Error
}

func (r *petRepository) DisableByOwnerID(db *gorm.DB, ownerID uint) error {
	return db.Model(&entity.Pet{}).
		Where("owner_id = ?", ownerID).
		Update("status", entity.StatusDisabled).Error
}
