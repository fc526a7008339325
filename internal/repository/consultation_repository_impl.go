package repository

import (
	"errors"

	"pet-census-api/internal/domain/entity"
	domainRepo "pet-census-api/internal/domain/repository"

	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.MedicalConsultation) error {
	return db.Create(consultation).Error
}

func (r *consultationRepository) FindByID(db *gorm.DB, id uint) (*entity.MedicalConsultation, error) {
	var consultation entity.MedicalConsultation
	err := db.Preload("Pet").Preload("Client").Preload("Veterinarian").
		Where("id = ?", id).
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindByClientID(db *gorm.DB, clientID uint) ([]entity.MedicalConsultation, error) {
	return r.find(db.Where("client_id = ?", clientID))
}

func (r *consultationRepository) FindByVeterinarianID(db *gorm.DB, veterinarianID uint) ([]entity.MedicalConsultation, error) {
	return r.find(db.Where("veterinarian_id = ?", veterinarianID))
}

func (r *consultationRepository) FindAll(db *gorm.DB) ([]entity.MedicalConsultation, error) {
	return r.find(db)
}

func (r *consultationRepository) find(db *gorm.DB) ([]entity.MedicalConsultation, error) {
	var consultations []entity.MedicalConsultation
	err := db.Preload("Pet").Preload("Client").Preload("Veterinarian").
		Order("scheduled_at DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) UpdateStatus(db *gorm.DB, id uint, status entity.ConsultationStatus) error {
	return db.Model(&entity.MedicalConsultation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *consultationRepository) ExistsLink(db *gorm.DB, veterinarianID, petID uint) (bool, error) {
	var count int64
	err := db.Model(&entity.MedicalConsultation{}).
		Where("veterinarian_id = ? AND pet_id = ?", veterinarianID, petID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
