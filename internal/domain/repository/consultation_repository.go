package repository

import (
	"pet-census-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *entity.MedicalConsultation) error
	FindByID(db *gorm.DB, id uint) (*entity.MedicalConsultation, error)
	FindByClientID(db *gorm.DB, clientID uint) ([]entity.MedicalConsultation, error)
	FindByVeterinarianID(db *gorm.DB, veterinarianID uint) ([]entity.MedicalConsultation, error)
	FindAll(db *gorm.DB) ([]entity.MedicalConsultation, error)
	UpdateStatus(db *gorm.DB, id uint, status entity.ConsultationStatus) error
	// ExistsLink reports whether any consultation assigns the veterinarian
	// to the given pet.
	ExistsLink(db *gorm.DB, veterinarianID, petID uint) (bool, error)
}
