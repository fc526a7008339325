package entity

import (
	"time"
)

// ConsultationStatus represents the status of a medical consultation.
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "PENDING"
	ConsultationStatusConfirmed ConsultationStatus = "CONFIRMED"
	ConsultationStatusCancelled ConsultationStatus = "CANCELLED"
)

func (s ConsultationStatus) Valid() bool {
	switch s {
	case ConsultationStatusPending, ConsultationStatusConfirmed, ConsultationStatusCancelled:
		return true
	}
	return false
}

// MedicalConsultation links a pet, its owning client and an assigned
// veterinarian. client_id is denormalized from the pet's owner at creation.
type MedicalConsultation struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	PetID          uint               `gorm:"not null;index" json:"pet_id"`
	ClientID       uint               `gorm:"not null;index" json:"client_id"`
	VeterinarianID uint               `gorm:"not null;index" json:"veterinarian_id"`
	ScheduledAt    time.Time          `gorm:"not null" json:"scheduled_at"`
	Status         ConsultationStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	Notes          string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pet          Pet   `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Client       Owner `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Veterinarian Owner `gorm:"foreignKey:VeterinarianID" json:"veterinarian,omitempty"`
}

func (MedicalConsultation) TableName() string {
	return "medical_consultations"
}

// IsPending checks if the consultation is still pending.
func (c *MedicalConsultation) IsPending() bool {
	return c.Status == ConsultationStatusPending
}

// IsConfirmed checks if the consultation is confirmed.
func (c *MedicalConsultation) IsConfirmed() bool {
	return c.Status == ConsultationStatusConfirmed
}

// IsCancelled checks if the consultation is cancelled.
func (c *MedicalConsultation) IsCancelled() bool {
	return c.Status == ConsultationStatusCancelled
}

// CanTransitionTo enforces the consultation state diagram:
// PENDING -> CONFIRMED or CANCELLED, CONFIRMED -> CANCELLED,
// CANCELLED is terminal. No transition ever returns to PENDING.
func (c *MedicalConsultation) CanTransitionTo(next ConsultationStatus) bool {
	switch c.Status {
	case ConsultationStatusPending:
		return next == ConsultationStatusConfirmed || next == ConsultationStatusCancelled
	case ConsultationStatusConfirmed:
		return next == ConsultationStatusCancelled
	case ConsultationStatusCancelled:
		return false
	}
	return false
}
