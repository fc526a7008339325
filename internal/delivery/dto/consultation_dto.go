package dto

import (
	"time"
)

// Request DTOs

type CreateConsultationRequest struct {
	PetID          uint   `json:"pet_id" validate:"required,min=1"`
	VeterinarianID uint   `json:"veterinarian_id" validate:"required,min=1"`
	ScheduledAt    string `json:"scheduled_at" validate:"required"`
	Notes          string `json:"notes" validate:"omitempty"`
}

type UpdateConsultationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED CANCELLED"`
}

// Response DTOs

type ConsultationResponse struct {
	ID             uint          `json:"id"`
	PetID          uint          `json:"pet_id"`
	ClientID       uint          `json:"client_id"`
	VeterinarianID uint          `json:"veterinarian_id"`
	ScheduledAt    time.Time     `json:"scheduled_at"`
	Status         string        `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	Pet            *PetSummary   `json:"pet,omitempty"`
	Client         *OwnerSummary `json:"client,omitempty"`
	Veterinarian   *OwnerSummary `json:"veterinarian,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
	Total         int                    `json:"total"`
}
