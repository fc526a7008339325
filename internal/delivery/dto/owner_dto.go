package dto

import (
	"time"
)

// Request DTOs

type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Address  string `json:"address" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,max=50"`
	Location string `json:"location" validate:"omitempty,json"`
}

// Response DTOs

type OwnerResponse struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Address   string        `json:"address"`
	Phone     string        `json:"phone"`
	PhotoPath string        `json:"photo_path,omitempty"`
	Location  string        `json:"location,omitempty"`
	Role      string        `json:"role"`
	Status    string        `json:"status"`
	Pets      []PetResponse `json:"pets,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type OwnerListResponse struct {
	Owners []OwnerResponse `json:"owners"`
	Total  int             `json:"total"`
}

// OwnerSummary is the minimal projection joined into pet and consultation
// responses.
type OwnerSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type VeterinarianListResponse struct {
	Veterinarians []OwnerSummary `json:"veterinarians"`
	Total         int            `json:"total"`
}
