package dto

import (
	"time"
)

// Request DTOs

type CreatePetRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Species         string `json:"species" validate:"required,oneof=dog cat other"`
	Breed           string `json:"breed" validate:"required,max=255"`
	Size            string `json:"size" validate:"required,oneof=small medium large"`
	Age             *int   `json:"age" validate:"required,gte=0"`
	Vaccinated      *bool  `json:"vaccinated" validate:"required"`
	FoodType        string `json:"food_type" validate:"required,max=255"`
	LastVaccination string `json:"last_vaccination" validate:"omitempty,datetime=2006-01-02"`
	Location        string `json:"location" validate:"omitempty,json"`
	// OwnerID is honored for superadmins only; clients always create for
	// themselves.
	OwnerID uint `json:"owner_id" validate:"omitempty"`
}

type UpdatePetRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Species         string `json:"species" validate:"required,oneof=dog cat other"`
	Breed           string `json:"breed" validate:"required,max=255"`
	Size            string `json:"size" validate:"required,oneof=small medium large"`
	Age             *int   `json:"age" validate:"required,gte=0"`
	Vaccinated      *bool  `json:"vaccinated" validate:"required"`
	FoodType        string `json:"food_type" validate:"required,max=255"`
	LastVaccination string `json:"last_vaccination" validate:"omitempty,datetime=2006-01-02"`
	Location        string `json:"location" validate:"omitempty,json"`
}

// Response DTOs

type PetResponse struct {
	ID              uint          `json:"id"`
	Name            string        `json:"name"`
	Species         string        `json:"species"`
	Breed           string        `json:"breed"`
	Size            string        `json:"size"`
	Age             int           `json:"age"`
	Vaccinated      bool          `json:"vaccinated"`
	FoodType        string        `json:"food_type"`
	PhotoPath       string        `json:"photo_path,omitempty"`
	Location        string        `json:"location,omitempty"`
	LastVaccination *string       `json:"last_vaccination,omitempty"`
	OwnerID         uint          `json:"owner_id"`
	Status          string        `json:"status"`
	Owner           *OwnerSummary `json:"owner,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}

// PetSummary is the minimal projection joined into consultation responses.
type PetSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	OwnerID uint   `json:"owner_id"`
}

type VaccinationReportEntry struct {
	PetID           uint    `json:"pet_id"`
	Name            string  `json:"name"`
	Species         string  `json:"species"`
	Vaccinated      bool    `json:"vaccinated"`
	LastVaccination *string `json:"last_vaccination,omitempty"`
	OwnerID         uint    `json:"owner_id"`
	OwnerName       string  `json:"owner_name"`
}

type VaccinationReportResponse struct {
	Entries []VaccinationReportEntry `json:"entries"`
	Total   int                      `json:"total"`
}
