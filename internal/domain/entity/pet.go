package entity

import (
	"time"
)

// Species is the closed set of pet species.
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}

// PetSize is the closed set of pet sizes.
type PetSize string

const (
	SizeSmall  PetSize = "small"
	SizeMedium PetSize = "medium"
	SizeLarge  PetSize = "large"
)

func (s PetSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Pet is owned by exactly one Owner and is soft-disabled on delete.
type Pet struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Name            string        `gorm:"type:varchar(255);not null" json:"name"`
	Species         Species       `gorm:"type:varchar(20);not null" json:"species"`
	Breed           string        `gorm:"type:varchar(255);not null" json:"breed"`
	Size            PetSize       `gorm:"type:varchar(20);not null" json:"size"`
	Age             int           `gorm:"not null" json:"age"`
	Vaccinated      bool          `gorm:"not null" json:"vaccinated"`
	FoodType        string        `gorm:"type:varchar(255);not null" json:"food_type"`
	PhotoPath       string        `gorm:"type:varchar(255)" json:"photo_path,omitempty"`
	Location        string        `gorm:"type:text" json:"location,omitempty"`
	LastVaccination *time.Time    `gorm:"type:date" json:"last_vaccination,omitempty"`
	OwnerID         uint          `gorm:"not null;index" json:"owner_id"`
	Status          AccountStatus `gorm:"type:varchar(20);not null;default:'enabled';index" json:"status"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner         Owner                 `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Consultations []MedicalConsultation `gorm:"foreignKey:PetID" json:"consultations,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}

// IsDisabled checks whether the pet has been soft-disabled.
func (p *Pet) IsDisabled() bool {
	return p.Status == StatusDisabled
}
