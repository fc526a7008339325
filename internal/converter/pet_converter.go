package converter

import (
	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PetToResponse converts a Pet entity to PetResponse DTO.
func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	response := &dto.PetResponse{
		ID:         pet.ID,
		Name:       pet.Name,
		Species:    string(pet.Species),
		Breed:      pet.Breed,
		Size:       string(pet.Size),
		Age:        pet.Age,
		Vaccinated: pet.Vaccinated,
		FoodType:   pet.FoodType,
		PhotoPath:  pet.PhotoPath,
		Location:   pet.Location,
		OwnerID:    pet.OwnerID,
		Status:     string(pet.Status),
		CreatedAt:  pet.CreatedAt,
		UpdatedAt:  pet.UpdatedAt,
	}

	if pet.LastVaccination != nil {
		formatted := pet.LastVaccination.Format(dateLayout)
		response.LastVaccination = &formatted
	}

	if pet.Owner.ID != 0 {
		response.Owner = OwnerToSummary(&pet.Owner)
	}

	return response
}

// PetsToResponses converts a slice of Pet entities to response DTOs.
func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	responses := make([]dto.PetResponse, len(pets))
	for i, pet := range pets {
		resp := PetToResponse(&pet)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PetToSummary converts a Pet to the minimal projection used in joins.
func PetToSummary(pet *entity.Pet) *dto.PetSummary {
	if pet == nil || pet.ID == 0 {
		return nil
	}
	return &dto.PetSummary{
		ID:      pet.ID,
		Name:    pet.Name,
		Species: string(pet.Species),
		Breed:   pet.Breed,
		OwnerID: pet.OwnerID,
	}
}

// PetsToVaccinationReport converts pets to vaccination report entries.
func PetsToVaccinationReport(pets []entity.Pet) []dto.VaccinationReportEntry {
	entries := make([]dto.VaccinationReportEntry, len(pets))
	for i, pet := range pets {
		entry := dto.VaccinationReportEntry{
			PetID:      pet.ID,
			Name:       pet.Name,
			Species:    string(pet.Species),
			Vaccinated: pet.Vaccinated,
			OwnerID:    pet.OwnerID,
			OwnerName:  pet.Owner.Name,
		}
		if pet.LastVaccination != nil {
			formatted := pet.LastVaccination.Format(dateLayout)
			entry.LastVaccination = &formatted
		}
		entries[i] = entry
	}
	return entries
}
