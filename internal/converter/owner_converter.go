package converter

import (
	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/entity"
)

// OwnerToResponse converts an Owner entity to OwnerResponse DTO.
func OwnerToResponse(owner *entity.Owner) *dto.OwnerResponse {
	if owner == nil {
		return nil
	}

	response := &dto.OwnerResponse{
		ID:        owner.ID,
		Name:      owner.Name,
		Email:     owner.Email,
		Address:   owner.Address,
		Phone:     owner.Phone,
		PhotoPath: owner.PhotoPath,
		Location:  owner.Location,
		Role:      string(owner.Role),
		Status:    string(owner.Status),
		CreatedAt: owner.CreatedAt,
		UpdatedAt: owner.UpdatedAt,
	}

	if len(owner.Pets) > 0 {
		response.Pets = PetsToResponses(owner.Pets)
	}

	return response
}

// OwnersToResponses converts a slice of Owner entities to response DTOs.
func OwnersToResponses(owners []entity.Owner) []dto.OwnerResponse {
	responses := make([]dto.OwnerResponse, len(owners))
	for i, owner := range owners {
		resp := OwnerToResponse(&owner)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// OwnerToSummary converts an Owner to the minimal projection used in joins.
func OwnerToSummary(owner *entity.Owner) *dto.OwnerSummary {
	if owner == nil || owner.ID == 0 {
		return nil
	}
	return &dto.OwnerSummary{
		ID:    owner.ID,
		Name:  owner.Name,
		Email: owner.Email,
	}
}

// OwnersToSummaries converts a slice of Owners to minimal projections.
func OwnersToSummaries(owners []entity.Owner) []dto.OwnerSummary {
	summaries := make([]dto.OwnerSummary, len(owners))
	for i, owner := range owners {
		s := OwnerToSummary(&owner)
		if s != nil {
			summaries[i] = *s
		}
	}
	return summaries
}
