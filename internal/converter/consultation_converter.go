package converter

import (
	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/entity"
)

// ConsultationToResponse converts a MedicalConsultation entity to its DTO.
func ConsultationToResponse(consultation *entity.MedicalConsultation) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	response := &dto.ConsultationResponse{
		ID:             consultation.ID,
		PetID:          consultation.PetID,
		ClientID:       consultation.ClientID,
		VeterinarianID: consultation.VeterinarianID,
		ScheduledAt:    consultation.ScheduledAt,
		Status:         string(consultation.Status),
		Notes:          consultation.Notes,
		CreatedAt:      consultation.CreatedAt,
		UpdatedAt:      consultation.UpdatedAt,
	}

	if consultation.Pet.ID != 0 {
		response.Pet = PetToSummary(&consultation.Pet)
	}
	if consultation.Client.ID != 0 {
		response.Client = OwnerToSummary(&consultation.Client)
	}
	if consultation.Veterinarian.ID != 0 {
		response.Veterinarian = OwnerToSummary(&consultation.Veterinarian)
	}

	return response
}

// ConsultationsToResponses converts a slice of consultations to DTOs.
func ConsultationsToResponses(consultations []entity.MedicalConsultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i, consultation := range consultations {
		resp := ConsultationToResponse(&consultation)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
