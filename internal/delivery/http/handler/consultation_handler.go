package handler

import (
	"encoding/json"
	"net/http"

	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/usecase"
	"pet-census-api/pkg/response"
	"pet-census-api/pkg/validator"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

func (h *ConsultationHandler) ListConsultations(w http.ResponseWriter, r *http.Request) {
	consultations, err := h.consultationUsecase.ListConsultations(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You are not allowed to list consultations")
		default:
			response.InternalServerError(w, "Failed to list consultations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", consultations)
}

func (h *ConsultationHandler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.CreateConsultation(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrVeterinarianNotFound:
			response.NotFound(w, "Veterinarian not found")
		case usecase.ErrCannotScheduleForeign:
			response.Forbidden(w, "You can only schedule consultations for your own pets")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You are not allowed to schedule consultations")
		case usecase.ErrNotAVeterinarian:
			response.UnprocessableEntity(w, "Selected user is not a veterinarian")
		case usecase.ErrInvalidScheduledAt:
			response.UnprocessableEntity(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to schedule consultation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consultation scheduled successfully", consultation)
}

func (h *ConsultationHandler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	consultationID, ok := pathID(w, r)
	if !ok {
		return
	}

	consultation, err := h.consultationUsecase.GetConsultation(r.Context(), consultationID)
	if err != nil {
		switch err {
		case usecase.ErrConsultationNotFound:
			response.NotFound(w, "Consultation not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You are not allowed to view this consultation")
		default:
			response.InternalServerError(w, "Failed to get consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", consultation)
}

func (h *ConsultationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	consultationID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateConsultationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.UpdateStatus(r.Context(), consultationID, &req)
	if err != nil {
		switch err {
		case usecase.ErrConsultationNotFound:
			response.NotFound(w, "Consultation not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You are not allowed to update this consultation")
		case usecase.ErrInvalidStatusValue:
			response.UnprocessableEntity(w, err.Error())
		case usecase.ErrInvalidTransition:
			response.UnprocessableEntity(w, "Status transition not allowed")
		default:
			response.InternalServerError(w, "Failed to update consultation status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation status updated successfully", consultation)
}
