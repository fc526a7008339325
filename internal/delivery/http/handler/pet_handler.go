package handler

import (
	"net/http"
	"strconv"

	"pet-census-api/internal/usecase"
	"pet-census-api/pkg/response"
	"pet-census-api/pkg/validator"

	"github.com/gorilla/mux"
)

type PetHandler struct {
	petUsecase usecase.PetUsecase
	validator  *validator.CustomValidator
}

func NewPetHandler(petUsecase usecase.PetUsecase, validator *validator.CustomValidator) *PetHandler {
	return &PetHandler{
		petUsecase: petUsecase,
		validator:  validator,
	}
}

func (h *PetHandler) ListPets(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petUsecase.ListPets(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You are not allowed to list pets")
		default:
			response.InternalServerError(w, "Failed to list pets")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

func (h *PetHandler) CreatePet(w http.ResponseWriter, r *http.Request) {
	req, photo, err := decodeCreatePetRequest(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.CreatePet(r.Context(), req, photo)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You are not allowed to register pets")
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		default:
			response.InternalServerError(w, "Failed to register pet")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Pet registered successfully", pet)
}

func (h *PetHandler) GetPet(w http.ResponseWriter, r *http.Request) {
	petID, ok := pathID(w, r)
	if !ok {
		return
	}

	pet, err := h.petUsecase.GetPet(r.Context(), petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You are not allowed to view this pet")
		default:
			response.InternalServerError(w, "Failed to get pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet retrieved successfully", pet)
}

func (h *PetHandler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	petID, ok := pathID(w, r)
	if !ok {
		return
	}

	req, photo, err := decodeUpdatePetRequest(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.UpdatePet(r.Context(), petID, req, photo)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You are not allowed to update this pet")
		default:
			response.InternalServerError(w, "Failed to update pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet updated successfully", pet)
}

func (h *PetHandler) DisablePet(w http.ResponseWriter, r *http.Request) {
	petID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.petUsecase.DisablePet(r.Context(), petID); err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You are not allowed to disable this pet")
		default:
			response.InternalServerError(w, "Failed to disable pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet disabled successfully", nil)
}

func (h *PetHandler) VaccinationReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.petUsecase.VaccinationReport(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You are not allowed to view this report")
		default:
			response.InternalServerError(w, "Failed to build vaccination report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vaccination report retrieved successfully", report)
}

// pathID parses the {id} path variable; writes a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ID", nil)
		return 0, false
	}
	return uint(id), true
}
