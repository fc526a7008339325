package handler

import (
	"net/http"

	"pet-census-api/internal/usecase"
	"pet-census-api/pkg/response"
	"pet-census-api/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetProfile(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	req, photo, err := decodeUpdateProfileRequest(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(r.Context(), req, photo)
	if err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Profile not found")
		case usecase.ErrEmailAlreadyExists:
			response.UnprocessableEntity(w, "Email already exists")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

func (h *ProfileHandler) DisableAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.profileUsecase.DisableAccount(r.Context()); err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Profile not found")
		default:
			response.InternalServerError(w, "Failed to disable account")
		}
		return
	}

	response.Success(w, http.StatusOK, "Account disabled successfully", nil)
}
