package handler

import (
	"net/http"

	"pet-census-api/internal/usecase"
	"pet-census-api/pkg/response"
)

type OwnerHandler struct {
	ownerUsecase usecase.OwnerUsecase
}

func NewOwnerHandler(ownerUsecase usecase.OwnerUsecase) *OwnerHandler {
	return &OwnerHandler{ownerUsecase: ownerUsecase}
}

func (h *OwnerHandler) GetCurrentOwner(w http.ResponseWriter, r *http.Request) {
	owner, err := h.ownerUsecase.GetCurrentOwner(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		default:
			response.InternalServerError(w, "Failed to get owner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Owner retrieved successfully", owner)
}

func (h *OwnerHandler) ListOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.ownerUsecase.ListOwners(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list owners")
		return
	}

	response.Success(w, http.StatusOK, "Owners retrieved successfully", owners)
}

func (h *OwnerHandler) ListVeterinarians(w http.ResponseWriter, r *http.Request) {
	veterinarians, err := h.ownerUsecase.ListVeterinarians(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list veterinarians")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarians retrieved successfully", veterinarians)
}
