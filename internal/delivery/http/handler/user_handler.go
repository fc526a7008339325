package handler

import (
	"encoding/json"
	"net/http"

	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/usecase"
	"pet-census-api/pkg/response"
	"pet-census-api/pkg/validator"
)

// UserHandler serves the superadmin account management endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.UnprocessableEntity(w, "Email already exists")
		case usecase.ErrInvalidRole, usecase.ErrInvalidStatus:
			response.UnprocessableEntity(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrEmailAlreadyExists:
			response.UnprocessableEntity(w, "Email already exists")
		case usecase.ErrInvalidRole, usecase.ErrInvalidStatus:
			response.UnprocessableEntity(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) DisableUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.userUsecase.DisableUser(r.Context(), userID); err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrCannotDisableSelf:
			response.UnprocessableEntity(w, "You cannot disable your own account")
		default:
			response.InternalServerError(w, "Failed to disable user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User disabled successfully", nil)
}
