package dto

// Superadmin account management DTOs.

type CreateUserRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Phone                string `json:"phone" validate:"required,max=50"`
	Address              string `json:"address" validate:"required,max=255"`
	Role                 string `json:"role" validate:"required,oneof=client veterinarian superadmin"`
	Status               string `json:"status" validate:"omitempty,oneof=enabled disabled"`
}

type UpdateUserRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"omitempty,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"omitempty,eqfield=Password"`
	Phone                string `json:"phone" validate:"required,max=50"`
	Address              string `json:"address" validate:"required,max=255"`
	Role                 string `json:"role" validate:"required,oneof=client veterinarian superadmin"`
	Status               string `json:"status" validate:"required,oneof=enabled disabled"`
}
