// Package policy holds the pure role-based authorization rules. Functions here
// perform no I/O; facts that come from the database (for example whether a
// consultation links a veterinarian to a pet) are supplied by the caller.
package policy

import (
	"pet-census-api/internal/domain/entity"
)

// CanListPets reports whether the role may list pets at all. Result scoping
// (own pets, linked pets, everything) is applied by the repository query.
func CanListPets(role entity.Role) bool {
	switch role {
	case entity.RoleClient, entity.RoleVeterinarian, entity.RoleSuperadmin:
		return true
	}
	return false
}

// CanViewPet decides view access for a single pet. linked tells whether a
// consultation assigns the actor as veterinarian for this pet.
func CanViewPet(role entity.Role, actorID uint, pet *entity.Pet, linked bool) bool {
	switch role {
	case entity.RoleSuperadmin:
		return true
	case entity.RoleVeterinarian:
		return linked
	case entity.RoleClient:
		return pet.OwnerID == actorID
	}
	return false
}

// CanCreatePet decides creation rights: clients may create for themselves,
// superadmins for any owner, veterinarians never.
func CanCreatePet(role entity.Role, actorID uint, ownerID uint) bool {
	switch role {
	case entity.RoleSuperadmin:
		return true
	case entity.RoleClient:
		return ownerID == actorID
	case entity.RoleVeterinarian:
		return false
	}
	return false
}

// CanUpdatePet decides update rights over an existing pet.
func CanUpdatePet(role entity.Role, actorID uint, pet *entity.Pet) bool {
	switch role {
	case entity.RoleSuperadmin:
		return true
	case entity.RoleClient:
		return pet.OwnerID == actorID
	case entity.RoleVeterinarian:
		return false
	}
	return false
}

// CanDisablePet decides soft-delete rights; same rules as update.
func CanDisablePet(role entity.Role, actorID uint, pet *entity.Pet) bool {
	return CanUpdatePet(role, actorID, pet)
}
