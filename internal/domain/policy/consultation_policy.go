package policy

import (
	"pet-census-api/internal/domain/entity"
)

// CanListConsultations reports whether the role may list consultations.
// Clients see only their own (as client), veterinarians only their own
// (as assigned veterinarian); the repository applies the filter.
func CanListConsultations(role entity.Role) bool {
	switch role {
	case entity.RoleClient, entity.RoleVeterinarian, entity.RoleSuperadmin:
		return true
	}
	return false
}

// CanViewConsultation decides view access for a single consultation.
func CanViewConsultation(role entity.Role, actorID uint, c *entity.MedicalConsultation) bool {
	switch role {
	case entity.RoleSuperadmin:
		return true
	case entity.RoleVeterinarian:
		return c.VeterinarianID == actorID
	case entity.RoleClient:
		return c.ClientID == actorID
	}
	return false
}

// CanCreateConsultation decides creation rights: a client may schedule only
// for a pet they own, superadmins for any pet, veterinarians are not a
// creator role.
func CanCreateConsultation(role entity.Role, actorID uint, pet *entity.Pet) bool {
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

// CanUpdateConsultationStatus decides who may transition a consultation:
// only the assigned veterinarian or a superadmin. Clients are always denied,
// ownership notwithstanding.
func CanUpdateConsultationStatus(role entity.Role, actorID uint, c *entity.MedicalConsultation) bool {
	switch role {
	case entity.RoleSuperadmin:
		return true
	case entity.RoleVeterinarian:
		return c.VeterinarianID == actorID
	case entity.RoleClient:
		return false
	}
	return false
}
