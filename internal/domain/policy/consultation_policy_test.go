package policy

import (
	"testing"

	"pet-census-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanViewConsultation(t *testing.T) {
	c := &entity.MedicalConsultation{ClientID: 10, VeterinarianID: 20}

	tests := []struct {
		name    string
		role    entity.Role
		actorID uint
		want    bool
	}{
		{"owning client", entity.RoleClient, 10, true},
		{"other client", entity.RoleClient, 11, false},
		{"assigned veterinarian", entity.RoleVeterinarian, 20, true},
		{"other veterinarian", entity.RoleVeterinarian, 21, false},
		{"superadmin", entity.RoleSuperadmin, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewConsultation(tt.role, tt.actorID, c))
		})
	}
}

func TestCanCreateConsultation(t *testing.T) {
	pet := &entity.Pet{OwnerID: 10}

	assert.True(t, CanCreateConsultation(entity.RoleClient, 10, pet))
	assert.False(t, CanCreateConsultation(entity.RoleClient, 11, pet))
	assert.False(t, CanCreateConsultation(entity.RoleVeterinarian, 10, pet))
	assert.True(t, CanCreateConsultation(entity.RoleSuperadmin, 1, pet))
}

func TestCanUpdateConsultationStatus(t *testing.T) {
	c := &entity.MedicalConsultation{ClientID: 10, VeterinarianID: 20}

	tests := []struct {
		name    string
		role    entity.Role
		actorID uint
		want    bool
	}{
		{"client who booked it is still denied", entity.RoleClient, 10, false},
		{"other client", entity.RoleClient, 11, false},
		{"assigned veterinarian", entity.RoleVeterinarian, 20, true},
		{"other veterinarian", entity.RoleVeterinarian, 21, false},
		{"superadmin", entity.RoleSuperadmin, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanUpdateConsultationStatus(tt.role, tt.actorID, c))
		})
	}
}
