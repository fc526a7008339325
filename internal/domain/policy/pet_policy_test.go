package policy

import (
	"testing"

	"pet-census-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCanViewPet(t *testing.T) {
	pet := &entity.Pet{OwnerID: 7}

	tests := []struct {
		name    string
		role    entity.Role
		actorID uint
		linked  bool
		want    bool
	}{
		{"owner client", entity.RoleClient, 7, false, true},
		{"other client", entity.RoleClient, 8, false, false},
		{"linked veterinarian", entity.RoleVeterinarian, 3, true, true},
		{"unlinked veterinarian", entity.RoleVeterinarian, 3, false, false},
		{"superadmin", entity.RoleSuperadmin, 99, false, true},
		{"unknown role", entity.Role("auditor"), 7, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewPet(tt.role, tt.actorID, pet, tt.linked))
		})
	}
}

func TestCanCreatePet(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		actorID uint
		ownerID uint
		want    bool
	}{
		{"client for self", entity.RoleClient, 5, 5, true},
		{"client for someone else", entity.RoleClient, 5, 6, false},
		{"veterinarian never creates", entity.RoleVeterinarian, 5, 5, false},
		{"superadmin for anyone", entity.RoleSuperadmin, 1, 42, true},
		{"unknown role", entity.Role(""), 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCreatePet(tt.role, tt.actorID, tt.ownerID))
		})
	}
}

func TestCanUpdatePet(t *testing.T) {
	pet := &entity.Pet{OwnerID: 7}

	assert.True(t, CanUpdatePet(entity.RoleClient, 7, pet))
	assert.False(t, CanUpdatePet(entity.RoleClient, 8, pet))
	assert.False(t, CanUpdatePet(entity.RoleVeterinarian, 7, pet))
	assert.True(t, CanUpdatePet(entity.RoleSuperadmin, 1, pet))
}

func TestCanDisablePetMatchesUpdate(t *testing.T) {
	pet := &entity.Pet{OwnerID: 7}

	for _, role := range []entity.Role{entity.RoleClient, entity.RoleVeterinarian, entity.RoleSuperadmin} {
		for _, actorID := range []uint{1, 7} {
			assert.Equal(t, CanUpdatePet(role, actorID, pet), CanDisablePet(role, actorID, pet))
		}
	}
}

func TestCanListPets(t *testing.T) {
	assert.True(t, CanListPets(entity.RoleClient))
	assert.True(t, CanListPets(entity.RoleVeterinarian))
	assert.True(t, CanListPets(entity.RoleSuperadmin))
	assert.False(t, CanListPets(entity.Role("guest")))
}
