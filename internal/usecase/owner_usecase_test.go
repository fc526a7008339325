package usecase

import (
	"testing"

	"pet-census-api/internal/domain/entity"
	"pet-census-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentOwner(t *testing.T) {
	db := newTestDB(t)
	uc := NewOwnerUsecase(db, newTestLogger(), repository.NewOwnerRepository())

	owner := seedOwner(t, db, "ana", entity.RoleClient)

	got, err := uc.GetCurrentOwner(authCtx(owner.ID, entity.RoleClient))
	require.NoError(t, err)
	assert.Equal(t, owner.Email, got.Email)
}

func TestListVeterinariansOnlyEnabledVets(t *testing.T) {
	db := newTestDB(t)
	uc := NewOwnerUsecase(db, newTestLogger(), repository.NewOwnerRepository())

	seedOwner(t, db, "client", entity.RoleClient)
	vet := seedOwner(t, db, "vet", entity.RoleVeterinarian)
	retired := seedOwner(t, db, "retired-vet", entity.RoleVeterinarian)
	require.NoError(t, db.Model(retired).Update("status", entity.StatusDisabled).Error)

	list, err := uc.ListVeterinarians(authCtx(vet.ID, entity.RoleVeterinarian))
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, vet.ID, list.Veterinarians[0].ID)
}
