package usecase

import (
	"testing"

	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/entity"
	"pet-census-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileUsecase(t *testing.T, db *gorm.DB, tokens *fakeTokenService) ProfileUsecase {
	return NewProfileUsecase(
		db,
		newTestLogger(),
		repository.NewOwnerRepository(),
		repository.NewPetRepository(),
		tokens,
		newTestPhotoStore(t),
	)
}

func TestGetProfile(t *testing.T) {
	db := newTestDB(t)
	uc := newProfileUsecase(t, db, &fakeTokenService{})

	owner := seedOwner(t, db, "ana", entity.RoleClient)
	seedPet(t, db, owner.ID, "Luna")

	profile, err := uc.GetProfile(authCtx(owner.ID, entity.RoleClient))
	require.NoError(t, err)
	assert.Equal(t, owner.Email, profile.Email)
	assert.Len(t, profile.Pets, 1)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	uc := newProfileUsecase(t, db, &fakeTokenService{})

	owner := seedOwner(t, db, "ana", entity.RoleClient)
	other := seedOwner(t, db, "berta", entity.RoleClient)

	t.Run("updates fields", func(t *testing.T) {
		profile, err := uc.UpdateProfile(authCtx(owner.ID, entity.RoleClient), &dto.UpdateProfileRequest{
			Name:    "Ana Maria Gomez",
			Email:   "ana.maria@example.com",
			Address: "Carrera 7 #12-30",
			Phone:   "3017654321",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria Gomez", profile.Name)
		assert.Equal(t, "ana.maria@example.com", profile.Email)
	})

	t.Run("rejects another owner's email", func(t *testing.T) {
		_, err := uc.UpdateProfile(authCtx(owner.ID, entity.RoleClient), &dto.UpdateProfileRequest{
			Name:    "Ana",
			Email:   other.Email,
			Address: "Carrera 7 #12-30",
			Phone:   "3017654321",
		}, nil)
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("keeping the current email is fine", func(t *testing.T) {
		_, err := uc.UpdateProfile(authCtx(other.ID, entity.RoleClient), &dto.UpdateProfileRequest{
			Name:    "Berta",
			Email:   other.Email,
			Address: "Carrera 7 #12-30",
			Phone:   "3017654321",
		}, nil)
		require.NoError(t, err)
	})
}

func TestDisableAccount(t *testing.T) {
	db := newTestDB(t)
	tokens := &fakeTokenService{}
	uc := newProfileUsecase(t, db, tokens)

	owner := seedOwner(t, db, "ana", entity.RoleClient)
	pet := seedPet(t, db, owner.ID, "Luna")

	require.NoError(t, uc.DisableAccount(authCtx(owner.ID, entity.RoleClient)))

	var storedOwner entity.Owner
	require.NoError(t, db.First(&storedOwner, owner.ID).Error)
	assert.Equal(t, entity.StatusDisabled, storedOwner.Status)

	var storedPet entity.Pet
	require.NoError(t, db.First(&storedPet, pet.ID).Error)
	assert.Equal(t, entity.StatusDisabled, storedPet.Status)

	assert.Equal(t, []uint{owner.ID}, tokens.revokedAll)
}
