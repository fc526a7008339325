package usecase

import (
	"strings"
	"testing"

	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/entity"
	"pet-census-api/internal/infrastructure/storage"
	"pet-census-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPetUsecase(t *testing.T, db *gorm.DB) PetUsecase {
	return NewPetUsecase(
		db,
		newTestLogger(),
		repository.NewOwnerRepository(),
		repository.NewPetRepository(),
		repository.NewConsultationRepository(),
		newTestPhotoStore(t),
	)
}

func validCreatePetRequest() *dto.CreatePetRequest {
	return &dto.CreatePetRequest{
		Name:       "Rex",
		Species:    "dog",
		Breed:      "labrador",
		Size:       "large",
		Age:        intPtr(4),
		Vaccinated: boolPtr(true),
		FoodType:   "dry food",
	}
}

func TestCreatePet(t *testing.T) {
	db := newTestDB(t)
	uc := newPetUsecase(t, db)
	client := seedOwner(t, db, "client", entity.RoleClient)

	t.Run("client creates for themselves", func(t *testing.T) {
		pet, err := uc.CreatePet(authCtx(client.ID, entity.RoleClient), validCreatePetRequest(), nil)
		require.NoError(t, err)
		assert.Equal(t, client.ID, pet.OwnerID)
		assert.Equal(t, "enabled", pet.Status)
	})

	t.Run("client cannot create for another owner", func(t *testing.T) {
		other := seedOwner(t, db, "other-client", entity.RoleClient)

		req := validCreatePetRequest()
		req.OwnerID = other.ID

		// owner_id in the request is ignored for clients.
		pet, err := uc.CreatePet(authCtx(client.ID, entity.RoleClient), req, nil)
		require.NoError(t, err)
		assert.Equal(t, client.ID, pet.OwnerID)
	})

	t.Run("veterinarian is denied", func(t *testing.T) {
		vet := seedOwner(t, db, "vet-creator", entity.RoleVeterinarian)

		_, err := uc.CreatePet(authCtx(vet.ID, entity.RoleVeterinarian), validCreatePetRequest(), nil)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("superadmin creates for any owner", func(t *testing.T) {
		admin := seedOwner(t, db, "admin", entity.RoleSuperadmin)

		req := validCreatePetRequest()
		req.OwnerID = client.ID

		pet, err := uc.CreatePet(authCtx(admin.ID, entity.RoleSuperadmin), req, nil)
		require.NoError(t, err)
		assert.Equal(t, client.ID, pet.OwnerID)
	})

	t.Run("superadmin with unknown owner", func(t *testing.T) {
		admin := seedOwner(t, db, "admin2", entity.RoleSuperadmin)

		req := validCreatePetRequest()
		req.OwnerID = 9999

		_, err := uc.CreatePet(authCtx(admin.ID, entity.RoleSuperadmin), req, nil)
		assert.ErrorIs(t, err, ErrOwnerNotFound)
	})

	t.Run("photo is stored", func(t *testing.T) {
		req := validCreatePetRequest()
		photo := &storage.Upload{Filename: "rex.jpg", Content: strings.NewReader("bytes")}

		pet, err := uc.CreatePet(authCtx(client.ID, entity.RoleClient), req, photo)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(pet.PhotoPath, "pets/"))
	})
}

func TestGetPet(t *testing.T) {
	db := newTestDB(t)
	uc := newPetUsecase(t, db)

	owner := seedOwner(t, db, "owner", entity.RoleClient)
	stranger := seedOwner(t, db, "stranger", entity.RoleClient)
	vet := seedOwner(t, db, "vet", entity.RoleVeterinarian)
	pet := seedPet(t, db, owner.ID, "Luna")

	t.Run("owner sees their pet", func(t *testing.T) {
		got, err := uc.GetPet(authCtx(owner.ID, entity.RoleClient), pet.ID)
		require.NoError(t, err)
		assert.Equal(t, pet.ID, got.ID)
	})

	t.Run("other client is denied, not hidden", func(t *testing.T) {
		_, err := uc.GetPet(authCtx(stranger.ID, entity.RoleClient), pet.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("veterinarian without link is denied", func(t *testing.T) {
		_, err := uc.GetPet(authCtx(vet.ID, entity.RoleVeterinarian), pet.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("veterinarian with consultation link sees the pet", func(t *testing.T) {
		seedConsultation(t, db, pet, vet.ID, entity.ConsultationStatusPending)

		got, err := uc.GetPet(authCtx(vet.ID, entity.RoleVeterinarian), pet.ID)
		require.NoError(t, err)
		assert.Equal(t, pet.ID, got.ID)
	})

	t.Run("missing pet", func(t *testing.T) {
		_, err := uc.GetPet(authCtx(owner.ID, entity.RoleClient), 9999)
		assert.ErrorIs(t, err, ErrPetNotFound)
	})
}

func TestListPetsScoping(t *testing.T) {
	db := newTestDB(t)
	uc := newPetUsecase(t, db)

	alice := seedOwner(t, db, "alice", entity.RoleClient)
	bob := seedOwner(t, db, "bob", entity.RoleClient)
	vet := seedOwner(t, db, "vet", entity.RoleVeterinarian)
	admin := seedOwner(t, db, "admin", entity.RoleSuperadmin)

	alicePet := seedPet(t, db, alice.ID, "Luna")
	seedPet(t, db, bob.ID, "Max")
	disabled := seedPet(t, db, alice.ID, "Ghost")
	require.NoError(t, db.Model(disabled).Update("status", entity.StatusDisabled).Error)

	seedConsultation(t, db, alicePet, vet.ID, entity.ConsultationStatusConfirmed)

	t.Run("client sees only their enabled pets", func(t *testing.T) {
		list, err := uc.ListPets(authCtx(alice.ID, entity.RoleClient))
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, "Luna", list.Pets[0].Name)
	})

	t.Run("veterinarian sees only linked pets", func(t *testing.T) {
		list, err := uc.ListPets(authCtx(vet.ID, entity.RoleVeterinarian))
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, alicePet.ID, list.Pets[0].ID)
	})

	t.Run("superadmin sees all enabled pets", func(t *testing.T) {
		list, err := uc.ListPets(authCtx(admin.ID, entity.RoleSuperadmin))
		require.NoError(t, err)
		assert.Equal(t, 2, list.Total)
	})
}

func TestUpdatePet(t *testing.T) {
	db := newTestDB(t)
	uc := newPetUsecase(t, db)

	owner := seedOwner(t, db, "owner", entity.RoleClient)
	vet := seedOwner(t, db, "vet", entity.RoleVeterinarian)
	pet := seedPet(t, db, owner.ID, "Luna")

	req := &dto.UpdatePetRequest{
		Name:       "Luna II",
		Species:    "cat",
		Breed:      "siamese",
		Size:       "small",
		Age:        intPtr(5),
		Vaccinated: boolPtr(false),
		FoodType:   "wet food",
	}

	t.Run("owner updates", func(t *testing.T) {
		got, err := uc.UpdatePet(authCtx(owner.ID, entity.RoleClient), pet.ID, req, nil)
		require.NoError(t, err)
		assert.Equal(t, "Luna II", got.Name)
		assert.Equal(t, "cat", got.Species)
		// Ownership never changes through updates.
		assert.Equal(t, owner.ID, got.OwnerID)
	})

	t.Run("veterinarian cannot update", func(t *testing.T) {
		_, err := uc.UpdatePet(authCtx(vet.ID, entity.RoleVeterinarian), pet.ID, req, nil)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestDisablePet(t *testing.T) {
	db := newTestDB(t)
	uc := newPetUsecase(t, db)

	owner := seedOwner(t, db, "owner", entity.RoleClient)
	stranger := seedOwner(t, db, "stranger", entity.RoleClient)
	pet := seedPet(t, db, owner.ID, "Luna")

	t.Run("other client cannot disable", func(t *testing.T) {
		err := uc.DisablePet(authCtx(stranger.ID, entity.RoleClient), pet.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("disable is idempotent", func(t *testing.T) {
		ctx := authCtx(owner.ID, entity.RoleClient)

		require.NoError(t, uc.DisablePet(ctx, pet.ID))
		require.NoError(t, uc.DisablePet(ctx, pet.ID))

		list, err := uc.ListPets(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, list.Total)
	})

	t.Run("missing pet", func(t *testing.T) {
		err := uc.DisablePet(authCtx(owner.ID, entity.RoleClient), 9999)
		assert.ErrorIs(t, err, ErrPetNotFound)
	})
}

func TestVaccinationReport(t *testing.T) {
	db := newTestDB(t)
	uc := newPetUsecase(t, db)

	alice := seedOwner(t, db, "alice", entity.RoleClient)
	bob := seedOwner(t, db, "bob", entity.RoleClient)
	seedPet(t, db, alice.ID, "Luna")
	seedPet(t, db, bob.ID, "Max")

	report, err := uc.VaccinationReport(authCtx(alice.ID, entity.RoleClient))
	require.NoError(t, err)
	require.Equal(t, 1, report.Total)
	assert.Equal(t, "Luna", report.Entries[0].Name)
	assert.True(t, report.Entries[0].Vaccinated)
}
