package usecase

import (
	"context"
	"errors"
	"time"

	"pet-census-api/internal/converter"
	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/entity"
	"pet-census-api/internal/domain/policy"
	"pet-census-api/internal/domain/repository"
	"pet-census-api/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPetNotFound   = errors.New("pet not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

const petPhotoDir = "pets"

type PetUsecase interface {
	CreatePet(ctx context.Context, req *dto.CreatePetRequest, photo *storage.Upload) (*dto.PetResponse, error)
	GetPet(ctx context.Context, petID uint) (*dto.PetResponse, error)
	ListPets(ctx context.Context) (*dto.PetListResponse, error)
	UpdatePet(ctx context.Context, petID uint, req *dto.UpdatePetRequest, photo *storage.Upload) (*dto.PetResponse, error)
	DisablePet(ctx context.Context, petID uint) error
	VaccinationReport(ctx context.Context) (*dto.VaccinationReportResponse, error)
}

type petUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	ownerRepo        repository.OwnerRepository
	petRepo          repository.PetRepository
	consultationRepo repository.ConsultationRepository
	photoStore       *storage.PhotoStore
}

func NewPetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ownerRepo repository.OwnerRepository,
	petRepo repository.PetRepository,
	consultationRepo repository.ConsultationRepository,
	photoStore *storage.PhotoStore,
) PetUsecase {
	return &petUsecase{
		db:               db,
		log:              log,
		ownerRepo:        ownerRepo,
		petRepo:          petRepo,
		consultationRepo: consultationRepo,
		photoStore:       photoStore,
	}
}

// CreatePet registers a pet. Clients always create for themselves; a
// superadmin may create for any existing owner.
func (u *petUsecase) CreatePet(ctx context.Context, req *dto.CreatePetRequest, photo *storage.Upload) (*dto.PetResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	// owner_id is forced to the actor unless a superadmin chose another owner.
	ownerID := actorID
	if role == entity.RoleSuperadmin && req.OwnerID != 0 {
		ownerID = req.OwnerID
	}

	if !policy.CanCreatePet(role, actorID, ownerID) {
		return nil, ErrForbidden
	}

	owner, err := u.ownerRepo.FindByID(db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find owner %d: %+v", ownerID, err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	lastVaccination, err := parseOptionalDate(req.LastVaccination)
	if err != nil {
		return nil, err
	}

	pet := &entity.Pet{
		Name:            req.Name,
		Species:         entity.Species(req.Species),
		Breed:           req.Breed,
		Size:            entity.PetSize(req.Size),
		Age:             *req.Age,
		Vaccinated:      *req.Vaccinated,
		FoodType:        req.FoodType,
		Location:        req.Location,
		LastVaccination: lastVaccination,
		OwnerID:         ownerID,
		Status:          entity.StatusEnabled,
	}

	if photo != nil {
		photoPath, err := u.photoStore.Save(petPhotoDir, photo)
		if err != nil {
			u.log.Warnf("Failed to store pet photo: %+v", err)
			return nil, err
		}
		pet.PhotoPath = photoPath
	}

	if err := u.petRepo.Create(db, pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		// Don't leave a dangling photo behind a failed insert.
		if pet.PhotoPath != "" {
			if cleanupErr := u.photoStore.Delete(pet.PhotoPath); cleanupErr != nil {
				u.log.Warnf("Failed to remove orphaned photo %s: %+v", pet.PhotoPath, cleanupErr)
			}
		}
		return nil, err
	}

	pet.Owner = *owner
	u.log.Infof("Pet created: id=%d, owner=%d", pet.ID, pet.OwnerID)
	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) GetPet(ctx context.Context, petID uint) (*dto.PetResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet %d: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	// Veterinarians see only pets linked to them via a consultation.
	linked := false
	if role == entity.RoleVeterinarian {
		linked, err = u.consultationRepo.ExistsLink(db, actorID, petID)
		if err != nil {
			u.log.Warnf("Failed to check consultation link: %+v", err)
			return nil, err
		}
	}

	if !policy.CanViewPet(role, actorID, pet, linked) {
		return nil, ErrForbidden
	}

	return converter.PetToResponse(pet), nil
}

// ListPets returns enabled pets scoped by role: clients their own,
// veterinarians the pets linked to them via consultations, superadmins all.
func (u *petUsecase) ListPets(ctx context.Context) (*dto.PetListResponse, error) {
	pets, err := u.visiblePets(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

func (u *petUsecase) visiblePets(ctx context.Context) ([]entity.Pet, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !policy.CanListPets(role) {
		return nil, ErrForbidden
	}

	db := u.db.WithContext(ctx)

	var pets []entity.Pet
	switch role {
	case entity.RoleClient:
		pets, err = u.petRepo.FindEnabledByOwnerID(db, actorID)
	case entity.RoleVeterinarian:
		pets, err = u.petRepo.FindEnabledLinkedToVeterinarian(db, actorID)
	case entity.RoleSuperadmin:
		pets, err = u.petRepo.FindAllEnabled(db)
	}
	if err != nil {
		u.log.Warnf("Failed to list pets for %d (%s): %+v", actorID, role, err)
		return nil, err
	}
	return pets, nil
}

func (u *petUsecase) UpdatePet(ctx context.Context, petID uint, req *dto.UpdatePetRequest, photo *storage.Upload) (*dto.PetResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet %d: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if !policy.CanUpdatePet(role, actorID, pet) {
		return nil, ErrForbidden
	}

	lastVaccination, err := parseOptionalDate(req.LastVaccination)
	if err != nil {
		return nil, err
	}

	// owner_id is never taken from the request.
	pet.Name = req.Name
	pet.Species = entity.Species(req.Species)
	pet.Breed = req.Breed
	pet.Size = entity.PetSize(req.Size)
	pet.Age = *req.Age
	pet.Vaccinated = *req.Vaccinated
	pet.FoodType = req.FoodType
	pet.Location = req.Location
	pet.LastVaccination = lastVaccination

	// Write the new photo before touching the record; the old file is removed
	// only after the update is committed, so a storage failure cannot lose
	// the current photo.
	oldPhoto := pet.PhotoPath
	if photo != nil {
		photoPath, err := u.photoStore.Save(petPhotoDir, photo)
		if err != nil {
			u.log.Warnf("Failed to store pet photo: %+v", err)
			return nil, err
		}
		pet.PhotoPath = photoPath
	}

	if err := u.petRepo.Update(db, pet); err != nil {
		u.log.Warnf("Failed to update pet %d: %+v", petID, err)
		if photo != nil {
			if cleanupErr := u.photoStore.Delete(pet.PhotoPath); cleanupErr != nil {
				u.log.Warnf("Failed to remove orphaned photo %s: %+v", pet.PhotoPath, cleanupErr)
			}
		}
		return nil, err
	}

	if photo != nil && oldPhoto != "" {
		if err := u.photoStore.Delete(oldPhoto); err != nil {
			u.log.Warnf("Failed to remove old photo %s (non-fatal): %+v", oldPhoto, err)
		}
	}

	return converter.PetToResponse(pet), nil
}

// DisablePet soft-disables a pet. Disabling an already-disabled pet is a
// no-op success.
func (u *petUsecase) DisablePet(ctx context.Context, petID uint) error {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet %d: %+v", petID, err)
		return err
	}
	if pet == nil {
		return ErrPetNotFound
	}

	if !policy.CanDisablePet(role, actorID, pet) {
		return ErrForbidden
	}

	affected, err := u.petRepo.Disable(db, petID)
	if err != nil {
		u.log.Warnf("Failed to disable pet %d: %+v", petID, err)
		return err
	}
	if affected == 0 {
		u.log.Infof("Pet %d already disabled", petID)
	}

	return nil
}

// VaccinationReport lists vaccination state for the pets the actor may see.
func (u *petUsecase) VaccinationReport(ctx context.Context) (*dto.VaccinationReportResponse, error) {
	pets, err := u.visiblePets(ctx)
	if err != nil {
		return nil, err
	}

	entries := converter.PetsToVaccinationReport(pets)
	return &dto.VaccinationReportResponse{
		Entries: entries,
		Total:   len(entries),
	}, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
