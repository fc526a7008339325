package usecase

import (
	"context"

	"pet-census-api/internal/converter"
	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/entity"
	"pet-census-api/internal/domain/repository"
	"pet-census-api/internal/infrastructure/storage"
	"pet-census-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const ownerPhotoDir = "owners"

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*dto.OwnerResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest, photo *storage.Upload) (*dto.OwnerResponse, error)
	// DisableAccount soft-disables the account, disables all owned pets and
	// revokes every issued token.
	DisableAccount(ctx context.Context) error
}

type profileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	ownerRepo    repository.OwnerRepository
	petRepo      repository.PetRepository
	tokenService service.TokenService
	photoStore   *storage.PhotoStore
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ownerRepo repository.OwnerRepository,
	petRepo repository.PetRepository,
	tokenService service.TokenService,
	photoStore *storage.PhotoStore,
) ProfileUsecase {
	return &profileUsecase{
		db:           db,
		log:          log,
		ownerRepo:    ownerRepo,
		petRepo:      petRepo,
		tokenService: tokenService,
		photoStore:   photoStore,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context) (*dto.OwnerResponse, error) {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	owner, err := u.ownerRepo.FindByIDWithPets(u.db.WithContext(ctx), actorID)
	if err != nil {
		u.log.Warnf("Failed to find owner %d: %+v", actorID, err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	return converter.OwnerToResponse(owner), nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest, photo *storage.Upload) (*dto.OwnerResponse, error) {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	owner, err := u.ownerRepo.FindByID(db, actorID)
	if err != nil {
		u.log.Warnf("Failed to find owner %d: %+v", actorID, err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	// Email must stay unique, excluding the owner itself.
	if req.Email != owner.Email {
		existing, err := u.ownerRepo.FindByEmail(db, req.Email)
		if err != nil {
			u.log.Warnf("Failed to check email: %+v", err)
			return nil, err
		}
		if existing != nil && existing.ID != owner.ID {
			return nil, ErrEmailAlreadyExists
		}
	}

	owner.Name = req.Name
	owner.Email = req.Email
	owner.Address = req.Address
	owner.Phone = req.Phone
	owner.Location = req.Location

	// New photo is written before the record update; the old file is removed
	// only after the update succeeds.
	oldPhoto := owner.PhotoPath
	if photo != nil {
		photoPath, err := u.photoStore.Save(ownerPhotoDir, photo)
		if err != nil {
			u.log.Warnf("Failed to store profile photo: %+v", err)
			return nil, err
		}
		owner.PhotoPath = photoPath
	}

	if err := u.ownerRepo.Update(db, owner); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update owner %d: %+v", actorID, err)
		if photo != nil {
			if cleanupErr := u.photoStore.Delete(owner.PhotoPath); cleanupErr != nil {
				u.log.Warnf("Failed to remove orphaned photo %s: %+v", owner.PhotoPath, cleanupErr)
			}
		}
		return nil, err
	}

	if photo != nil && oldPhoto != "" {
		if err := u.photoStore.Delete(oldPhoto); err != nil {
			u.log.Warnf("Failed to remove old photo %s (non-fatal): %+v", oldPhoto, err)
		}
	}

	return converter.OwnerToResponse(owner), nil
}

func (u *profileUsecase) DisableAccount(ctx context.Context) error {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.petRepo.DisableByOwnerID(tx, actorID); err != nil {
		u.log.Warnf("Failed to disable pets of owner %d: %+v", actorID, err)
		return err
	}

	if err := u.ownerRepo.UpdateStatus(tx, actorID, entity.StatusDisabled); err != nil {
		u.log.Warnf("Failed to disable owner %d: %+v", actorID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.tokenService.RevokeAll(ctx, actorID); err != nil {
		u.log.Warnf("Failed to revoke tokens of owner %d: %+v", actorID, err)
		return err
	}

	u.log.Infof("Account %d disabled", actorID)
	return nil
}
