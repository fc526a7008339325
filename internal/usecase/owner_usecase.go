package usecase

import (
	"context"

	"pet-census-api/internal/converter"
	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OwnerUsecase interface {
	GetCurrentOwner(ctx context.Context) (*dto.OwnerResponse, error)
	ListOwners(ctx context.Context) (*dto.OwnerListResponse, error)
	// ListVeterinarians returns enabled veterinarians so any authenticated
	// user can pick one when scheduling.
	ListVeterinarians(ctx context.Context) (*dto.VeterinarianListResponse, error)
}

type ownerUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	ownerRepo repository.OwnerRepository
}

func NewOwnerUsecase(db *gorm.DB, log *logrus.Logger, ownerRepo repository.OwnerRepository) OwnerUsecase {
	return &ownerUsecase{
		db:        db,
		log:       log,
		ownerRepo: ownerRepo,
	}
}

func (u *ownerUsecase) GetCurrentOwner(ctx context.Context) (*dto.OwnerResponse, error) {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	owner, err := u.ownerRepo.FindByID(u.db.WithContext(ctx), actorID)
	if err != nil {
		u.log.Warnf("Failed to find owner %d: %+v", actorID, err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	return converter.OwnerToResponse(owner), nil
}

func (u *ownerUsecase) ListOwners(ctx context.Context) (*dto.OwnerListResponse, error) {
	owners, err := u.ownerRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list owners: %+v", err)
		return nil, err
	}

	return &dto.OwnerListResponse{
		Owners: converter.OwnersToResponses(owners),
		Total:  len(owners),
	}, nil
}

func (u *ownerUsecase) ListVeterinarians(ctx context.Context) (*dto.VeterinarianListResponse, error) {
	vets, err := u.ownerRepo.FindEnabledVeterinarians(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list veterinarians: %+v", err)
		return nil, err
	}

	return &dto.VeterinarianListResponse{
		Veterinarians: converter.OwnersToSummaries(vets),
		Total:         len(vets),
	}, nil
}
