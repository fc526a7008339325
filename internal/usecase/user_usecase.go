package usecase

import (
	"context"
	"errors"

	"pet-census-api/internal/converter"
	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/entity"
	"pet-census-api/internal/domain/repository"
	"pet-census-api/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCannotDisableSelf = errors.New("cannot disable your own account")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidStatus     = errors.New("invalid status")
)

// UserUsecase is the superadmin account-management surface. Route-level role
// middleware guarantees the actor is a superadmin.
type UserUsecase interface {
	ListUsers(ctx context.Context) (*dto.OwnerListResponse, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.OwnerResponse, error)
	GetUser(ctx context.Context, userID uint) (*dto.OwnerResponse, error)
	UpdateUser(ctx context.Context, userID uint, req *dto.UpdateUserRequest) (*dto.OwnerResponse, error)
	// DisableUser soft-disables an account, its pets, and revokes its tokens.
	DisableUser(ctx context.Context, userID uint) error
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	ownerRepo    repository.OwnerRepository
	petRepo      repository.PetRepository
	tokenService service.TokenService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ownerRepo repository.OwnerRepository,
	petRepo repository.PetRepository,
	tokenService service.TokenService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		ownerRepo:    ownerRepo,
		petRepo:      petRepo,
		tokenService: tokenService,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context) (*dto.OwnerListResponse, error) {
	owners, err := u.ownerRepo.FindAllOrderedByName(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.OwnerListResponse{
		Owners: converter.OwnersToResponses(owners),
		Total:  len(owners),
	}, nil
}

func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.OwnerResponse, error) {
	db := u.db.WithContext(ctx)

	role := entity.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	status := entity.StatusEnabled
	if req.Status != "" {
		status = entity.AccountStatus(req.Status)
		if status != entity.StatusEnabled && status != entity.StatusDisabled {
			return nil, ErrInvalidStatus
		}
	}

	existing, err := u.ownerRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	owner := &entity.Owner{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     role,
		Status:   status,
	}

	if err := u.ownerRepo.Create(db, owner); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.log.Infof("User created: id=%d, role=%s", owner.ID, owner.Role)
	return converter.OwnerToResponse(owner), nil
}

func (u *userUsecase) GetUser(ctx context.Context, userID uint) (*dto.OwnerResponse, error) {
	owner, err := u.ownerRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	return converter.OwnerToResponse(owner), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, userID uint, req *dto.UpdateUserRequest) (*dto.OwnerResponse, error) {
	db := u.db.WithContext(ctx)

	role := entity.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	owner, err := u.ownerRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

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
	owner.Phone = req.Phone
	owner.Address = req.Address
	owner.Role = role
	owner.Status = entity.AccountStatus(req.Status)

	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		owner.Password = string(hashedPassword)
	}

	if err := u.ownerRepo.Update(db, owner); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user %d: %+v", userID, err)
		return nil, err
	}

	return converter.OwnerToResponse(owner), nil
}

func (u *userUsecase) DisableUser(ctx context.Context, userID uint) error {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	if actorID == userID {
		return ErrCannotDisableSelf
	}

	db := u.db.WithContext(ctx)

	owner, err := u.ownerRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return err
	}
	if owner == nil {
		return ErrUserNotFound
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.petRepo.DisableByOwnerID(tx, userID); err != nil {
		u.log.Warnf("Failed to disable pets of user %d: %+v", userID, err)
		return err
	}

	if err := u.ownerRepo.UpdateStatus(tx, userID, entity.StatusDisabled); err != nil {
		u.log.Warnf("Failed to disable user %d: %+v", userID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.tokenService.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke tokens of user %d: %+v", userID, err)
		return err
	}

	u.log.Infof("User %d disabled by superadmin %d", userID, actorID)
	return nil
}
