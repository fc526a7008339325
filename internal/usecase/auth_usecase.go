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
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	ownerRepo    repository.OwnerRepository
	tokenService service.TokenService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ownerRepo repository.OwnerRepository,
	tokenService service.TokenService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		ownerRepo:    ownerRepo,
		tokenService: tokenService,
	}
}

// Register creates a new client account and issues its first token pair.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	db := u.db.WithContext(ctx)

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
		Address:  req.Address,
		Phone:    req.Phone,
		Role:     entity.RoleClient,
		Status:   entity.StatusEnabled,
	}

	if err := u.ownerRepo.Create(db, owner); err != nil {
		// Backstop for the race between the existence check and the insert.
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create owner: %+v", err)
		return nil, err
	}

	pair, err := u.tokenService.Issue(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: converter.TokenPairToResponse(pair),
		Owner: *converter.OwnerToResponse(owner),
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	owner, err := u.ownerRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find owner by email: %+v", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if owner.IsDisabled() {
		return nil, ErrAccountDisabled
	}

	pair, err := u.tokenService.Issue(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: converter.TokenPairToResponse(pair),
		Owner: *converter.OwnerToResponse(owner),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	return u.tokenService.Revoke(ctx, accessTokenID, refreshTokenID)
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	pair, err := u.tokenService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	resp := converter.TokenPairToResponse(pair)
	return &resp, nil
}
