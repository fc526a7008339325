package usecase

import (
	"context"
	"testing"

	"pet-census-api/internal/delivery/dto"
	"pet-census-api/internal/domain/entity"
	"pet-census-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthUsecase(db *gorm.DB, tokens *fakeTokenService) AuthUsecase {
	return NewAuthUsecase(db, newTestLogger(), repository.NewOwnerRepository(), tokens)
}

func validRegisterRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:                 "Ana Gomez",
		Email:                email,
		Password:             "secret-pass",
		PasswordConfirmation: "secret-pass",
		Address:              "Calle 10 #5-51",
		Phone:                "3001234567",
	}
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUsecase(db, &fakeTokenService{})

	t.Run("creates a client account and issues tokens", func(t *testing.T) {
		result, err := uc.Register(context.Background(), validRegisterRequest("ana@example.com"))
		require.NoError(t, err)

		assert.Equal(t, string(entity.RoleClient), result.Owner.Role)
		assert.Equal(t, string(entity.StatusEnabled), result.Owner.Status)
		assert.NotEmpty(t, result.Token.AccessToken)
		assert.NotEmpty(t, result.Token.RefreshToken)

		var stored entity.Owner
		require.NoError(t, db.First(&stored, result.Owner.ID).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-pass")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := uc.Register(context.Background(), validRegisterRequest("ana@example.com"))
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUsecase(db, &fakeTokenService{})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	owner := &entity.Owner{
		Name:     "Ana Gomez",
		Email:    "ana@example.com",
		Password: string(hash),
		Address:  "Calle 10 #5-51",
		Phone:    "3001234567",
		Role:     entity.RoleClient,
		Status:   entity.StatusEnabled,
	}
	require.NoError(t, db.Create(owner).Error)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "secret-pass"})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, result.Owner.ID)
		assert.NotEmpty(t, result.Token.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "secret-pass"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		require.NoError(t, db.Model(owner).Update("status", entity.StatusDisabled).Error)

		_, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "secret-pass"})
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})
}

func TestLogoutRevokesTokens(t *testing.T) {
	db := newTestDB(t)
	tokens := &fakeTokenService{}
	uc := newAuthUsecase(db, tokens)

	require.NoError(t, uc.Logout(context.Background(), "access-id", "refresh-id"))
	assert.Equal(t, []string{"access-id", "refresh-id"}, tokens.revoked)
}

func TestRefreshToken(t *testing.T) {
	db := newTestDB(t)
	uc := newAuthUsecase(db, &fakeTokenService{})

	resp, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "refresh-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}
