package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"pet-census-api/config"
	"pet-census-api/internal/delivery/http/middleware"
	"pet-census-api/internal/domain/entity"
	"pet-census-api/internal/infrastructure/storage"
	"pet-census-api/internal/service"
	"pet-census-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&entity.Owner{}, &entity.Pet{}, &entity.MedicalConsultation{})
	require.NoError(t, err)

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestPhotoStore(t *testing.T) *storage.PhotoStore {
	store, err := storage.NewPhotoStore(afero.NewMemMapFs(), config.StorageConfig{PhotoDir: "photos"})
	require.NoError(t, err)
	return store
}

// authCtx builds a context carrying the identity the auth middleware would
// have injected.
func authCtx(ownerID uint, role entity.Role) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, ownerID)
	ctx = context.WithValue(ctx, middleware.UserEmailKey, fmt.Sprintf("owner%d@example.com", ownerID))
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, "test-token-id")
	return ctx
}

// fakeTokenService records revocations and issues static token pairs.
type fakeTokenService struct {
	issued     int
	revoked    []string
	revokedAll []uint
}

func (f *fakeTokenService) Issue(ctx context.Context, owner *entity.Owner) (*service.TokenPair, error) {
	f.issued++
	return &service.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", f.issued),
		RefreshToken: fmt.Sprintf("refresh-%d", f.issued),
		ExpiresIn:    900,
	}, nil
}

func (f *fakeTokenService) Authenticate(ctx context.Context, accessToken string) (*jwt.Claims, error) {
	return nil, service.ErrInvalidToken
}

func (f *fakeTokenService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	if refreshToken == "" {
		return nil, service.ErrInvalidToken
	}
	return f.Issue(ctx, nil)
}

func (f *fakeTokenService) Revoke(ctx context.Context, accessTokenID, refreshTokenID string) error {
	f.revoked = append(f.revoked, accessTokenID, refreshTokenID)
	return nil
}

func (f *fakeTokenService) RevokeAll(ctx context.Context, ownerID uint) error {
	f.revokedAll = append(f.revokedAll, ownerID)
	return nil
}

func seedOwner(t *testing.T, db *gorm.DB, name string, role entity.Role) *entity.Owner {
	owner := &entity.Owner{
		Name:     name,
		Email:    name + "@example.com",
		Password: "not-a-real-hash",
		Address:  "Calle 10 #5-51",
		Phone:    "3001234567",
		Role:     role,
		Status:   entity.StatusEnabled,
	}
	require.NoError(t, db.Create(owner).Error)
	return owner
}

func seedPet(t *testing.T, db *gorm.DB, ownerID uint, name string) *entity.Pet {
	pet := &entity.Pet{
		Name:       name,
		Species:    entity.SpeciesDog,
		Breed:      "mixed",
		Size:       entity.SizeMedium,
		Age:        3,
		Vaccinated: true,
		FoodType:   "dry food",
		OwnerID:    ownerID,
		Status:     entity.StatusEnabled,
	}
	require.NoError(t, db.Create(pet).Error)
	return pet
}

func seedConsultation(t *testing.T, db *gorm.DB, pet *entity.Pet, vetID uint, status entity.ConsultationStatus) *entity.MedicalConsultation {
	consultation := &entity.MedicalConsultation{
		PetID:          pet.ID,
		ClientID:       pet.OwnerID,
		VeterinarianID: vetID,
		ScheduledAt:    time.Now().Add(24 * time.Hour),
		Status:         status,
	}
	require.NoError(t, db.Create(consultation).Error)
	return consultation
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
