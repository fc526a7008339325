package service

import (
	"context"
	"errors"
	"fmt"

	"pet-census-api/internal/domain/entity"
	"pet-census-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// TokenPair is an issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues, validates and revokes bearer tokens. Every issued
// token id is tracked in Redis so logout and account disabling can revoke
// tokens before they expire.
type TokenService interface {
	Issue(ctx context.Context, owner *entity.Owner) (*TokenPair, error)
	// Authenticate validates an access token and checks it has not been revoked.
	Authenticate(ctx context.Context, accessToken string) (*jwt.Claims, error)
	// Refresh rotates a valid refresh token into a fresh pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Revoke invalidates one access token id and optionally a refresh token id.
	Revoke(ctx context.Context, accessTokenID, refreshTokenID string) error
	// RevokeAll invalidates every token issued to the owner.
	RevokeAll(ctx context.Context, ownerID uint) error
}

type redisTokenService struct {
	log         *logrus.Logger
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewTokenService(log *logrus.Logger, jwtService *jwt.JWTService, redisClient *redis.Client) TokenService {
	return &redisTokenService{
		log:         log,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (s *redisTokenService) Issue(ctx context.Context, owner *entity.Owner) (*TokenPair, error) {
	return s.issue(ctx, owner.ID, owner.Email, string(owner.Role))
}

func (s *redisTokenService) issue(ctx context.Context, ownerID uint, email, role string) (*TokenPair, error) {
	accessToken, accessTokenID, err := s.jwtService.GenerateAccessToken(ownerID, email, role)
	if err != nil {
		s.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := s.jwtService.GenerateRefreshToken(ownerID, email, role)
	if err != nil {
		s.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := accessKey(ownerID, accessTokenID)
	refreshKey := refreshKey(ownerID, refreshTokenID)

	if err := s.redisClient.Set(ctx, accessKey, "valid", s.jwtService.GetAccessExpiry()).Err(); err != nil {
		s.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := s.redisClient.Set(ctx, refreshKey, "valid", s.jwtService.GetRefreshExpiry()).Err(); err != nil {
		s.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (s *redisTokenService) Authenticate(ctx context.Context, accessToken string) (*jwt.Claims, error) {
	claims, err := s.jwtService.ValidateToken(accessToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.AccessToken {
		return nil, ErrInvalidToken
	}

	exists, err := s.redisClient.Exists(ctx, accessKey(claims.UserID, claims.TokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check access token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

func (s *redisTokenService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	key := refreshKey(claims.UserID, claims.TokenID)
	exists, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		s.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token becomes unusable.
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return s.issue(ctx, claims.UserID, claims.Email, claims.Role)
}

func (s *redisTokenService) Revoke(ctx context.Context, accessTokenID, refreshTokenID string) error {
	if err := s.deleteByPattern(ctx, fmt.Sprintf("access_token:*:%s", accessTokenID)); err != nil {
		return err
	}
	if refreshTokenID == "" {
		return nil
	}
	return s.deleteByPattern(ctx, fmt.Sprintf("refresh_token:*:%s", refreshTokenID))
}

func (s *redisTokenService) RevokeAll(ctx context.Context, ownerID uint) error {
	if err := s.deleteByPattern(ctx, fmt.Sprintf("access_token:%d:*", ownerID)); err != nil {
		return err
	}
	return s.deleteByPattern(ctx, fmt.Sprintf("refresh_token:%d:*", ownerID))
}

func (s *redisTokenService) deleteByPattern(ctx context.Context, pattern string) error {
	keys, err := s.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		s.log.Warnf("Failed to list token keys: %+v", err)
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to delete tokens: %+v", err)
		return err
	}
	return nil
}

func accessKey(ownerID uint, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", ownerID, tokenID)
}

func refreshKey(ownerID uint, tokenID string) string {
	return fmt.Sprintf("refresh_token:%d:%s", ownerID, tokenID)
}
