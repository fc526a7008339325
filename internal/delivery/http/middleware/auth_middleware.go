package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"pet-census-api/internal/domain/entity"
	"pet-census-api/internal/service"
	"pet-census-api/pkg/response"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleKey      contextKey = "role"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	tokenService service.TokenService
}

func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.tokenService.Authenticate(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenRevoked):
				response.Unauthorized(w, "Token has been revoked")
			case errors.Is(err, service.ErrInvalidToken):
				response.Unauthorized(w, "Invalid or expired token")
			default:
				response.InternalServerError(w, "Failed to validate token")
			}
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, entity.Role(claims.Role))
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts the authenticated owner id from context.
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

// GetUserEmailFromContext extracts the authenticated email from context.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetRoleFromContext extracts the authenticated role from context.
func GetRoleFromContext(ctx context.Context) (entity.Role, bool) {
	role, ok := ctx.Value(RoleKey).(entity.Role)
	return role, ok
}

// GetTokenIDFromContext extracts the access token id from context.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
