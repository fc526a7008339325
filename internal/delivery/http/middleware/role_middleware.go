package middleware

import (
	"net/http"

	"pet-census-api/internal/domain/entity"
	"pet-census-api/pkg/response"
)

// RequireRole creates a middleware that checks whether the authenticated role
// is one of the allowed roles. The role comes from the context set by
// AuthMiddleware.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSuperadmin is a convenience middleware for superadmin-only endpoints.
func RequireSuperadmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleSuperadmin)(next)
}
