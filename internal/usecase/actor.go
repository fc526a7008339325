package usecase

import (
	"context"
	"errors"
	"strings"

	"pet-census-api/internal/delivery/http/middleware"
	"pet-census-api/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrForbidden marks role or ownership denials; handlers map it to 403.
	ErrForbidden = errors.New("forbidden")

	errNoActor = errors.New("user not found in context")
)

// actorFromContext reads the authenticated identity placed in the request
// context by the auth middleware.
func actorFromContext(ctx context.Context) (uint, entity.Role, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return 0, "", errNoActor
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return 0, "", errNoActor
	}
	return actorID, role, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name.
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
