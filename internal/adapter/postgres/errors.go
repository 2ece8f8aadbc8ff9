package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// PostgreSQL error codes the repositories care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeExclusionViolation  = "23P01"
)

// MapError converts pgx/pgconn errors to domain errors.
// id is formatted with %v, so both uuid.UUID and string ids work.
// Context cancellation and deadline errors are wrapped but never mapped.
// Unique and exclusion violations keep the *pgconn.PgError in the chain so
// callers can inspect ConstraintName.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrAlreadyExists, pgErr)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrValidation)
		case codeExclusionViolation:
			return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrConflict, pgErr)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}

// ConstraintName returns the violated constraint name, or "" when err is not
// a constraint violation.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
