package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// PostgreSQL error codes mapped to domain errors.
const (
	codeRestrictViolation    = "23001"
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
)

// MapError converts pgx/pgconn errors to domain errors, prefixing the entity and id.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// Anything unrecognized stays a wrapped storage error.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			// A delete blocked by a referencing row is a conflict, a missing parent is not found.
			if strings.HasPrefix(pgErr.Message, "update or delete") {
				return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
			}
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case codeRestrictViolation, codeSerializationFailure:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
		case codeCheckViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// IsForeignKeyViolation reports whether err is an insert or update rejected
// by the named foreign key constraint.
func IsForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == codeForeignKeyViolation &&
		pgErr.ConstraintName == constraint &&
		!strings.HasPrefix(pgErr.Message, "update or delete")
}
