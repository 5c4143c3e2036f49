package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// Classify turns driver errors into apperr kinds. what names the entity,
// e.g. "venue", and is used in the resulting message.
func Classify(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %w", what, apperr.ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s already exists", apperr.ErrConflict, what)
	}
	return err
}

// RequireAffected returns a not-found error when an UPDATE or DELETE touched no rows.
func RequireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %w", what, apperr.ErrNotFound)
	}
	return nil
}
