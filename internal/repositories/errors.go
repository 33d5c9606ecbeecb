package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Unique index names from the schema. Services map these onto domain
// conflict errors, so the storage layer stays the source of truth for
// uniqueness instead of the check-then-act pre-checks.
const (
	ConstraintUsername        = "users_username_lower_idx"
	ConstraintEmail           = "users_email_idx"
	ConstraintSteamID         = "users_steam_id_idx"
	ConstraintReviewBookmaker = "bookmaker_reviews_user_bookmaker_idx"
)

// UniqueViolationError is returned when a write hits a unique index.
type UniqueViolationError struct {
	Constraint string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique violation on %s", e.Constraint)
}

// asUniqueViolation converts a postgres unique_violation (23505) into a
// UniqueViolationError, leaving every other error untouched.
func asUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &UniqueViolationError{Constraint: pgErr.ConstraintName}
	}
	return err
}
