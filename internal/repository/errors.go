package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

// wrapError annotates a storage error with the failing operation. Integrity
// violations are tagged with domain.ErrConstraintViolation so callers can tell
// them apart from connectivity problems.
func wrapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return fmt.Errorf("%s: %w: %s (%w)", op, domain.ErrConstraintViolation, pgErr.ConstraintName, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
