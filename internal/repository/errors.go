// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Sentinel errors produced by repositories. Raw datastore errors never cross
// the repository boundary; callers match on these and attach the
// operation-specific classification.
var (
	// ErrNotFound indicates no row matched the requested identifier.
	ErrNotFound = errors.New("record not found")

	// ErrForeignKeyViolation indicates a write referenced a row that does
	// not exist (e.g. a comment pointing at a missing article).
	ErrForeignKeyViolation = errors.New("referenced record does not exist")
)

// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations.
const foreignKeyViolationCode = "23503"

// translate maps datastore-level errors onto the repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return ErrForeignKeyViolation
	}
	return err
}
