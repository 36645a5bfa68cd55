package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a statement matched no row.
	ErrNotFound = errors.New("not found")
	// ErrUnknownReference is returned when an insert names a user or
	// project that does not exist.
	ErrUnknownReference = errors.New("unknown user or project")
)

// foreignKeyViolation is the Postgres SQLSTATE for a failed FK check.
const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
