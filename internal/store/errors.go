package store

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when no region has the requested id
	ErrNotFound = errors.New("region not found")

	// ErrDuplicateKey is returned when a write would break id uniqueness
	ErrDuplicateKey = errors.New("duplicate region id")
)

// pqUniqueViolation is the SQLSTATE for unique_violation
const pqUniqueViolation = "23505"

// isUniqueViolation recognises unique constraint failures from either SQL driver
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	return isSQLiteUniqueViolation(err)
}
