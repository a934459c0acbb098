// Package fault defines the outcome taxonomy shared by the core services.
// Callers distinguish outcomes with errors.Is rather than by inspecting
// error text.
package fault

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrInvalidInput marks a request rejected before any I/O (blank title,
	// out-of-range rating). Never logged as a system error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a normal, expected miss: the upstream API has no
	// such title, or a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTransient marks a network or I/O failure against an external API.
	// Eligible for caller-initiated retry; no partial writes are left behind.
	ErrTransient = errors.New("transient failure")

	// ErrDuplicateKey marks a storage-layer uniqueness race. It is absorbed
	// internally by re-reading the winning row and never surfaced to callers.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnavailable marks the persistence backend being down. Fatal for the
	// current request.
	ErrUnavailable = errors.New("persistence unavailable")
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Detection goes through the driver's error code, never through
// the human-readable (and locale-dependent) message text.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// UniqueConstraint returns the name of the violated unique constraint, or ""
// if err is not a unique violation.
func UniqueConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return pqErr.Constraint
	}
	return ""
}
