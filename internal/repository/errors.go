package repository

import "errors"

var (
	// ErrNotFound is returned when a project has no stored snapshots
	ErrNotFound = errors.New("not found")

	// ErrDuplicateSnapshot is returned when a snapshot already exists for the
	// same project and observation time
	ErrDuplicateSnapshot = errors.New("duplicate snapshot")

	// ErrMalformedRecord is returned when a persisted snapshot cannot be
	// decoded into the current record shape
	ErrMalformedRecord = errors.New("malformed snapshot record")
)
