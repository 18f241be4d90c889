package monitor

import "errors"

var (
	// ErrNoHistory indicates the project has no stored snapshots yet.
	ErrNoHistory = errors.New("no snapshot history for project")
)
