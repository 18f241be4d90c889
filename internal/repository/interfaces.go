package repository

import (
	"context"

	"github.com/ganot/statuswatch/internal/domain/status"
)

// SnapshotRepository manages the append-only snapshot history. Snapshots are
// grouped per project name and ordered by observation time; Save never
// overwrites or deletes a prior snapshot.
//
// The store assumes at most one writer per project at a time. Callers that
// can observe the same project concurrently must serialize those calls
// themselves.
type SnapshotRepository interface {
	// Save appends a snapshot to the project's history.
	Save(ctx context.Context, rec *status.StatusRecord) error

	// GetLatest returns the snapshot with the greatest observation time for
	// the project, or ErrNotFound when the project has no history.
	GetLatest(ctx context.Context, projectName string) (*status.StatusRecord, error)

	// GetHistory returns up to limit snapshots for the project, newest first.
	// An unknown project yields an empty slice, not an error.
	GetHistory(ctx context.Context, projectName string, limit int) ([]status.StatusRecord, error)
}
