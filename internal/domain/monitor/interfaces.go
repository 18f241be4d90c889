package monitor

import (
	"context"

	"github.com/ganot/statuswatch/internal/domain/status"
)

// SnapshotRepository provides persistence for status snapshots.
type SnapshotRepository interface {
	Save(ctx context.Context, rec *status.StatusRecord) error
	GetLatest(ctx context.Context, projectName string) (*status.StatusRecord, error)
	GetHistory(ctx context.Context, projectName string, limit int) ([]status.StatusRecord, error)
}
