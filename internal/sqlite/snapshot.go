package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ganot/statuswatch/internal/domain/status"
	"github.com/ganot/statuswatch/internal/repository"
)

// observedAtLayout is fixed-width so that lexicographic ordering of the
// observed_at column matches chronological ordering. Values are always UTC.
const observedAtLayout = "2006-01-02 15:04:05.000000000"

// SnapshotRepository implements repository.SnapshotRepository for SQLite.
// The full record, raw text included, is serialized into the payload column;
// project_name and observed_at are mirrored into indexed columns for range
// scans.
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save appends a snapshot. Prior snapshots are never updated or deleted.
func (r *SnapshotRepository) Save(ctx context.Context, rec *status.StatusRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO snapshots (id, project_name, source_id, observed_at, overall_status, payload)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		rec.ProjectName,
		rec.SourceID,
		rec.ObservedAt.UTC().Format(observedAtLayout),
		rec.OverallStatus,
		string(payload),
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateSnapshot
		}
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// GetLatest returns the newest snapshot for the project.
func (r *SnapshotRepository) GetLatest(ctx context.Context, projectName string) (*status.StatusRecord, error) {
	query := `
		SELECT payload FROM snapshots
		WHERE project_name = ?
		ORDER BY observed_at DESC
		LIMIT 1
	`

	var payload string
	err := r.db.QueryRowContext(ctx, query, projectName).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	return decodeSnapshot(payload)
}

// GetHistory returns up to limit snapshots for the project, newest first.
func (r *SnapshotRepository) GetHistory(ctx context.Context, projectName string, limit int) ([]status.StatusRecord, error) {
	query := `
		SELECT payload FROM snapshots
		WHERE project_name = ?
		ORDER BY observed_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, projectName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var history []status.StatusRecord
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		rec, err := decodeSnapshot(payload)
		if err != nil {
			return nil, err
		}
		history = append(history, *rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", err)
	}

	return history, nil
}

// decodeSnapshot unmarshals a stored payload. Schema drift is surfaced as
// ErrMalformedRecord rather than silently migrated.
func decodeSnapshot(payload string) (*status.StatusRecord, error) {
	var rec status.StatusRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrMalformedRecord, err)
	}
	return &rec, nil
}
