package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"snapshots",
		"api_keys",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestSnapshotsTable verifies the snapshots table structure and constraints
func TestSnapshotsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO snapshots (id, project_name, source_id, observed_at, overall_status, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"s1", "Hexa Program", "page-1", "2025-03-14 09:00:00.000000000", "Green", "{}")
	require.NoError(t, err)

	// Query it back
	var id, projectName, sourceID, overallStatus string
	err = db.QueryRowContext(ctx,
		`SELECT id, project_name, source_id, overall_status FROM snapshots WHERE id = ?`,
		"s1").Scan(&id, &projectName, &sourceID, &overallStatus)
	require.NoError(t, err)
	require.Equal(t, "s1", id)
	require.Equal(t, "Hexa Program", projectName)
	require.Equal(t, "page-1", sourceID)
	require.Equal(t, "Green", overallStatus)

	// Status constraint - should fail with a value outside the four colors
	_, err = db.ExecContext(ctx,
		`INSERT INTO snapshots (id, project_name, source_id, observed_at, overall_status, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"s2", "Hexa Program", "page-1", "2025-03-14 10:00:00.000000000", "Purple", "{}")
	require.Error(t, err, "should fail with invalid overall_status")

	// Uniqueness - same project and observation time cannot be stored twice
	_, err = db.ExecContext(ctx,
		`INSERT INTO snapshots (id, project_name, source_id, observed_at, overall_status, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"s3", "Hexa Program", "page-2", "2025-03-14 09:00:00.000000000", "Yellow", "{}")
	require.Error(t, err, "should fail with duplicate (project_name, observed_at)")
}

// TestAPIKeysTable verifies the api_keys table structure
func TestAPIKeysTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO api_keys (key_hash, tenant_id, description) VALUES (?, ?, ?)`,
		"abc123", "tenant1", "test key")
	require.NoError(t, err)

	var keyHash, tenantID string
	err = db.QueryRowContext(ctx,
		`SELECT key_hash, tenant_id FROM api_keys WHERE key_hash = ?`,
		"abc123").Scan(&keyHash, &tenantID)
	require.NoError(t, err)
	require.Equal(t, "abc123", keyHash)
	require.Equal(t, "tenant1", tenantID)
}
