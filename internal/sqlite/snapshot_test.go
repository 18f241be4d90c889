package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ganot/statuswatch/internal/domain/status"
	"github.com/ganot/statuswatch/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func strPtr(val string) *string {
	return &val
}

func testRecord(projectName string, observedAt time.Time, overall status.OverallStatus) *status.StatusRecord {
	return &status.StatusRecord{
		ID:            uuid.NewString(),
		ProjectName:   projectName,
		SourceID:      "page-1",
		ObservedAt:    observedAt,
		OverallStatus: overall,
		RawText:       "# " + projectName + "\n",
	}
}

func TestSnapshotRepository_SaveAndGetLatest(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, testRecord("Hexa Program", base, status.StatusGreen)))
	require.NoError(t, repo.Save(ctx, testRecord("Hexa Program", base.Add(time.Hour), status.StatusYellow)))

	latest, err := repo.GetLatest(ctx, "Hexa Program")
	require.NoError(t, err)
	require.Equal(t, status.StatusYellow, latest.OverallStatus)
	require.Equal(t, base.Add(time.Hour), latest.ObservedAt)
}

func TestSnapshotRepository_GetLatestUnknownProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSnapshotRepository(db)

	_, err := repo.GetLatest(context.Background(), "No Such Project")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSnapshotRepository_ProjectsArePartitioned(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	observed := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, testRecord("Hexa Program", observed, status.StatusGreen)))
	require.NoError(t, repo.Save(ctx, testRecord("Alpha Trials", observed, status.StatusRed)))

	latest, err := repo.GetLatest(ctx, "Hexa Program")
	require.NoError(t, err)
	require.Equal(t, status.StatusGreen, latest.OverallStatus)

	latest, err = repo.GetLatest(ctx, "Alpha Trials")
	require.NoError(t, err)
	require.Equal(t, status.StatusRed, latest.OverallStatus)
}

func TestSnapshotRepository_GetHistoryNewestFirst(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := testRecord("Hexa Program", base.AddDate(0, 0, i), status.StatusGreen)
		require.NoError(t, repo.Save(ctx, rec))
	}

	history, err := repo.GetHistory(ctx, "Hexa Program", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, base.AddDate(0, 0, 4), history[0].ObservedAt)
	require.Equal(t, base.AddDate(0, 0, 3), history[1].ObservedAt)
	require.Equal(t, base.AddDate(0, 0, 2), history[2].ObservedAt)
}

func TestSnapshotRepository_GetHistoryUnknownProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSnapshotRepository(db)

	history, err := repo.GetHistory(context.Background(), "No Such Project", 10)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestSnapshotRepository_DuplicateObservation(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	observed := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, testRecord("Hexa Program", observed, status.StatusGreen)))

	err := repo.Save(ctx, testRecord("Hexa Program", observed, status.StatusYellow))
	require.ErrorIs(t, err, repository.ErrDuplicateSnapshot)
}

func TestSnapshotRepository_MalformedPayload(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	// Corrupt rows come back as ErrMalformedRecord, not a decode panic.
	_, err := db.ExecContext(ctx,
		`INSERT INTO snapshots (id, project_name, source_id, observed_at, overall_status, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"bad1", "Hexa Program", "page-1", "2025-03-14 09:00:00.000000000", "Green", "{not json")
	require.NoError(t, err)

	_, err = repo.GetLatest(ctx, "Hexa Program")
	require.True(t, errors.Is(err, repository.ErrMalformedRecord))
}

func TestSnapshotRepository_OptionalFieldsRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	rec := testRecord("Hexa Program", time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), status.StatusYellow)
	rec.Phase = strPtr("DVT")
	rec.StreetDate = strPtr("14th March 2025")
	rec.KeyCallouts = []string{"There is a risk of supply delay"}
	rec.Risks = []status.RiskEntry{
		{Description: "Audio driver crash", Owner: strPtr("Jane"), Status: strPtr("Open")},
	}
	rec.Metrics = map[string]any{"alpha_setup_rate": "84%"}
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.GetLatest(ctx, "Hexa Program")
	require.NoError(t, err)
	require.Equal(t, rec.ID, got.ID)
	require.Equal(t, "DVT", *got.Phase)
	require.Equal(t, "14th March 2025", *got.StreetDate)
	require.Nil(t, got.ShipDate)
	require.Equal(t, rec.KeyCallouts, got.KeyCallouts)
	require.Equal(t, rec.Risks, got.Risks)
	require.Equal(t, "84%", got.Metrics["alpha_setup_rate"])
	require.Equal(t, rec.RawText, got.RawText)
}
