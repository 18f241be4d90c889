package change_test

import (
	"testing"
	"time"

	"github.com/ganot/statuswatch/internal/domain/change"
	"github.com/ganot/statuswatch/internal/domain/status"
	"github.com/stretchr/testify/require"
)

func makeRecord(overall status.OverallStatus, mutate func(*status.StatusRecord)) *status.StatusRecord {
	rec := &status.StatusRecord{
		ID:            "r1",
		ProjectName:   "Hexa Program",
		SourceID:      "page-1",
		ObservedAt:    time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		OverallStatus: overall,
	}
	if mutate != nil {
		mutate(rec)
	}
	return rec
}

func strPtr(val string) *string {
	return &val
}

func TestAnalyzer_IdenticalRecordsYieldNoChanges(t *testing.T) {
	a := change.NewAnalyzer()
	rec := makeRecord(status.StatusGreen, func(r *status.StatusRecord) {
		r.Phase = strPtr("DVT")
		r.StreetDate = strPtr("14th March 2025")
		r.Risks = []status.RiskEntry{{Description: "Audio driver crash"}}
	})
	dup := *rec

	require.Empty(t, a.Diff(rec, &dup))
}

func TestAnalyzer_StatusRegressionIsCritical(t *testing.T) {
	a := change.NewAnalyzer()
	changes := a.Diff(makeRecord(status.StatusGreen, nil), makeRecord(status.StatusRed, nil))

	require.Len(t, changes, 1)
	require.Equal(t, change.FieldOverallStatus, changes[0].Field)
	require.Equal(t, "Green", changes[0].OldValue)
	require.Equal(t, "Red", changes[0].NewValue)
	require.Equal(t, change.SeverityCritical, changes[0].Severity)
}

func TestAnalyzer_StatusImprovementIsInfo(t *testing.T) {
	a := change.NewAnalyzer()
	changes := a.Diff(makeRecord(status.StatusRed, nil), makeRecord(status.StatusGreen, nil))

	require.Len(t, changes, 1)
	require.Equal(t, change.SeverityInfo, changes[0].Severity)
}

func TestAnalyzer_MovingToUnknownIsCritical(t *testing.T) {
	// Losing observability ranks worse than any explicit color.
	a := change.NewAnalyzer()
	changes := a.Diff(makeRecord(status.StatusRed, nil), makeRecord(status.StatusUnknown, nil))

	require.Len(t, changes, 1)
	require.Equal(t, change.SeverityCritical, changes[0].Severity)
}

func TestAnalyzer_StreetDateMovementIsWarning(t *testing.T) {
	a := change.NewAnalyzer()

	prev := makeRecord(status.StatusGreen, func(r *status.StatusRecord) { r.StreetDate = strPtr("14th March 2025") })
	curr := makeRecord(status.StatusGreen, func(r *status.StatusRecord) { r.StreetDate = strPtr("28th March 2025") })
	changes := a.Diff(prev, curr)
	require.Len(t, changes, 1)
	require.Equal(t, change.FieldStreetDate, changes[0].Field)
	require.Equal(t, change.SeverityWarning, changes[0].Severity)

	// Absent -> present also counts as movement.
	changes = a.Diff(makeRecord(status.StatusGreen, nil), curr)
	require.Len(t, changes, 1)
	require.Equal(t, "(none)", changes[0].OldValue)
	require.Equal(t, "28th March 2025", changes[0].NewValue)
}

func TestAnalyzer_PhaseChangeIsInfo(t *testing.T) {
	a := change.NewAnalyzer()
	prev := makeRecord(status.StatusGreen, func(r *status.StatusRecord) { r.Phase = strPtr("EVT") })
	curr := makeRecord(status.StatusGreen, func(r *status.StatusRecord) { r.Phase = strPtr("DVT") })

	changes := a.Diff(prev, curr)
	require.Len(t, changes, 1)
	require.Equal(t, change.FieldPhase, changes[0].Field)
	require.Equal(t, change.SeverityInfo, changes[0].Severity)
}

func TestAnalyzer_RiskCountGrowthOnly(t *testing.T) {
	a := change.NewAnalyzer()
	one := makeRecord(status.StatusGreen, func(r *status.StatusRecord) {
		r.Risks = []status.RiskEntry{{Description: "Audio driver crash"}}
	})
	two := makeRecord(status.StatusGreen, func(r *status.StatusRecord) {
		r.Risks = []status.RiskEntry{{Description: "Audio driver crash"}, {Description: "Battery drain"}}
	})

	changes := a.Diff(one, two)
	require.Len(t, changes, 1)
	require.Equal(t, change.FieldRisks, changes[0].Field)
	require.Equal(t, "1 risks", changes[0].OldValue)
	require.Equal(t, "2 risks", changes[0].NewValue)
	require.Equal(t, change.SeverityWarning, changes[0].Severity)

	// Risks being closed is not flagged.
	require.Empty(t, a.Diff(two, one))
	require.Empty(t, a.Diff(one, one))
}

func TestAnalyzer_ShipDateMovementIsWarning(t *testing.T) {
	a := change.NewAnalyzer()
	prev := makeRecord(status.StatusGreen, func(r *status.StatusRecord) { r.ShipDate = strPtr("2025-02-20") })
	curr := makeRecord(status.StatusGreen, nil)

	changes := a.Diff(prev, curr)
	require.Len(t, changes, 1)
	require.Equal(t, change.FieldShipDate, changes[0].Field)
	require.Equal(t, "2025-02-20", changes[0].OldValue)
	require.Equal(t, "(none)", changes[0].NewValue)
	require.Equal(t, change.SeverityWarning, changes[0].Severity)
}

func TestAnalyzer_FixedEmissionOrder(t *testing.T) {
	a := change.NewAnalyzer()
	prev := makeRecord(status.StatusGreen, func(r *status.StatusRecord) {
		r.StreetDate = strPtr("14th March 2025")
		r.Phase = strPtr("EVT")
		r.ShipDate = strPtr("2025-02-20")
	})
	curr := makeRecord(status.StatusRed, func(r *status.StatusRecord) {
		r.StreetDate = strPtr("28th March 2025")
		r.Phase = strPtr("DVT")
		r.ShipDate = strPtr("2025-03-01")
		r.Risks = []status.RiskEntry{{Description: "Battery drain"}}
	})

	changes := a.Diff(prev, curr)
	require.Len(t, changes, 5)
	require.Equal(t, change.FieldOverallStatus, changes[0].Field)
	require.Equal(t, change.FieldStreetDate, changes[1].Field)
	require.Equal(t, change.FieldPhase, changes[2].Field)
	require.Equal(t, change.FieldRisks, changes[3].Field)
	require.Equal(t, change.FieldShipDate, changes[4].Field)
}

func TestAnalyzer_ChangeCarriesNewObservation(t *testing.T) {
	a := change.NewAnalyzer()
	prev := makeRecord(status.StatusGreen, nil)
	curr := makeRecord(status.StatusYellow, func(r *status.StatusRecord) {
		r.ObservedAt = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	})

	changes := a.Diff(prev, curr)
	require.Len(t, changes, 1)
	require.Equal(t, "Hexa Program", changes[0].ProjectName)
	require.Equal(t, curr.ObservedAt, changes[0].ObservedAt)
}
