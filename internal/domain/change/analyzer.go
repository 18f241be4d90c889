package change

import (
	"fmt"

	"github.com/ganot/statuswatch/internal/domain/status"
)

// absentValue renders an unset optional field in change values and reports.
const absentValue = "(none)"

// Analyzer compares two status records of the same project and classifies
// what changed. It is stateless and safe for concurrent use.
type Analyzer struct{}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Diff returns the changes from previous to current in a fixed field order:
// overall status, street date, phase, risk count, ship date. The fixed order
// keeps report rendering deterministic. Equal fields emit nothing, and
// absent-vs-absent counts as equal.
func (a *Analyzer) Diff(previous, current *status.StatusRecord) []Change {
	var changes []Change

	emit := func(field, oldVal, newVal string, severity Severity) {
		changes = append(changes, Change{
			ProjectName: current.ProjectName,
			ObservedAt:  current.ObservedAt,
			Field:       field,
			OldValue:    oldVal,
			NewValue:    newVal,
			Severity:    severity,
		})
	}

	if previous.OverallStatus != current.OverallStatus {
		emit(FieldOverallStatus,
			string(previous.OverallStatus),
			string(current.OverallStatus),
			statusChangeSeverity(previous.OverallStatus, current.OverallStatus))
	}

	if !optEqual(previous.StreetDate, current.StreetDate) {
		// Any date movement is schedule-relevant but not automatically bad.
		emit(FieldStreetDate, optValue(previous.StreetDate), optValue(current.StreetDate), SeverityWarning)
	}

	if !optEqual(previous.Phase, current.Phase) {
		// Phase progression is expected.
		emit(FieldPhase, optValue(previous.Phase), optValue(current.Phase), SeverityInfo)
	}

	// Only growth in open-risk count is noteworthy; risks being closed is not
	// flagged.
	if len(current.Risks) > len(previous.Risks) {
		emit(FieldRisks,
			fmt.Sprintf("%d risks", len(previous.Risks)),
			fmt.Sprintf("%d risks", len(current.Risks)),
			SeverityWarning)
	}

	if !optEqual(previous.ShipDate, current.ShipDate) {
		emit(FieldShipDate, optValue(previous.ShipDate), optValue(current.ShipDate), SeverityWarning)
	}

	return changes
}

// statusChangeSeverity classifies a status transition by ordinal rank. An
// increase in rank (the status got worse, including moving to Unknown) is
// critical; a decrease is an improvement and only informational.
func statusChangeSeverity(prev, curr status.OverallStatus) Severity {
	if curr.Rank() > prev.Rank() {
		return SeverityCritical
	}
	return SeverityInfo
}

func optEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func optValue(v *string) string {
	if v == nil {
		return absentValue
	}
	return *v
}
