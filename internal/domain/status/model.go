package status

import "time"

// OverallStatus represents the health indicator extracted from a status page
type OverallStatus string

const (
	StatusGreen   OverallStatus = "Green"
	StatusYellow  OverallStatus = "Yellow"
	StatusRed     OverallStatus = "Red"
	StatusUnknown OverallStatus = "Unknown"
)

// Rank returns the ordinal severity of a status. Higher is worse; a document
// with no recognizable indicator ranks worst because the project state is
// unobservable.
func (s OverallStatus) Rank() int {
	switch s {
	case StatusGreen:
		return 0
	case StatusYellow:
		return 1
	case StatusRed:
		return 2
	default:
		return 3
	}
}

// RiskEntry is one row of an open-issues/risk table. Description is always
// present; the remaining cells are optional and nil when the source table
// omits them.
type RiskEntry struct {
	Description string  `json:"description"`
	Owner       *string `json:"owner,omitempty"`
	ETA         *string `json:"eta,omitempty"`
	Status      *string `json:"status,omitempty"`
	Comment     *string `json:"comment,omitempty"`
}

// StatusRecord is one timestamped observation of a project. Records are
// constructed fully by the Extractor and never mutated afterwards; a new
// observation supersedes the previous one in storage rather than replacing it.
type StatusRecord struct {
	ID            string         `json:"id"`
	ProjectName   string         `json:"project_name"`
	SourceID      string         `json:"source_id"`
	ObservedAt    time.Time      `json:"observed_at"`
	OverallStatus OverallStatus  `json:"overall_status"`
	Phase         *string        `json:"phase,omitempty"`
	StreetDate    *string        `json:"street_date,omitempty"`
	ShipDate      *string        `json:"ship_date,omitempty"`
	KeyCallouts   []string       `json:"key_callouts,omitempty"`
	Risks         []RiskEntry    `json:"risks,omitempty"`
	Metrics       map[string]any `json:"metrics,omitempty"`
	RawText       string         `json:"raw_text"`
}

// SnapshotSummary is a lightweight representation of a stored record for
// history listings.
type SnapshotSummary struct {
	ID            string        `json:"id"`
	ProjectName   string        `json:"project_name"`
	SourceID      string        `json:"source_id"`
	ObservedAt    time.Time     `json:"observed_at"`
	OverallStatus OverallStatus `json:"overall_status"`
	RiskCount     int           `json:"risk_count"`
}

// Summary returns the lightweight listing view of a record.
func (r *StatusRecord) Summary() SnapshotSummary {
	return SnapshotSummary{
		ID:            r.ID,
		ProjectName:   r.ProjectName,
		SourceID:      r.SourceID,
		ObservedAt:    r.ObservedAt,
		OverallStatus: r.OverallStatus,
		RiskCount:     len(r.Risks),
	}
}
