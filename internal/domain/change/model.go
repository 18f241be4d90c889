package change

import "time"

// Severity classifies how urgent a detected change is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Change is one detected difference between two status records of the same
// project. Severity is derived from (Field, OldValue, NewValue) by the
// Analyzer and is never supplied by callers.
type Change struct {
	ProjectName string    `json:"project_name"`
	ObservedAt  time.Time `json:"observed_at"`
	Field       string    `json:"field"`
	OldValue    string    `json:"old_value"`
	NewValue    string    `json:"new_value"`
	Severity    Severity  `json:"severity"`
}

// Fields that the Analyzer reports on, in emission order.
const (
	FieldOverallStatus = "overall_status"
	FieldStreetDate    = "street_date"
	FieldPhase         = "phase"
	FieldRisks         = "risks"
	FieldShipDate      = "ship_date"
)
