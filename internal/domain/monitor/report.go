package monitor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ganot/statuswatch/internal/domain/change"
	"github.com/ganot/statuswatch/internal/domain/status"
)

const maxReportRisks = 5

var statusMarkers = map[status.OverallStatus]string{
	status.StatusGreen:   "\U0001F7E2",
	status.StatusYellow:  "\U0001F7E1",
	status.StatusRed:     "\U0001F534",
	status.StatusUnknown: "⚪",
}

var severityMarkers = map[change.Severity]string{
	change.SeverityInfo:     "ℹ️",
	change.SeverityWarning:  "⚠️",
	change.SeverityCritical: "\U0001F6A8",
}

// RenderReport renders a deterministic, human-readable status report. The
// section order is fixed: header, overall status, phase/dates, detected
// changes, key callouts, open risks, metrics. Sections with nothing to show
// are omitted entirely.
func RenderReport(rec *status.StatusRecord, changes []change.Change) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Status Report\n", rec.ProjectName)
	fmt.Fprintf(&b, "Generated: %s\n\n", rec.ObservedAt.UTC().Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## Overall Status: %s %s\n\n", statusMarkers[rec.OverallStatus], rec.OverallStatus)

	if rec.Phase != nil || rec.StreetDate != nil || rec.ShipDate != nil {
		if rec.Phase != nil {
			fmt.Fprintf(&b, "**Phase**: %s\n", *rec.Phase)
		}
		if rec.StreetDate != nil {
			fmt.Fprintf(&b, "**Street Date**: %s\n", *rec.StreetDate)
		}
		if rec.ShipDate != nil {
			fmt.Fprintf(&b, "**Ship Date**: %s\n", *rec.ShipDate)
		}
		b.WriteString("\n")
	}

	if len(changes) > 0 {
		b.WriteString("## Changes Detected\n")
		for _, c := range changes {
			fmt.Fprintf(&b, "- %s [%s] %s: %s → %s\n",
				severityMarkers[c.Severity],
				strings.ToUpper(string(c.Severity)),
				c.Field, c.OldValue, c.NewValue)
		}
		b.WriteString("\n")
	}

	if len(rec.KeyCallouts) > 0 {
		b.WriteString("## Key Callouts\n")
		for _, callout := range rec.KeyCallouts {
			fmt.Fprintf(&b, "- %s\n", callout)
		}
		b.WriteString("\n")
	}

	if len(rec.Risks) > 0 {
		b.WriteString("## Open Risks/Issues\n")
		risks := rec.Risks
		if len(risks) > maxReportRisks {
			risks = risks[:maxReportRisks]
		}
		for _, risk := range risks {
			fmt.Fprintf(&b, "- **%s**\n", risk.Description)
			if risk.Owner != nil {
				fmt.Fprintf(&b, "  - Owner: %s\n", *risk.Owner)
			}
			if risk.ETA != nil {
				fmt.Fprintf(&b, "  - ETA: %s\n", *risk.ETA)
			}
		}
		b.WriteString("\n")
	}

	if len(rec.Metrics) > 0 {
		b.WriteString("## Key Metrics\n")
		keys := make([]string, 0, len(rec.Metrics))
		for key := range rec.Metrics {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&b, "- %s: %v\n", humanizeKey(key), rec.Metrics[key])
		}
		b.WriteString("\n")
	}

	return b.String()
}

// humanizeKey turns a snake_case metric key into a title-cased label.
func humanizeKey(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
