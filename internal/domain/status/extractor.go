package status

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extraction patterns. Each field is served by an ordered chain of
// alternatives; the first match wins and non-matches degrade to the field's
// documented default instead of failing. Source pages are free-form exports,
// so a missing section is expected rather than exceptional.
var (
	titleRe = regexp.MustCompile(`(?m)^#\s+(.+)$`)

	// Scan order is fixed Green -> Yellow -> Red. A page that emphasizes more
	// than one color resolves to the earliest color in this list, so Green is
	// preferred over a simultaneous Yellow or Red.
	statusPatterns = []struct {
		re    *regexp.Regexp
		value OverallStatus
	}{
		{regexp.MustCompile(`(?i)\*\*green\*\*`), StatusGreen},
		{regexp.MustCompile(`(?i)\*\*yellow\*\*`), StatusYellow},
		{regexp.MustCompile(`(?i)\*\*red\*\*`), StatusRed},
	}

	phasePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)phase[:\s].*?\b(EVT|DVT|PVT|MP)\b`),
		regexp.MustCompile(`(?i)subphase[:\s].*?\b(EVT|DVT|PVT|MP)\b`),
	}

	streetDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)street(?:\s*date)?[:\s]+(\d{1,2}(?:st|nd|rd|th)?\s+\w+\s+\d{4})`),
		regexp.MustCompile(`(?i)street\s*date[:\s]+(\d{1,2}(?:st|nd|rd|th)?\s+\w+)`),
		regexp.MustCompile(`(?i)street.*?(\d{4}-\d{2}-\d{2})`),
	}

	shipDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ship(?:\s*date)?[:\s]+(\d{1,2}(?:st|nd|rd|th)?\s+\w+\s+\d{4})`),
		regexp.MustCompile(`(?i)ship\s*date[:\s]+(\d{1,2}(?:st|nd|rd|th)?\s+\w+)`),
		regexp.MustCompile(`(?i)ship.*?(\d{4}-\d{2}-\d{2})`),
	}

	execSummaryRe  = regexp.MustCompile(`(?i)executive summary`)
	riskHeadingRe  = regexp.MustCompile(`(?i)key open issues|risks?/issues?`)
	nextHeadingRe  = regexp.MustCompile(`\n#`)
	sentenceRe     = regexp.MustCompile(`[.!?]+`)
	tableSepCellRe = regexp.MustCompile(`^:?-+:?$`)

	setupRateRe  = regexp.MustCompile(`(?i)(\d+)\s*\((\d+)%\)\s*(?:trials\s*)?devices?\s*(?:have\s*been\s*)?set\s*up`)
	csatPatterns = []struct {
		re  *regexp.Regexp
		key string
	}{
		{regexp.MustCompile(`(?i)setup.*?(\d+\.\d+)/5`), "csat_setup"},
		{regexp.MustCompile(`(?i)response\s*time.*?(\d+\.\d+)/5`), "csat_response_time"},
		{regexp.MustCompile(`(?i)audio\s*quality.*?(\d+\.\d+)/5`), "csat_audio_quality"},
	}
)

// calloutKeywords marks executive-summary sentences worth surfacing.
var calloutKeywords = []string{
	"resource constraint",
	"risk",
	"delay",
	"critical",
	"impact",
	"mitigation",
	"blocker",
	"issue",
}

const maxCallouts = 5

// Extractor parses raw status-page markdown into a StatusRecord. It is
// stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawText into a fully-populated StatusRecord. It never fails:
// any sub-extraction that finds no match falls back to its default (absent
// field, Unknown status, empty list). An empty input produces a valid default
// record.
func (e *Extractor) Extract(rawText, sourceID string, projectNameHint string) *StatusRecord {
	rec := &StatusRecord{
		ID:            uuid.NewString(),
		ProjectName:   extractProjectName(rawText, projectNameHint),
		SourceID:      sourceID,
		ObservedAt:    time.Now().UTC(),
		OverallStatus: extractOverallStatus(rawText),
		Phase:         firstMatch(phasePatterns, rawText, strings.ToUpper),
		StreetDate:    firstMatch(streetDatePatterns, rawText, nil),
		ShipDate:      firstMatch(shipDatePatterns, rawText, nil),
		KeyCallouts:   extractKeyCallouts(rawText),
		Risks:         extractRisks(rawText),
		Metrics:       extractMetrics(rawText),
		RawText:       rawText,
	}
	return rec
}

func extractProjectName(text, hint string) string {
	if strings.TrimSpace(hint) != "" {
		return hint
	}
	if m := titleRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "Unknown Project"
}

func extractOverallStatus(text string) OverallStatus {
	for _, p := range statusPatterns {
		if p.re.MatchString(text) {
			return p.value
		}
	}
	return StatusUnknown
}

// firstMatch runs an ordered pattern chain and returns the first capture
// group of the first pattern that matches, or nil when none do. An optional
// transform normalizes the matched text.
func firstMatch(patterns []*regexp.Regexp, text string, transform func(string) string) *string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			val := strings.TrimSpace(m[1])
			if transform != nil {
				val = transform(val)
			}
			return &val
		}
	}
	return nil
}

// sectionAfter returns the text between the first match of heading and the
// next markdown heading (or end of document). The bool reports whether the
// heading was found at all.
func sectionAfter(heading *regexp.Regexp, text string) (string, bool) {
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	section := text[loc[1]:]
	if end := nextHeadingRe.FindStringIndex(section); end != nil {
		section = section[:end[0]]
	}
	return section, true
}

func extractKeyCallouts(text string) []string {
	section, ok := sectionAfter(execSummaryRe, text)
	if !ok {
		return nil
	}

	var callouts []string
	for _, sentence := range sentenceRe.Split(section, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 20 {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, keyword := range calloutKeywords {
			if strings.Contains(lower, keyword) {
				callouts = append(callouts, sentence)
				break
			}
		}
		if len(callouts) == maxCallouts {
			break
		}
	}
	return callouts
}

func extractRisks(text string) []RiskEntry {
	section, ok := sectionAfter(riskHeadingRe, text)
	if !ok {
		return nil
	}

	var risks []RiskEntry
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := splitTableRow(line)
		if len(cells) == 0 || isSeparatorRow(cells) {
			continue
		}
		// A row only counts when its description cell carries text.
		if cells[0] == "" {
			continue
		}
		risks = append(risks, RiskEntry{
			Description: cells[0],
			Owner:       cellAt(cells, 1),
			ETA:         cellAt(cells, 2),
			Status:      cellAt(cells, 3),
			Comment:     cellAt(cells, 4),
		})
	}
	return risks
}

// splitTableRow splits a markdown table row into trimmed cells, dropping the
// boundary pipes.
func splitTableRow(line string) []string {
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		if !tableSepCellRe.MatchString(cell) {
			return false
		}
	}
	return true
}

// cellAt maps a positional table cell to an optional field. Missing and blank
// cells both map to absent, never to an empty-string sentinel.
func cellAt(cells []string, idx int) *string {
	if idx >= len(cells) || cells[idx] == "" {
		return nil
	}
	return &cells[idx]
}

func extractMetrics(text string) map[string]any {
	metrics := map[string]any{}

	if m := setupRateRe.FindStringSubmatch(text); m != nil {
		if count, err := strconv.Atoi(m[1]); err == nil {
			metrics["alpha_devices_setup"] = count
		}
		metrics["alpha_setup_rate"] = m[2] + "%"
	}

	for _, p := range csatPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if score, err := strconv.ParseFloat(m[1], 64); err == nil {
			metrics[p.key] = score
		}
	}

	return metrics
}
