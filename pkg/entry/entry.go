package entry

import (
	"strings"
	"time"
)

// Sentinel labels applied when a categorical field is missing from the input.
// Missing values are a tolerated data-quality condition, not an error.
const (
	UnknownLabel       = "Unknown"
	UncategorizedLabel = "Uncategorized"
)

// Entry is a single time-tracking record as produced by the parsers.
// It is a plain value and is never mutated after parsing.
type Entry struct {
	Project       string
	Student       string
	Team          string
	Start         time.Time
	End           time.Time
	DurationHours float64
	Activity      string
	Category      string
	Description   string
}

// NormalizeLabels returns a copy of the entry with empty categorical fields
// replaced by their sentinel labels.
func (e Entry) NormalizeLabels() Entry {
	e.Project = orLabel(e.Project, UnknownLabel)
	e.Student = orLabel(e.Student, UnknownLabel)
	e.Team = orLabel(e.Team, UnknownLabel)
	e.Activity = orLabel(e.Activity, UncategorizedLabel)
	e.Category = orLabel(e.Category, UncategorizedLabel)
	return e
}

func orLabel(value, label string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, "nan") {
		return label
	}
	return trimmed
}
