package entry

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mentordash/mentordash/pkg/roster"
	log "github.com/sirupsen/logrus"
)

var requiredColumns = []string{
	"Project", "User", "Group", "Start Date", "End Date", "Duration (decimal)", "Tags",
}

// Date layouts accepted in exports, tried in order. Ambiguous numeric forms
// are interpreted day-first, matching the upstream tracking tool.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

var (
	activityPattern = regexp.MustCompile(`(?i)ACTIVITY:\s*([^,\n]+)`)
	categoryPattern = regexp.MustCompile(`(?i)CATEGORY:\s*([^,\n]+)`)
)

// ParseCSV reads a time-tracking CSV export and returns the normalized
// entries. Rows with a non-positive duration or an unparseable date are
// skipped with a warning; an export yielding no usable entries is an error.
func ParseCSV(r io.Reader, resolver roster.Resolver) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv contains no data rows")
	}

	columns := map[string]int{}
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	entries := make([]Entry, 0, len(records)-1)
	for i, row := range records[1:] {
		rowNum := i + 2 // 1-based, after the header

		start, err := ParseDate(cell(row, columns, "Start Date"))
		if err != nil {
			log.Warnf("skipping row %d: %v", rowNum, err)
			continue
		}
		end, err := ParseDate(cell(row, columns, "End Date"))
		if err != nil {
			// An entry is attributed to the week of its start date, so a
			// missing end date does not block ingestion.
			end = start
		}

		duration, err := strconv.ParseFloat(strings.TrimSpace(cell(row, columns, "Duration (decimal)")), 64)
		if err != nil {
			log.Warnf("skipping row %d: invalid duration %q", rowNum, cell(row, columns, "Duration (decimal)"))
			continue
		}
		if duration <= 0 {
			log.Debugf("skipping row %d: non-positive duration", rowNum)
			continue
		}

		activity, category := ExtractTags(cell(row, columns, "Tags"))
		student := resolver.Resolve(cell(row, columns, "User"), cell(row, columns, "Email"))

		e := Entry{
			Project:       cell(row, columns, "Project"),
			Student:       student,
			Team:          cell(row, columns, "Group"),
			Start:         start,
			End:           end,
			DurationHours: duration,
			Activity:      activity,
			Category:      category,
			Description:   cell(row, columns, "Description"),
		}
		entries = append(entries, e.NormalizeLabels())
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid time entries found")
	}
	log.Debugf("parsed %d entries from %d csv rows", len(entries), len(records)-1)
	return entries, nil
}

// ParseDate parses a date in any of the accepted export layouts.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", trimmed)
}

// ExtractTags pulls the activity and category out of a free-text tags field
// of the form "ACTIVITY: Learning, CATEGORY: Academic". Absent markers fall
// back to the Uncategorized sentinel.
func ExtractTags(tags string) (activity string, category string) {
	activity = UncategorizedLabel
	category = UncategorizedLabel
	if strings.TrimSpace(tags) == "" {
		return activity, category
	}
	if match := activityPattern.FindStringSubmatch(tags); match != nil {
		activity = strings.TrimSpace(match[1])
	}
	if match := categoryPattern.FindStringSubmatch(tags); match != nil {
		category = strings.TrimSpace(match[1])
	}
	return activity, category
}

func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
