package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Resolver maps a raw user identifier (and optionally an email) to a display
// name. The report engine treats student identifiers as opaque keys, so
// resolution happens at ingestion time only.
type Resolver interface {
	Resolve(user string, email string) string
}

// NoopResolver returns identifiers unchanged. Used when no roster is supplied.
type NoopResolver struct{}

func (NoopResolver) Resolve(user string, _ string) string {
	return strings.TrimSpace(user)
}

var emailIdPattern = regexp.MustCompile(`^([^@]+)@`)

// CSVResolver resolves identifiers against a roster CSV with columns
// "Email", "Preferred/First Name", "Last Name" and optionally "Student ID".
type CSVResolver struct {
	names map[string]string
}

// NewCSVResolver reads the roster and builds the identifier -> "First Last"
// mapping. Rows without both name parts are skipped.
func NewCSVResolver(r io.Reader) (*CSVResolver, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("roster is empty")
	}

	columns := map[string]int{}
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	names := map[string]string{}
	for _, row := range records[1:] {
		firstName := strings.TrimSpace(field(row, columns, "preferred/first name"))
		lastName := strings.TrimSpace(field(row, columns, "last name"))
		if firstName == "" || lastName == "" {
			continue
		}
		fullName := firstName + " " + lastName

		if email := field(row, columns, "email"); email != "" {
			if match := emailIdPattern.FindStringSubmatch(strings.TrimSpace(email)); match != nil {
				names[strings.ToLower(match[1])] = fullName
			}
		}
		if id := strings.TrimSpace(field(row, columns, "student id")); id != "" {
			names[strings.ToLower(id)] = fullName
		}
	}
	log.Debugf("roster loaded: %d resolvable identifiers from %d rows", len(names), len(records)-1)

	return &CSVResolver{names: names}, nil
}

// Resolve tries, in order: the user field as an already-resolved full name,
// the user field as an identifier, and the identifier part of the email.
// Unresolvable identifiers are returned as-is.
func (r *CSVResolver) Resolve(user string, email string) string {
	clean := strings.TrimSpace(user)
	if clean == "" {
		return clean
	}

	if strings.Contains(clean, " ") {
		for _, fullName := range r.names {
			if strings.EqualFold(fullName, clean) {
				return fullName
			}
		}
		return clean
	}

	if fullName, ok := r.names[strings.ToLower(clean)]; ok {
		return fullName
	}

	if match := emailIdPattern.FindStringSubmatch(strings.TrimSpace(email)); match != nil {
		if fullName, ok := r.names[strings.ToLower(match[1])]; ok {
			return fullName
		}
	}

	return clean
}

// Size returns the number of resolvable identifiers.
func (r *CSVResolver) Size() int {
	return len(r.names)
}

func field(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
