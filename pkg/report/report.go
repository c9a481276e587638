package report

import (
	"errors"
	"time"
)

// ErrInvalidDate indicates an entry reached the engine without a usable start
// date. The ingestion parsers are the primary validation layer, so hitting
// this means the upstream contract was broken; the whole run is aborted.
var ErrInvalidDate = errors.New("entry has no valid start date")

// ErrInvalidTarget indicates a non-positive expected-hours target. Checked
// before any aggregation runs.
var ErrInvalidTarget = errors.New("expected hours target must be positive")

// TrendSignal is the week-over-week direction of an entity's hours.
type TrendSignal string

const (
	TrendUp   TrendSignal = "up"
	TrendDown TrendSignal = "down"
	TrendFlat TrendSignal = "flat"
	// TrendNew marks entities with no total in the exact prior calendar week.
	TrendNew TrendSignal = "new"
)

// PerformanceStatus classifies actual hours against the expected target.
type PerformanceStatus string

const (
	StatusOnTarget         PerformanceStatus = "onTarget"
	StatusOffTarget        PerformanceStatus = "offTarget"
	StatusSignificantlyOff PerformanceStatus = "significantlyOff"
)

// Report is the renderer-agnostic result of one report run. Weeks are ordered
// most recent first, and all trend signals and performance statuses are
// pre-resolved; consumers must not re-derive them.
type Report struct {
	ID                      string
	GeneratedAt             time.Time
	ExpectedHoursPerStudent float64
	Weeks                   []WeekReport
}

// WeekReport covers one Monday-aligned calendar week.
type WeekReport struct {
	StartDate          time.Time
	EndDate            time.Time
	Label              string
	TotalHours         float64
	Participants       int
	AvgHoursPerStudent float64
	Teams              []TeamReport
}

type TeamReport struct {
	Name          string
	TotalHours    float64
	ExpectedHours float64
	Trend         TrendSignal
	Status        PerformanceStatus
	Students      []StudentReport
	Categories    []EntityTotal
	Activities    []EntityTotal
}

type StudentReport struct {
	Name       string
	TotalHours float64
	Trend      TrendSignal
	Status     PerformanceStatus
	Categories []EntityTotal
	Activities []EntityTotal
}

// EntityTotal is one category or activity slice of a breakdown, ordered by
// descending hours for charting.
type EntityTotal struct {
	Name  string
	Hours float64
	Trend TrendSignal
}
