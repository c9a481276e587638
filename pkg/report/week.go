package report

import (
	"fmt"
	"time"
)

// WeekStartOf returns the Monday 00:00 of the calendar week containing t,
// in t's location. Fails only on a zero time, which the ingestion contract
// should already have rejected.
func WeekStartOf(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, ErrInvalidDate
	}
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location()), nil
}

// WeekEndOf returns the Sunday of the week starting at weekStart.
func WeekEndOf(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

// WeekLabel formats a week range like "January 13-19, 2026", or
// "January 29 - February 4, 2026" when it crosses a month boundary.
func WeekLabel(weekStart time.Time) string {
	weekEnd := WeekEndOf(weekStart)
	if weekStart.Month() == weekEnd.Month() {
		return fmt.Sprintf("%s-%s", weekStart.Format("January 2"), weekEnd.Format("2, 2006"))
	}
	return fmt.Sprintf("%s - %s", weekStart.Format("January 2"), weekEnd.Format("January 2, 2006"))
}
