package report

import (
	"fmt"
	"time"

	"github.com/mentordash/mentordash/pkg/entry"
	log "github.com/sirupsen/logrus"
)

// Totals is the aggregation tree: week -> team -> student, with category and
// activity sub-totals kept at both the team and the student level. Weeks are
// keyed by their absolute Monday date so a prior-week lookup is always the
// key exactly seven days earlier, never the previous key in iteration order.
type Totals struct {
	Weeks map[time.Time]*WeekTotals
}

type WeekTotals struct {
	Start time.Time
	Hours float64
	Teams map[string]*TeamTotals
}

type TeamTotals struct {
	Name       string
	Hours      float64
	Students   map[string]*StudentTotals
	Categories map[string]float64
	Activities map[string]float64
}

type StudentTotals struct {
	Name       string
	Hours      float64
	Categories map[string]float64
	Activities map[string]float64
}

// Week returns the totals for the week starting at start, or nil.
func (t *Totals) Week(start time.Time) *WeekTotals {
	return t.Weeks[start]
}

// PriorWeek returns the totals for the week exactly seven days before start,
// or nil if no activity was recorded then.
func (t *Totals) PriorWeek(start time.Time) *WeekTotals {
	return t.Weeks[start.AddDate(0, 0, -7)]
}

// Aggregate sums all entries into the totals tree. An entry contributes its
// full duration to the week of its start date and to exactly one
// (team, student) pair; missing categorical fields are coerced to sentinel
// labels so every entry is represented. The sum is commutative, so the result
// does not depend on input order.
func Aggregate(entries []entry.Entry) (*Totals, error) {
	totals := &Totals{Weeks: map[time.Time]*WeekTotals{}}

	for _, e := range entries {
		e = e.NormalizeLabels()

		weekStart, err := WeekStartOf(e.Start)
		if err != nil {
			return nil, fmt.Errorf("entry for %q in %q: %w", e.Student, e.Project, err)
		}

		week := totals.Weeks[weekStart]
		if week == nil {
			week = &WeekTotals{Start: weekStart, Teams: map[string]*TeamTotals{}}
			totals.Weeks[weekStart] = week
		}

		team := week.Teams[e.Team]
		if team == nil {
			team = &TeamTotals{
				Name:       e.Team,
				Students:   map[string]*StudentTotals{},
				Categories: map[string]float64{},
				Activities: map[string]float64{},
			}
			week.Teams[e.Team] = team
		}

		student := team.Students[e.Student]
		if student == nil {
			student = &StudentTotals{
				Name:       e.Student,
				Categories: map[string]float64{},
				Activities: map[string]float64{},
			}
			team.Students[e.Student] = student
		}

		week.Hours += e.DurationHours
		team.Hours += e.DurationHours
		team.Categories[e.Category] += e.DurationHours
		team.Activities[e.Activity] += e.DurationHours
		student.Hours += e.DurationHours
		student.Categories[e.Category] += e.DurationHours
		student.Activities[e.Activity] += e.DurationHours
	}

	log.Debugf("aggregated %d entries into %d weeks", len(entries), len(totals.Weeks))
	return totals, nil
}
