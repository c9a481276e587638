package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mentordash/mentordash/internal/utils"
	"github.com/mentordash/mentordash/pkg/entry"
	log "github.com/sirupsen/logrus"
)

type ReportService interface {
	BuildReport(ctx context.Context, entries []entry.Entry, expectedHours float64) (Report, error)
}

type ReportServiceImpl struct {
	clock utils.Clock
}

func NewReportServiceImpl(clock utils.Clock) *ReportServiceImpl {
	return &ReportServiceImpl{clock: clock}
}

// reportID derives a stable UUID from the input, so building a report twice
// from the same entries and target yields the same identifier.
func reportID(entries []entry.Entry, expectedHours float64) string {
	var fingerprint strings.Builder
	fmt.Fprintf(&fingerprint, "%.6f", expectedHours)
	for _, e := range entries {
		fmt.Fprintf(&fingerprint, "|%s|%s|%s|%s|%.6f|%s|%s",
			e.Project, e.Student, e.Team, e.Start.UTC().Format(time.RFC3339), e.DurationHours, e.Activity, e.Category)
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fingerprint.String())).String()
}

// BuildReport runs the full pipeline: aggregation, trend analysis, and
// performance classification, assembled into a Report with weeks ordered most
// recent first. The expected-hours target is validated before any aggregation
// runs; a team's target is the per-student target times the number of
// students active in that team that week.
func (s *ReportServiceImpl) BuildReport(_ context.Context, entries []entry.Entry, expectedHours float64) (Report, error) {
	if expectedHours <= 0 {
		return Report{}, fmt.Errorf("expected hours %.2f: %w", expectedHours, ErrInvalidTarget)
	}

	totals, err := Aggregate(entries)
	if err != nil {
		return Report{}, err
	}

	weekStarts := make([]time.Time, 0, len(totals.Weeks))
	for start := range totals.Weeks {
		weekStarts = append(weekStarts, start)
	}
	sort.Slice(weekStarts, func(i, j int) bool {
		return weekStarts[i].After(weekStarts[j])
	})

	weeks := make([]WeekReport, 0, len(weekStarts))
	for _, start := range weekStarts {
		weekReport, err := buildWeek(totals.Weeks[start], totals.PriorWeek(start), expectedHours)
		if err != nil {
			return Report{}, err
		}
		weeks = append(weeks, weekReport)
	}

	report := Report{
		ID:                      reportID(entries, expectedHours),
		GeneratedAt:             s.clock.Now(),
		ExpectedHoursPerStudent: expectedHours,
		Weeks:                   weeks,
	}
	log.Infof("Built report %s: %d weeks from %d entries", report.ID, len(weeks), len(entries))
	return report, nil
}

func buildWeek(week *WeekTotals, prior *WeekTotals, expectedHours float64) (WeekReport, error) {
	teamNames := make([]string, 0, len(week.Teams))
	participants := 0
	for name, team := range week.Teams {
		teamNames = append(teamNames, name)
		participants += len(team.Students)
	}
	sort.Strings(teamNames)

	teams := make([]TeamReport, 0, len(teamNames))
	for _, name := range teamNames {
		var priorTeam *TeamTotals
		if prior != nil {
			priorTeam = prior.Teams[name]
		}
		team, err := buildTeam(week.Teams[name], priorTeam, expectedHours)
		if err != nil {
			return WeekReport{}, err
		}
		teams = append(teams, team)
	}

	avgHours := 0.0
	if participants > 0 {
		avgHours = week.Hours / float64(participants)
	}

	return WeekReport{
		StartDate:          week.Start,
		EndDate:            WeekEndOf(week.Start),
		Label:              WeekLabel(week.Start),
		TotalHours:         week.Hours,
		Participants:       participants,
		AvgHoursPerStudent: avgHours,
		Teams:              teams,
	}, nil
}

func buildTeam(team *TeamTotals, prior *TeamTotals, expectedHours float64) (TeamReport, error) {
	teamExpected := expectedHours * float64(len(team.Students))
	status, err := Classify(team.Hours, teamExpected)
	if err != nil {
		return TeamReport{}, fmt.Errorf("team %q: %w", team.Name, err)
	}

	trend := TrendNew
	var priorStudents map[string]*StudentTotals
	var priorCategories, priorActivities map[string]float64
	if prior != nil {
		trend = TrendOf(team.Hours, prior.Hours, true)
		priorStudents = prior.Students
		priorCategories = prior.Categories
		priorActivities = prior.Activities
	}

	studentNames := make([]string, 0, len(team.Students))
	for name := range team.Students {
		studentNames = append(studentNames, name)
	}
	sort.Strings(studentNames)

	students := make([]StudentReport, 0, len(studentNames))
	for _, name := range studentNames {
		student, err := buildStudent(team.Students[name], priorStudents[name], expectedHours)
		if err != nil {
			return TeamReport{}, fmt.Errorf("team %q: %w", team.Name, err)
		}
		students = append(students, student)
	}

	return TeamReport{
		Name:          team.Name,
		TotalHours:    team.Hours,
		ExpectedHours: teamExpected,
		Trend:         trend,
		Status:        status,
		Students:      students,
		Categories:    buildBreakdown(team.Categories, priorCategories),
		Activities:    buildBreakdown(team.Activities, priorActivities),
	}, nil
}

func buildStudent(student *StudentTotals, prior *StudentTotals, expectedHours float64) (StudentReport, error) {
	status, err := Classify(student.Hours, expectedHours)
	if err != nil {
		return StudentReport{}, fmt.Errorf("student %q: %w", student.Name, err)
	}

	trend := TrendNew
	var priorCategories, priorActivities map[string]float64
	if prior != nil {
		trend = TrendOf(student.Hours, prior.Hours, true)
		priorCategories = prior.Categories
		priorActivities = prior.Activities
	}

	return StudentReport{
		Name:       student.Name,
		TotalHours: student.Hours,
		Trend:      trend,
		Status:     status,
		Categories: buildBreakdown(student.Categories, priorCategories),
		Activities: buildBreakdown(student.Activities, priorActivities),
	}, nil
}

// buildBreakdown turns a totals map into chart-ready slices ordered by
// descending hours, names breaking ties. Only entities with current-week
// activity are included.
func buildBreakdown(current map[string]float64, prior map[string]float64) []EntityTotal {
	breakdown := make([]EntityTotal, 0, len(current))
	for name, hours := range current {
		breakdown = append(breakdown, EntityTotal{
			Name:  name,
			Hours: hours,
			Trend: trendAgainst(hours, name, prior),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Hours != breakdown[j].Hours {
			return breakdown[i].Hours > breakdown[j].Hours
		}
		return breakdown[i].Name < breakdown[j].Name
	})
	return breakdown
}
