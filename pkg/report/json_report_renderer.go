package report

import (
	"encoding/json"
	"time"
)

type ReportDTO struct {
	ID                      string          `json:"id"`
	GeneratedAt             time.Time       `json:"generatedAt"`
	ExpectedHoursPerStudent float64         `json:"expectedHoursPerStudent"`
	Weeks                   []WeekReportDTO `json:"weeks"`
}

type WeekReportDTO struct {
	StartDate          string          `json:"startDate"`
	EndDate            string          `json:"endDate"`
	Label              string          `json:"label"`
	TotalHours         float64         `json:"totalHours"`
	Participants       int             `json:"participants"`
	AvgHoursPerStudent float64         `json:"avgHoursPerStudent"`
	Teams              []TeamReportDTO `json:"teams"`
}

type TeamReportDTO struct {
	Name          string             `json:"name"`
	TotalHours    float64            `json:"totalHours"`
	ExpectedHours float64            `json:"expectedHours"`
	Trend         string             `json:"trend"`
	Status        string             `json:"status"`
	Students      []StudentReportDTO `json:"students"`
	Categories    []EntityTotalDTO   `json:"categories"`
	Activities    []EntityTotalDTO   `json:"activities"`
}

type StudentReportDTO struct {
	Name       string           `json:"name"`
	TotalHours float64          `json:"totalHours"`
	Trend      string           `json:"trend"`
	Status     string           `json:"status"`
	Categories []EntityTotalDTO `json:"categories"`
	Activities []EntityTotalDTO `json:"activities"`
}

type EntityTotalDTO struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
	Trend string  `json:"trend"`
}

type JsonReportRendererImpl struct {
}

func NewJsonReportRenderer() *JsonReportRendererImpl {
	return &JsonReportRendererImpl{}
}

// RenderReport serializes the report as indented JSON.
func (t *JsonReportRendererImpl) RenderReport(report Report) (string, error) {
	data, err := json.MarshalIndent(ReportToDTO(report), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReportToDTO converts the domain report to its JSON transport shape.
// Dates are serialized as plain calendar dates.
func ReportToDTO(report Report) ReportDTO {
	weeks := make([]WeekReportDTO, 0, len(report.Weeks))
	for _, week := range report.Weeks {
		teams := make([]TeamReportDTO, 0, len(week.Teams))
		for _, team := range week.Teams {
			students := make([]StudentReportDTO, 0, len(team.Students))
			for _, student := range team.Students {
				students = append(students, StudentReportDTO{
					Name:       student.Name,
					TotalHours: student.TotalHours,
					Trend:      string(student.Trend),
					Status:     string(student.Status),
					Categories: entityTotalsToDTO(student.Categories),
					Activities: entityTotalsToDTO(student.Activities),
				})
			}
			teams = append(teams, TeamReportDTO{
				Name:          team.Name,
				TotalHours:    team.TotalHours,
				ExpectedHours: team.ExpectedHours,
				Trend:         string(team.Trend),
				Status:        string(team.Status),
				Students:      students,
				Categories:    entityTotalsToDTO(team.Categories),
				Activities:    entityTotalsToDTO(team.Activities),
			})
		}
		weeks = append(weeks, WeekReportDTO{
			StartDate:          week.StartDate.Format("2006-01-02"),
			EndDate:            week.EndDate.Format("2006-01-02"),
			Label:              week.Label,
			TotalHours:         week.TotalHours,
			Participants:       week.Participants,
			AvgHoursPerStudent: week.AvgHoursPerStudent,
			Teams:              teams,
		})
	}

	return ReportDTO{
		ID:                      report.ID,
		GeneratedAt:             report.GeneratedAt,
		ExpectedHoursPerStudent: report.ExpectedHoursPerStudent,
		Weeks:                   weeks,
	}
}

func entityTotalsToDTO(totals []EntityTotal) []EntityTotalDTO {
	dtos := make([]EntityTotalDTO, 0, len(totals))
	for _, total := range totals {
		dtos = append(dtos, EntityTotalDTO{
			Name:  total.Name,
			Hours: total.Hours,
			Trend: string(total.Trend),
		})
	}
	return dtos
}
