package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

// RenderReport writes the report as a flat CSV table: one row per team per
// week, followed by the team's breakdown rows and one row per student with
// its own breakdown. Breakdown rows carry the category or activity name in
// the Detail column; team-level rows leave the Student column empty.
func (t *CsvReportRendererImpl) RenderReport(report Report) (string, error) {
	data := [][]string{
		{"Week", "Team", "Student", "Detail", "Hours", "Expected", "Trend", "Status"},
	}

	for _, week := range report.Weeks {
		for _, team := range week.Teams {
			data = append(data, []string{
				week.Label, team.Name, "", "",
				formatHours(team.TotalHours), formatHours(team.ExpectedHours),
				string(team.Trend), string(team.Status),
			})
			for _, category := range team.Categories {
				data = append(data, []string{
					week.Label, team.Name, "", "CATEGORY: " + category.Name,
					formatHours(category.Hours), "", string(category.Trend), "",
				})
			}
			for _, activity := range team.Activities {
				data = append(data, []string{
					week.Label, team.Name, "", "ACTIVITY: " + activity.Name,
					formatHours(activity.Hours), "", string(activity.Trend), "",
				})
			}
			for _, student := range team.Students {
				data = append(data, []string{
					week.Label, team.Name, student.Name, "",
					formatHours(student.TotalHours), formatHours(report.ExpectedHoursPerStudent),
					string(student.Trend), string(student.Status),
				})
				for _, category := range student.Categories {
					data = append(data, []string{
						week.Label, team.Name, student.Name, "CATEGORY: " + category.Name,
						formatHours(category.Hours), "", string(category.Trend), "",
					})
				}
				for _, activity := range student.Activities {
					data = append(data, []string{
						week.Label, team.Name, student.Name, "ACTIVITY: " + activity.Name,
						formatHours(activity.Hours), "", string(activity.Trend), "",
					})
				}
			}
		}
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}
