package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() Report {
	week := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)
	return Report{
		ID:                      "test-report",
		GeneratedAt:             time.Date(2026, time.January, 19, 9, 0, 0, 0, time.UTC),
		ExpectedHoursPerStudent: 20,
		Weeks: []WeekReport{
			{
				StartDate:          week,
				EndDate:            WeekEndOf(week),
				Label:              WeekLabel(week),
				TotalHours:         38,
				Participants:       2,
				AvgHoursPerStudent: 19,
				Teams: []TeamReport{
					{
						Name:          "Alpha",
						TotalHours:    38,
						ExpectedHours: 40,
						Trend:         TrendUp,
						Status:        StatusOnTarget,
						Students: []StudentReport{
							{
								Name:       "Alice Smith",
								TotalHours: 20,
								Trend:      TrendFlat,
								Status:     StatusOnTarget,
								Categories: []EntityTotal{{Name: "Technical", Hours: 20, Trend: TrendFlat}},
								Activities: []EntityTotal{{Name: "Coding", Hours: 20, Trend: TrendFlat}},
							},
							{
								Name:       "Bob Jones",
								TotalHours: 18,
								Trend:      TrendDown,
								Status:     StatusOnTarget,
							},
						},
						Categories: []EntityTotal{{Name: "Technical", Hours: 38, Trend: TrendUp}},
						Activities: []EntityTotal{{Name: "Coding", Hours: 38, Trend: TrendUp}},
					},
				},
			},
		},
	}
}

func TestCsvReportRendererImpl_RenderReport(t *testing.T) {
	// given
	renderer := NewCsvReportRenderer()

	// when
	rendered, err := renderer.RenderReport(testReport())

	// then
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(rendered)).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Week", "Team", "Student", "Detail", "Hours", "Expected", "Trend", "Status"}, records[0])

	teamRow := records[1]
	assert.Equal(t, "January 12-18, 2026", teamRow[0])
	assert.Equal(t, "Alpha", teamRow[1])
	assert.Equal(t, "", teamRow[2])
	assert.Equal(t, "38.00", teamRow[4])
	assert.Equal(t, "40.00", teamRow[5])
	assert.Equal(t, "up", teamRow[6])
	assert.Equal(t, "onTarget", teamRow[7])

	teamCategoryRow := records[2]
	assert.Equal(t, "", teamCategoryRow[2])
	assert.Equal(t, "CATEGORY: Technical", teamCategoryRow[3])
	assert.Equal(t, "38.00", teamCategoryRow[4])
	assert.Equal(t, "up", teamCategoryRow[6])

	teamActivityRow := records[3]
	assert.Equal(t, "", teamActivityRow[2])
	assert.Equal(t, "ACTIVITY: Coding", teamActivityRow[3])

	aliceRow := records[4]
	assert.Equal(t, "Alice Smith", aliceRow[2])
	assert.Equal(t, "20.00", aliceRow[4])
	assert.Equal(t, "20.00", aliceRow[5])

	categoryRow := records[5]
	assert.Equal(t, "Alice Smith", categoryRow[2])
	assert.Equal(t, "CATEGORY: Technical", categoryRow[3])
	assert.Equal(t, "flat", categoryRow[6])

	// team row + team category + team activity + alice + alice category +
	// alice activity + bob
	assert.Len(t, records, 8)
}

func TestJsonReportRendererImpl_RenderReport(t *testing.T) {
	renderer := NewJsonReportRenderer()

	rendered, err := renderer.RenderReport(testReport())

	require.NoError(t, err)
	assert.Contains(t, rendered, `"id": "test-report"`)
	assert.Contains(t, rendered, `"label": "January 12-18, 2026"`)
	assert.Contains(t, rendered, `"startDate": "2026-01-12"`)
	assert.Contains(t, rendered, `"status": "onTarget"`)
	assert.Contains(t, rendered, `"trend": "down"`)
}
