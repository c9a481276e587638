package entry

import (
	"testing"
	"time"

	"github.com/mentordash/mentordash/pkg/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonExport = `{
  "entries": [
    {
      "project": "Capstone",
      "user": "alice",
      "group": "Alpha",
      "start_date": "2026-01-05",
      "end_date": "2026-01-05",
      "duration_hours": 4.5,
      "tags": "ACTIVITY: Coding, CATEGORY: Technical"
    },
    {
      "project": "Capstone",
      "user": "bob",
      "group": "",
      "start_date": "2026-01-06",
      "end_date": "2026-01-06",
      "duration_hours": 2
    },
    {
      "project": "Capstone",
      "user": "carol",
      "group": "Beta",
      "start_date": "broken",
      "end_date": "2026-01-06",
      "duration_hours": 2
    }
  ]
}`

func TestParseJSON(t *testing.T) {
	entries, err := ParseJSON([]byte(jsonExport), roster.NoopResolver{})

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "alice", entries[0].Student)
	assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), entries[0].Start)
	assert.Equal(t, "Coding", entries[0].Activity)

	assert.Equal(t, UnknownLabel, entries[1].Team)
	assert.Equal(t, UncategorizedLabel, entries[1].Category)
}

func TestParseJSON_topLevelArray(t *testing.T) {
	data := `[{"user": "alice", "group": "Alpha", "start_date": "2026-01-05", "duration_hours": 1}]`

	entries, err := ParseJSON([]byte(data), roster.NoopResolver{})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Student)
}

func TestParseJSON_invalidInput(t *testing.T) {
	_, err := ParseJSON([]byte("{broken"), roster.NoopResolver{})
	assert.ErrorContains(t, err, "invalid json")

	_, err = ParseJSON([]byte(`{"foo": 1}`), roster.NoopResolver{})
	assert.ErrorContains(t, err, "no entries array")

	_, err = ParseJSON([]byte(`{"entries": []}`), roster.NoopResolver{})
	assert.ErrorContains(t, err, "no valid time entries")
}
