package entry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mentordash/mentordash/pkg/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loaderCsv = `Project,User,Group,Start Date,End Date,Duration (decimal),Tags
Capstone,alice,Alpha,2026-01-05,2026-01-05,4,
`

func TestLoader_Load_fromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(loaderCsv), 0o644))

	entries, err := NewLoader().Load(context.Background(), path, roster.NoopResolver{})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Student)
}

func TestLoader_Load_fromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(loaderCsv))
	}))
	defer server.Close()

	entries, err := NewLoader().Load(context.Background(), server.URL, roster.NoopResolver{})

	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLoader_Load_urlErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewLoader().Load(context.Background(), server.URL, roster.NoopResolver{})
	assert.ErrorContains(t, err, "unexpected status")
}

func TestLoader_Load_missingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), "/nonexistent/export.csv", roster.NoopResolver{})
	assert.ErrorContains(t, err, "failed to read export file")
}

func TestParse_detectsFormat(t *testing.T) {
	// json object
	entries, err := Parse([]byte(`{"entries": [{"user": "a", "group": "g", "start_date": "2026-01-05", "duration_hours": 1}]}`), roster.NoopResolver{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// csv, with a BOM
	entries, err = Parse(append([]byte("\ufeff"), []byte(loaderCsv)...), roster.NoopResolver{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// empty input
	_, err = Parse([]byte("  \n"), roster.NoopResolver{})
	assert.ErrorContains(t, err, "empty")
}
