package cmd

import (
	"testing"

	"github.com/mentordash/mentordash/pkg/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCmd_defaultFormatIsCsv(t *testing.T) {
	flag := generateCmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "csv", flag.DefValue)
}

func TestFilterByTeam(t *testing.T) {
	entries := []entry.Entry{
		{Student: "alice", Team: "Alpha"},
		{Student: "bob", Team: "Beta"},
		{Student: "carol", Team: "alpha"},
	}

	filtered := filterByTeam(entries, "Alpha")

	require.Len(t, filtered, 2)
	assert.Equal(t, "alice", filtered[0].Student)
	assert.Equal(t, "carol", filtered[1].Student)
}
