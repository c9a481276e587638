package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterCsv = `Email,Preferred/First Name,Last Name,Student ID
asmith@example.edu,Alice,Smith,asmith
bjones@example.edu,Bob,Jones,bjones
broken-row@example.edu,,Nameless,
`

func newTestResolver(t *testing.T) *CSVResolver {
	resolver, err := NewCSVResolver(strings.NewReader(rosterCsv))
	require.NoError(t, err)
	return resolver
}

func TestCSVResolver_Resolve(t *testing.T) {
	resolver := newTestResolver(t)

	// identifier in the user field
	assert.Equal(t, "Alice Smith", resolver.Resolve("asmith", ""))
	// identifier casing does not matter
	assert.Equal(t, "Alice Smith", resolver.Resolve("ASmith", ""))
	// identifier recoverable from the email field only
	assert.Equal(t, "Bob Jones", resolver.Resolve("someone", "bjones@example.edu"))
	// already a resolved full name
	assert.Equal(t, "Alice Smith", resolver.Resolve("alice smith", ""))
	// full name not present in the roster passes through
	assert.Equal(t, "Dana White", resolver.Resolve("Dana White", ""))
	// unknown identifier passes through
	assert.Equal(t, "nobody", resolver.Resolve("nobody", ""))
}

func TestCSVResolver_skipsIncompleteRows(t *testing.T) {
	resolver := newTestResolver(t)

	// the row without a first name contributes no mapping
	assert.Equal(t, "broken-row", resolver.Resolve("broken-row", ""))
	// two complete rows, each mapped by email id and student id
	assert.Equal(t, 2, resolver.Size())
}

func TestNewCSVResolver_emptyRoster(t *testing.T) {
	_, err := NewCSVResolver(strings.NewReader(""))
	assert.Error(t, err)
}

func TestNoopResolver(t *testing.T) {
	assert.Equal(t, "asmith", NoopResolver{}.Resolve(" asmith ", "asmith@example.edu"))
}
