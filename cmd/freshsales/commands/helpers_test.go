package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/freshsales-client/internal/constants"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

func TestParseID(t *testing.T) {
	id, err := parseID([]string{"42"})
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = parseID(nil)
	require.ErrorIs(t, err, ErrIDRequired)

	_, err = parseID([]string{"abc"})
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)

	_, err = parseIDs([]string{"1", "x"})
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestRecordColumns(t *testing.T) {
	records := []freshsales.Record{
		{"id": float64(1), "display_name": "Jane", "owner": map[string]any{"id": 2}},
		{"id": float64(2), "email": "j@example.com"},
	}

	columns := recordColumns(records)

	// preferred scalar fields come first, nested objects are skipped
	assert.Equal(t, []string{"id", "display_name", "email"}, columns)
}

func TestCellValue(t *testing.T) {
	record := freshsales.Record{
		"name":   "Acme",
		"amount": float64(1250),
		"open":   true,
		"owner":  nil,
	}

	assert.Equal(t, "Acme", cellValue(record, "name"))
	assert.Equal(t, "1250", cellValue(record, "amount"))
	assert.Equal(t, "true", cellValue(record, "open"))
	assert.Equal(t, constants.NotAvailable, cellValue(record, "owner"))
	assert.Equal(t, constants.NotAvailable, cellValue(record, "missing"))
}

func TestCellValue_TruncatesLongStrings(t *testing.T) {
	long := strings.Repeat("x", constants.StringTruncationLength+20)
	record := freshsales.Record{"notes": long}

	cell := cellValue(record, "notes")

	assert.Len(t, cell, constants.StringTruncationLength)
	assert.True(t, strings.HasSuffix(cell, "..."))
}
