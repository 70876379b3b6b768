package feedparsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
)

func TestParseTabularRows(t *testing.T) {
	rows := NewTabularRows(
		[]string{"Symbol", "Expiry Date", "Notes"},
		[][]string{
			{"BANKEX", "30-12-2025"},
			{"", "06-01-2026"},
			{"SENSEX"},
			{" NIFTY ", " 2026-01-27 ", "weekly"},
		},
	)

	result := ParseTabularRows(rows, TabularColumns{})
	require.NoError(t, result.Err)
	assert.Equal(t, 2, result.Skipped)

	assert.Equal(t, []eventmodels.RawInstrumentRecord{
		eventmodels.NewRawInstrumentRecord("CE", "BANKEX", eventmodels.NewTextExpiry("30-12-2025")),
		eventmodels.NewRawInstrumentRecord("PE", "BANKEX", eventmodels.NewTextExpiry("30-12-2025")),
		eventmodels.NewRawInstrumentRecord("CE", "NIFTY", eventmodels.NewTextExpiry("2026-01-27")),
		eventmodels.NewRawInstrumentRecord("PE", "NIFTY", eventmodels.NewTextExpiry("2026-01-27")),
	}, result.Records)
}

func TestNewTabularRows(t *testing.T) {
	rows := NewTabularRows([]string{"Symbol", "", "Expiry Date"}, [][]string{{"NIFTY", "x"}})

	require.Len(t, rows, 1)
	assert.Equal(t, TabularRow{"Symbol": "NIFTY", "Expiry Date": ""}, rows[0])
}
