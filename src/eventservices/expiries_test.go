package eventservices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
	"github.com/jiaming2012/expiry-tracker/src/feedparsers"
)

func textRecord(kind, symbol, expiry string) eventmodels.RawInstrumentRecord {
	return eventmodels.NewRawInstrumentRecord(kind, symbol, eventmodels.NewTextExpiry(expiry))
}

func TestIsInScope(t *testing.T) {
	whitelist := eventmodels.NewWhitelist("NIFTY", "BANKEX")

	cases := []struct {
		name     string
		record   eventmodels.RawInstrumentRecord
		expected bool
	}{
		{"call", textRecord("CE", "NIFTY", "2025-12-30"), true},
		{"put with padding", textRecord(" PE ", " BANKEX ", "2025-12-30"), true},
		{"future", textRecord("FUT", "NIFTY", "2025-12-30"), false},
		{"equity", textRecord("EQ", "NIFTY", ""), false},
		{"lowercase symbol", textRecord("CE", "nifty", "2025-12-30"), false},
		{"not whitelisted", textRecord("CE", "SENSEX", "2025-12-30"), false},
		{"blank expiry", textRecord("CE", "NIFTY", "  "), false},
		{"zero epoch", eventmodels.NewRawInstrumentRecord("CE", "NIFTY", eventmodels.NewEpochExpiry(0)), false},
		{"epoch", eventmodels.NewRawInstrumentRecord("PE", "NIFTY", eventmodels.NewEpochExpiry(1767033000000)), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsInScope(tc.record, whitelist))
		})
	}
}

func TestAggregateExpiries(t *testing.T) {
	whitelist := eventmodels.NewWhitelist("NIFTY", "BANKNIFTY", "FINNIFTY", "SENSEX")

	records := []eventmodels.RawInstrumentRecord{
		textRecord("CE", "SENSEX", "2026-02-24"),
		textRecord("CE", "NIFTY", "2026-01-27"),
		textRecord("PE", "NIFTY", "30/12/2025"),
		textRecord("CE", "NIFTY", "2025-12-30"),
		textRecord("CE", "NIFTY", "20260106"),
		textRecord("PE", "BANKNIFTY", "2026-01-27"),
		textRecord("CE", "BANKNIFTY", "31-02-2026"),
		textRecord("CE", "SENSEX", "garbage"),
		textRecord("PE", "SENSEX", "2026-01-06"),
	}

	result := AggregateExpiries(records, whitelist, time.UTC)

	assert.Equal(t, eventmodels.ExpiryResultRows{
		{Symbol: "NIFTY", DisplayText: "30-12-2025"},
		{Symbol: "NIFTY", DisplayText: "06-01-2026"},
		{Symbol: "BANKNIFTY", DisplayText: "27-01-2026"},
		{Symbol: "FINNIFTY", DisplayText: eventmodels.NoDataSentinel},
		{Symbol: "SENSEX", DisplayText: "06-01-2026"},
		{Symbol: "SENSEX", DisplayText: "24-02-2026"},
	}, result.Rows)
	assert.Equal(t, 2, result.Dropped)

	t.Run("row bounds and sentinel", func(t *testing.T) {
		for _, symbol := range whitelist {
			rows := result.Rows.ForSymbol(symbol)
			require.NotEmpty(t, rows, symbol)
			assert.LessOrEqual(t, len(rows), MaxExpiriesPerSymbol, symbol)

			noData := 0
			for _, r := range rows {
				if r.IsNoData() {
					noData++
				}
			}

			if noData > 0 {
				assert.Equal(t, 1, len(rows), symbol)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, result, AggregateExpiries(records, whitelist, time.UTC))
	})

	t.Run("input order does not matter", func(t *testing.T) {
		reversed := make([]eventmodels.RawInstrumentRecord, len(records))
		for i, r := range records {
			reversed[len(records)-1-i] = r
		}

		assert.Equal(t, result, AggregateExpiries(reversed, whitelist, time.UTC))
	})
}

func TestAggregateExpiries_EmptyInput(t *testing.T) {
	result := AggregateExpiries(nil, eventmodels.DefaultWhitelist, time.UTC)

	require.Len(t, result.Rows, len(eventmodels.DefaultWhitelist))
	for i, row := range result.Rows {
		assert.Equal(t, eventmodels.DefaultWhitelist[i], row.Symbol)
		assert.True(t, row.IsNoData())
	}
}

func TestBuildExpiryRows(t *testing.T) {
	whitelist := eventmodels.NewWhitelist("NIFTY", "BANKEX")

	t.Run("duplicate date across option sides", func(t *testing.T) {
		text := "instrument_type,underlying_symbol,expiry_date\n" +
			"CE,NIFTY,2025-12-30\n" +
			"PE,NIFTY,30-12-2025\n" +
			"FUT,NIFTY,2025-11-25\n" +
			"CE,NIFTY,2026-01-06\n" +
			"CE,NIFTY,2026-01-13\n"

		result := BuildExpiryRows(feedparsers.ParseDelimitedText(text, feedparsers.DelimitedColumns{}), whitelist, time.UTC)

		assert.Equal(t, eventmodels.ExpiryResultRows{
			{Symbol: "NIFTY", DisplayText: "30-12-2025"},
			{Symbol: "NIFTY", DisplayText: "06-01-2026"},
			{Symbol: "BANKEX", DisplayText: eventmodels.NoDataSentinel},
		}, result.Rows)
	})

	t.Run("tabular rows", func(t *testing.T) {
		rows := feedparsers.NewTabularRows([]string{"Symbol", "Expiry Date"}, [][]string{
			{"BANKEX", "30-12-2025"},
			{"BANKEX", "2025-12-30"},
			{"BANKEX", ""},
		})

		result := BuildExpiryRows(feedparsers.ParseTabularRows(rows, feedparsers.TabularColumns{}), whitelist, time.UTC)

		assert.Equal(t, eventmodels.ExpiryResultRows{
			{Symbol: "NIFTY", DisplayText: eventmodels.NoDataSentinel},
			{Symbol: "BANKEX", DisplayText: "30-12-2025"},
		}, result.Rows)
	})

	t.Run("missing columns", func(t *testing.T) {
		parsed := feedparsers.ParseDelimitedText("instrument_type,underlying_symbol\nCE,NIFTY\n", feedparsers.DelimitedColumns{})
		result := BuildExpiryRows(parsed, whitelist, time.UTC)

		assert.Equal(t, eventmodels.ExpiryResultRows{
			{Symbol: "NIFTY", DisplayText: eventmodels.NoDataSentinel},
			{Symbol: "BANKEX", DisplayText: eventmodels.NoDataSentinel},
		}, result.Rows)
	})

	t.Run("zero epoch and empty text", func(t *testing.T) {
		parsed := eventmodels.ParseResult{Records: []eventmodels.RawInstrumentRecord{
			eventmodels.NewRawInstrumentRecord("CE", "NIFTY", eventmodels.NewEpochExpiry(0)),
			textRecord("PE", "NIFTY", ""),
		}}

		result := BuildExpiryRows(parsed, whitelist, time.UTC)

		assert.Equal(t, eventmodels.NoDataSentinel, result.Rows.ForSymbol("NIFTY")[0].DisplayText)
		assert.NotContains(t, result.Rows.ToRows(), []string{"NIFTY", "01-01-1970"})
	})
}
