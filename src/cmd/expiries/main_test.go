package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
)

func TestApplyOverrides(t *testing.T) {
	t.Run("json url", func(t *testing.T) {
		config := &eventmodels.ExpiryConfigYAML{Feed: eventmodels.CsvFeed, Csv: eventmodels.CsvFeedYAML{URL: "http://csv"}}

		require.NoError(t, applyOverrides(config, RunArgs{Feed: "json", URL: "http://dump"}))
		assert.Equal(t, eventmodels.JsonDumpFeed, config.Feed)
		assert.Equal(t, "http://dump", config.Json.URL)
		assert.Equal(t, "http://csv", config.Csv.URL)
	})

	t.Run("url on sheets feed", func(t *testing.T) {
		config := &eventmodels.ExpiryConfigYAML{Feed: eventmodels.SheetsFeed}

		assert.Error(t, applyOverrides(config, RunArgs{URL: "http://x"}))
	})

	t.Run("unknown feed", func(t *testing.T) {
		config := &eventmodels.ExpiryConfigYAML{Feed: eventmodels.CsvFeed, Csv: eventmodels.CsvFeedYAML{URL: "http://csv"}}

		assert.Error(t, applyOverrides(config, RunArgs{Feed: "ftp"}))
	})
}

func TestWriteOutputs(t *testing.T) {
	rows := eventmodels.ExpiryResultRows{
		{Symbol: "NIFTY", DisplayText: "30-12-2025"},
		{Symbol: "BANKEX", DisplayText: eventmodels.NoDataSentinel},
	}

	var table bytes.Buffer
	writeTable(&table, rows)
	assert.Contains(t, table.String(), "30-12-2025")
	assert.Contains(t, table.String(), "NO DATA")

	var js bytes.Buffer
	require.NoError(t, writeJSON(&js, rows))
	assert.Contains(t, js.String(), `"expiry": "30-12-2025"`)
	assert.Contains(t, js.String(), `"symbol": "BANKEX"`)
}
