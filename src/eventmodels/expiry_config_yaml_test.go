package eventmodels

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpiryConfigYAML(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := NewExpiryConfigYAML([]byte("csv:\n  url: http://example.com/instruments\n"))
		require.NoError(t, err)

		assert.Equal(t, CsvFeed, config.Feed)
		assert.Equal(t, DefaultWhitelist, config.Whitelist())
		assert.Equal(t, 60*time.Second, config.GetRefreshInterval())

		loc, err := config.Location()
		require.NoError(t, err)
		assert.Equal(t, time.Local, loc)
	})

	t.Run("json feed", func(t *testing.T) {
		data := []byte(`
symbols: [NIFTY, SENSEX]
feed: json
refreshIntervalSeconds: 15
timezone: UTC
json:
  url: http://example.com/complete.json.gz
  expiryField: expiry_ms
`)
		config, err := NewExpiryConfigYAML(data)
		require.NoError(t, err)

		assert.Equal(t, JsonDumpFeed, config.Feed)
		assert.Equal(t, Whitelist{"NIFTY", "SENSEX"}, config.Whitelist())
		assert.Equal(t, 15*time.Second, config.GetRefreshInterval())
		assert.Equal(t, "expiry_ms", config.Json.ExpiryField)

		loc, err := config.Location()
		require.NoError(t, err)
		assert.Equal(t, time.UTC, loc)
	})

	t.Run("sheets feed needs no url", func(t *testing.T) {
		config, err := NewExpiryConfigYAML([]byte("feed: sheets\nsheets:\n  sheetName: Expiries\n"))
		require.NoError(t, err)
		assert.Equal(t, "Expiries", config.Sheets.SheetName)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, data := range []string{
			"feed: ftp\n",
			"feed: csv\n",
			"feed: json\n",
			"feed: [",
			"feed: sheets\ntimezone: Not/AZone\n",
		} {
			_, err := NewExpiryConfigYAML([]byte(data))
			assert.Error(t, err, data)
		}
	})
}

func TestFeedError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("fetch: %w", NewFeedError(TransportFeedError, CsvFeed, "request failed", cause))

	assert.True(t, IsFeedErrorKind(err, TransportFeedError))
	assert.False(t, IsFeedErrorKind(err, DecodeFeedError))
	assert.False(t, IsFeedErrorKind(cause, TransportFeedError))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "csv feed transport error: request failed")
}
