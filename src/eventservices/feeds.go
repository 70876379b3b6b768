package eventservices

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
	"github.com/jiaming2012/expiry-tracker/src/feedparsers"
	"github.com/jiaming2012/expiry-tracker/src/sheets"
)

func NewCsvFeed(client *http.Client, config eventmodels.CsvFeedYAML) eventmodels.FeedFunc {
	columns := feedparsers.DelimitedColumns{
		Kind:   config.KindColumn,
		Symbol: config.SymbolColumn,
		Expiry: config.ExpiryColumn,
	}

	return func(ctx context.Context) (eventmodels.ParseResult, error) {
		text, err := FetchInstrumentsCsv(ctx, client, config.URL, config.ProxyPrefix)
		if err != nil {
			return eventmodels.ParseResult{}, err
		}

		return feedparsers.ParseDelimitedText(text, columns), nil
	}
}

func NewJsonDumpFeed(client *http.Client, config eventmodels.JsonFeedYAML) eventmodels.FeedFunc {
	fields := feedparsers.JsonFields{
		Kind:   config.KindField,
		Symbol: config.SymbolField,
		Expiry: config.ExpiryField,
	}

	return func(ctx context.Context) (eventmodels.ParseResult, error) {
		value, err := FetchInstrumentsJsonDump(ctx, client, config.URL)
		if err != nil {
			return eventmodels.ParseResult{}, err
		}

		return feedparsers.ParseJSONArray(value, fields), nil
	}
}

// NewSheetsFeed reads the spreadsheet through reader. A nil reader stands for
// missing credentials and yields an empty result without error.
func NewSheetsFeed(reader sheets.RowsReader, config eventmodels.SheetsFeedYAML) eventmodels.FeedFunc {
	columns := feedparsers.TabularColumns{
		Symbol: config.SymbolColumn,
		Expiry: config.ExpiryColumn,
	}

	return func(ctx context.Context) (eventmodels.ParseResult, error) {
		if reader == nil {
			log.Warn("NewSheetsFeed: google sheets credentials missing, returning no records")
			return eventmodels.ParseResult{}, nil
		}

		rows, err := sheets.FetchTabularRows(ctx, reader, config.SheetName)
		if err != nil {
			return eventmodels.ParseResult{}, eventmodels.NewFeedError(eventmodels.TransportFeedError, eventmodels.SheetsFeed, "failed to read spreadsheet", err)
		}

		return feedparsers.ParseTabularRows(rows, columns), nil
	}
}

// GetFeed builds the one feed a deployment targets.
func GetFeed(ctx context.Context, config *eventmodels.ExpiryConfigYAML, client *http.Client) (eventmodels.FeedFunc, error) {
	switch config.Feed {
	case eventmodels.CsvFeed:
		return NewCsvFeed(client, config.Csv), nil
	case eventmodels.JsonDumpFeed:
		return NewJsonDumpFeed(client, config.Json), nil
	case eventmodels.SheetsFeed:
		reader, err := sheets.NewRowsReaderFromEnv(ctx)
		if errors.Is(err, sheets.ErrMissingCredentials) {
			return NewSheetsFeed(nil, config.Sheets), nil
		}

		if err != nil {
			return nil, fmt.Errorf("GetFeed: failed to set up google sheets: %w", err)
		}

		return NewSheetsFeed(reader, config.Sheets), nil
	default:
		return nil, fmt.Errorf("GetFeed: no feed available for source: %s", config.Feed)
	}
}
