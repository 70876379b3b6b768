package eventmodels

import "fmt"

type FeedName string

const (
	CsvFeed      FeedName = "csv"
	JsonDumpFeed FeedName = "json"
	SheetsFeed   FeedName = "sheets"
)

func (f FeedName) Validate() error {
	switch f {
	case CsvFeed, JsonDumpFeed, SheetsFeed:
		return nil
	}

	return fmt.Errorf("FeedName: Validate: unknown feed: %q", string(f))
}
