package eventservices

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
)

const MaxExpiriesPerSymbol = 2

// AggregateExpiries reduces filtered records to at most two ascending distinct
// expiries per whitelisted symbol, in whitelist order. A symbol with none gets
// a single NO DATA row. Records whose expiry does not normalize are dropped.
func AggregateExpiries(records []eventmodels.RawInstrumentRecord, whitelist eventmodels.Whitelist, loc *time.Location) eventmodels.AggregateResult {
	set := make(eventmodels.SymbolExpirySet)
	dropped := 0

	for _, r := range records {
		date, err := eventmodels.ToCanonicalDate(r.RawExpiry, loc)
		if err != nil {
			log.Debugf("AggregateExpiries: dropping %s expiry %q: %v", r.UnderlyingSymbol, r.RawExpiry.String(), err)
			dropped++
			continue
		}

		set.Add(eventmodels.NewCanonicalExpiry(eventmodels.NewStockSymbol(r.UnderlyingSymbol), date))
	}

	rows := make(eventmodels.ExpiryResultRows, 0, len(whitelist)*MaxExpiriesPerSymbol)
	for _, symbol := range whitelist {
		keys := set.SortedKeys(symbol)
		if len(keys) == 0 {
			rows = append(rows, eventmodels.ExpiryResultRow{
				Symbol:      symbol,
				DisplayText: eventmodels.NoDataSentinel,
			})
			continue
		}

		if len(keys) > MaxExpiriesPerSymbol {
			keys = keys[:MaxExpiriesPerSymbol]
		}

		for _, k := range keys {
			rows = append(rows, eventmodels.ExpiryResultRow{
				Symbol:      symbol,
				DisplayText: k.Format(),
			})
		}
	}

	return eventmodels.AggregateResult{
		Rows:    rows,
		Dropped: dropped,
	}
}

// BuildExpiryRows runs filter and aggregation over one parse outcome. An
// unusable feed aggregates as zero records, so every symbol reports NO DATA.
func BuildExpiryRows(parsed eventmodels.ParseResult, whitelist eventmodels.Whitelist, loc *time.Location) eventmodels.AggregateResult {
	return AggregateExpiries(FilterInScope(parsed.Records, whitelist), whitelist, loc)
}
