package eventservices

import (
	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
)

// IsInScope keeps option rows (CE/PE) on a whitelisted underlying that carry
// an expiry value. The expiry is only checked for presence here.
func IsInScope(record eventmodels.RawInstrumentRecord, whitelist eventmodels.Whitelist) bool {
	if err := eventmodels.NewOptionType(record.InstrumentKind).Validate(); err != nil {
		return false
	}

	if !whitelist.Contains(eventmodels.NewStockSymbol(record.UnderlyingSymbol)) {
		return false
	}

	return !record.RawExpiry.IsEmpty()
}

func FilterInScope(records []eventmodels.RawInstrumentRecord, whitelist eventmodels.Whitelist) []eventmodels.RawInstrumentRecord {
	filtered := make([]eventmodels.RawInstrumentRecord, 0, len(records))
	for _, r := range records {
		if IsInScope(r, whitelist) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}
