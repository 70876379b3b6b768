package eventmodels

// RawInstrumentRecord is one feed row reduced to the three fields the expiry
// engine reads. Values are untrimmed and unvalidated.
type RawInstrumentRecord struct {
	InstrumentKind   string
	UnderlyingSymbol string
	RawExpiry        RawExpiry
}

func NewRawInstrumentRecord(kind, symbol string, expiry RawExpiry) RawInstrumentRecord {
	return RawInstrumentRecord{
		InstrumentKind:   kind,
		UnderlyingSymbol: symbol,
		RawExpiry:        expiry,
	}
}
