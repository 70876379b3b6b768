package eventmodels

// ParseResult is the outcome of turning one feed payload into records. Skipped
// counts rows dropped individually. A non-nil Err means the whole feed was
// unusable and Records is empty.
type ParseResult struct {
	Records []RawInstrumentRecord
	Skipped int
	Err     error
}

func (r ParseResult) IsUnusable() bool {
	return r.Err != nil
}

func NewUnusableParseResult(err error) ParseResult {
	return ParseResult{Err: err}
}
