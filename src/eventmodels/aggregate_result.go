package eventmodels

// AggregateResult holds the per-symbol rows of one run. Dropped counts records
// whose expiry failed to normalize.
type AggregateResult struct {
	Rows    ExpiryResultRows
	Dropped int
}
