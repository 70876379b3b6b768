package eventmodels

import "context"

// FeedFunc acquires one snapshot of a feed and parses it. A returned error is
// a transport or decode failure; structural failures travel in ParseResult.Err.
type FeedFunc func(ctx context.Context) (ParseResult, error)
