package eventmodels

import (
	"time"

	"github.com/google/uuid"
)

type ExpiriesRefreshStartedEvent struct {
	RunID     uuid.UUID
	Feed      FeedName
	StartedAt time.Time
}

// ExpiriesUpdatedEvent carries a complete replacement result. Err is set when
// the run produced rows but the feed itself was structurally unusable.
type ExpiriesUpdatedEvent struct {
	RunID      uuid.UUID
	Feed       FeedName
	Rows       ExpiryResultRows
	Dropped    int
	Skipped    int
	FinishedAt time.Time
	Err        error
}

// ExpiriesRefreshFailedEvent reports a run that produced no result. The
// previous result stays in place.
type ExpiriesRefreshFailedEvent struct {
	RunID      uuid.UUID
	Feed       FeedName
	FinishedAt time.Time
	Err        error
}
