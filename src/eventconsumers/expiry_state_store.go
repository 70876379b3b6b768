package eventconsumers

import (
	"sync"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
	"github.com/jiaming2012/expiry-tracker/src/eventpubsub"
)

// ExpiryStateStore holds what presentation reads: the last complete result,
// whether a run is in progress, and the last error. Failed runs keep the
// previous rows.
type ExpiryStateStore struct {
	mu       sync.RWMutex
	snapshot eventmodels.ExpirySnapshot
}

func NewExpiryStateStore(feed eventmodels.FeedName) *ExpiryStateStore {
	return &ExpiryStateStore{
		snapshot: eventmodels.ExpirySnapshot{
			Rows: eventmodels.ExpiryResultRows{},
			Feed: feed,
		},
	}
}

func (s *ExpiryStateStore) Subscribe(bus *eventpubsub.Bus) error {
	if err := bus.Subscribe(eventpubsub.ExpiriesRefreshStartedEvent, s.onRefreshStarted); err != nil {
		return err
	}

	if err := bus.Subscribe(eventpubsub.ExpiriesUpdatedEvent, s.onExpiriesUpdated); err != nil {
		return err
	}

	return bus.Subscribe(eventpubsub.ExpiriesRefreshFailedEvent, s.onRefreshFailed)
}

func (s *ExpiryStateStore) onRefreshStarted(ev eventmodels.ExpiriesRefreshStartedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.IsFetching = true
}

func (s *ExpiryStateStore) onExpiriesUpdated(ev eventmodels.ExpiriesUpdatedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	finishedAt := ev.FinishedAt
	runID := ev.RunID

	s.snapshot.Rows = ev.Rows
	s.snapshot.IsFetching = false
	s.snapshot.LastRefreshedAt = &finishedAt
	s.snapshot.RunID = &runID
	s.snapshot.LastError = ""
	if ev.Err != nil {
		s.snapshot.LastError = ev.Err.Error()
	}
}

func (s *ExpiryStateStore) onRefreshFailed(ev eventmodels.ExpiriesRefreshFailedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.IsFetching = false
	if ev.Err != nil {
		s.snapshot.LastError = ev.Err.Error()
	}
}

// Snapshot returns a copy that is safe to hold after the next update.
func (s *ExpiryStateStore) Snapshot() eventmodels.ExpirySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.snapshot
	out.Rows = make(eventmodels.ExpiryResultRows, len(s.snapshot.Rows))
	copy(out.Rows, s.snapshot.Rows)

	return out
}
