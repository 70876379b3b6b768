package eventpubsub

const (
	ExpiriesRefreshStartedEvent = "ExpiriesRefreshStartedEvent"
	ExpiriesUpdatedEvent        = "ExpiriesUpdatedEvent"
	ExpiriesRefreshFailedEvent  = "ExpiriesRefreshFailedEvent"
)
