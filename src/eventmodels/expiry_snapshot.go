package eventmodels

import (
	"time"

	"github.com/google/uuid"
)

// ExpirySnapshot is the read-only view handed to presentation.
type ExpirySnapshot struct {
	Rows            ExpiryResultRows `json:"rows"`
	IsFetching      bool             `json:"is_fetching"`
	LastError       string           `json:"last_error,omitempty"`
	LastRefreshedAt *time.Time       `json:"last_refreshed_at,omitempty"`
	RunID           *uuid.UUID       `json:"run_id,omitempty"`
	Feed            FeedName         `json:"feed"`
}
