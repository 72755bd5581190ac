package publishers

import (
	"time"

	"github.com/shukan-hq/shukan-aws-digest/internal/domain"
)

// Event is the payload published downstream when the watcher sees a new
// digest entry in the feed.
type Event struct {
	Source      string           `json:"source"`
	Entry       domain.FeedEntry `json:"entry"`
	CollectedAt time.Time        `json:"collected_at"`
}

// NewEvent constructs an Event for the given source + entry.
func NewEvent(source string, entry domain.FeedEntry) Event {
	return Event{
		Source:      source,
		Entry:       entry,
		CollectedAt: time.Now().UTC(),
	}
}
