package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/shukan-hq/shukan-aws-digest/internal/domain"
	"github.com/shukan-hq/shukan-aws-digest/internal/storage"
	"github.com/shukan-hq/shukan-aws-digest/pkg/publishers"
)

// FeedSource is the slice of the feed pipeline the watcher needs.
type FeedSource interface {
	FetchEntries(ctx context.Context) ([]domain.FeedEntry, error)
}

// EventPublisher fans announced entries out to downstream sinks.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
	Size() int
}

// Logger is the logging surface the watcher relies on.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

// Watcher polls the feed on an interval and announces entries it has not
// seen before. Seen-tracking lives in the store so restarts do not
// replay the feed; the interactive request pipeline never consults it.
type Watcher struct {
	sourceID string
	source   FeedSource
	store    storage.Store
	fanout   EventPublisher
	interval time.Duration
	log      Logger
}

// New builds a watcher over the given feed source.
func New(sourceID string, source FeedSource, store storage.Store, fanout EventPublisher, interval time.Duration, log Logger) *Watcher {
	return &Watcher{
		sourceID: sourceID,
		source:   source,
		store:    store,
		fanout:   fanout,
		interval: interval,
		log:      log,
	}
}

// Run polls until the context is cancelled. The first pass runs
// immediately; later passes follow the configured interval.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil || w.source == nil || w.store == nil || w.fanout == nil {
		return fmt.Errorf("watcher is not initialized")
	}

	w.log.InfoObj("watcher loop starting", "watcher_state", map[string]any{
		"source":           w.sourceID,
		"publishers_count": w.fanout.Size(),
		"interval":         w.interval.String(),
	})

	if err := w.runOnce(ctx); err != nil {
		w.log.ErrorObj("initial feed check failed", "error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.InfoObj("watcher loop exiting", "reason", ctx.Err().Error())
			return nil
		case <-ticker.C:
			if err := w.runOnce(ctx); err != nil {
				w.log.ErrorObj("scheduled feed check failed", "error", err.Error())
			}
		}
	}
}

// runOnce performs one feed fetch and announces unseen entries.
func (w *Watcher) runOnce(ctx context.Context) error {
	start := time.Now()

	entries, err := w.source.FetchEntries(ctx)
	if err != nil {
		return err
	}

	announced := 0
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		seen, err := w.store.SeenEntry(entry.URL)
		if err != nil {
			return fmt.Errorf("seen lookup for %s: %w", entry.URL, err)
		}
		if seen {
			continue
		}

		evt := publishers.NewEvent(w.sourceID, entry)
		if _, err := w.fanout.Publish(ctx, evt); err != nil {
			// Leave the entry unmarked so the next pass retries it.
			w.log.WarnObj("entry announcement failed", "announce_error", map[string]any{
				"url":   entry.URL,
				"error": err.Error(),
			})
			continue
		}
		if err := w.store.MarkEntry(entry.URL); err != nil {
			return fmt.Errorf("mark %s: %w", entry.URL, err)
		}
		announced++
	}

	w.log.InfoObj("feed check completed", "check_meta", map[string]any{
		"entries":    len(entries),
		"announced":  announced,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return nil
}
