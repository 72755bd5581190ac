package feed

import (
	"sort"
	"time"

	"github.com/shukan-hq/shukan-aws-digest/internal/domain"
)

// Entry selection is decoupled from fetching so the recency policy can
// change without touching network code, and so it is testable against
// synthetic entry lists with an injected clock.

// ValidateWindow checks the day window and result limit before any
// network round trip happens.
func ValidateWindow(days, limit int) error {
	if days < 1 {
		return &domain.InvalidArgumentError{Name: "days", Reason: "must be >= 1"}
	}
	if limit < 1 {
		return &domain.InvalidArgumentError{Name: "limit", Reason: "must be >= 1"}
	}
	return nil
}

// SelectRecent returns at most limit entries published within days*24h of
// now (inclusive boundary), newest first. Entries without a publish date
// pass the window but sort after dated ones, keeping their feed order.
func SelectRecent(entries []domain.FeedEntry, days, limit int, now time.Time) ([]domain.FeedEntry, error) {
	if err := ValidateWindow(days, limit); err != nil {
		return nil, err
	}

	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	out := make([]domain.FeedEntry, 0, len(entries))
	for _, e := range entries {
		if e.Published != nil && e.Published.Before(cutoff) {
			continue
		}
		out = append(out, e)
	}

	sortNewestFirst(out)

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SelectLatest returns the newest entry of the sequence, or ok=false when
// the sequence is empty. It is SelectRecent with an unbounded window and
// a limit of one.
func SelectLatest(entries []domain.FeedEntry) (domain.FeedEntry, bool) {
	if len(entries) == 0 {
		return domain.FeedEntry{}, false
	}

	sorted := append([]domain.FeedEntry(nil), entries...)
	sortNewestFirst(sorted)
	return sorted[0], true
}

// sortNewestFirst orders entries descending by publish date; dateless
// entries go last. The sort is stable so ties and dateless entries keep
// their original feed order.
func sortNewestFirst(entries []domain.FeedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Published, entries[j].Published
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
