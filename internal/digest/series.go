package digest

import (
	"strings"

	"github.com/shukan-hq/shukan-aws-digest/internal/domain"
)

// Series narrows latest-style lookups to one of the blog's recurring
// digest series. The feed is tag-scoped, but the 週刊生成AI posts share
// the tag and are told apart by title.
type Series string

const (
	// SeriesAny applies no title filter beyond the feed itself.
	SeriesAny Series = ""
	// SeriesWeekly matches 週刊AWS posts and excludes the 週刊生成AI spin-off.
	SeriesWeekly Series = "weekly"
	// SeriesGenAI matches 週刊生成AI with AWS posts.
	SeriesGenAI Series = "genai"
)

const (
	weeklyMarker = "週刊AWS"
	genAIMarker  = "週刊生成AI"
)

// ParseSeries validates a caller-supplied series name. The explicit
// "any" token requests the unfiltered feed.
func ParseSeries(s string) (Series, error) {
	switch Series(strings.ToLower(strings.TrimSpace(s))) {
	case SeriesAny, Series("any"):
		return SeriesAny, nil
	case SeriesWeekly:
		return SeriesWeekly, nil
	case SeriesGenAI:
		return SeriesGenAI, nil
	default:
		return SeriesAny, &domain.InvalidArgumentError{Name: "series", Reason: "must be weekly, genai or any"}
	}
}

// Match reports whether the entry title belongs to the series.
func (s Series) Match(title string) bool {
	switch s {
	case SeriesWeekly:
		return strings.Contains(title, weeklyMarker) && !strings.Contains(title, genAIMarker)
	case SeriesGenAI:
		return strings.Contains(title, genAIMarker)
	default:
		return true
	}
}

// filterSeries keeps entries belonging to the series, in place order.
func filterSeries(entries []domain.FeedEntry, series Series) []domain.FeedEntry {
	if series == SeriesAny {
		return entries
	}
	out := make([]domain.FeedEntry, 0, len(entries))
	for _, e := range entries {
		if series.Match(e.Title) {
			out = append(out, e)
		}
	}
	return out
}
