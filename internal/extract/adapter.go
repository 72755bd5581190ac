package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SiteAdapter isolates one publisher's markup conventions. The pipeline
// never hard-codes selectors: a markup change or a second publisher only
// needs a new adapter.
type SiteAdapter interface {
	// Name identifies the adapter in logs.
	Name() string
	// ContentRegion returns the primary readable region, or nil when the
	// publisher's structural marker is absent.
	ContentRegion(doc *goquery.Document) *goquery.Selection
	// TagList returns the article's category tags in document order.
	TagList(doc *goquery.Document) []string
	// Author returns the byline author, or "" when absent.
	Author(doc *goquery.Document) string
}

// firstNonEmpty returns the first value that is not blank after trimming.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
