package feed

import (
	"context"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/shukan-hq/shukan-aws-digest/internal/domain"
	"github.com/shukan-hq/shukan-aws-digest/pkg/httpclient"
)

// Source fetches the configured blog feed and maps its items to FeedEntry
// values. It preserves feed-declared order; ranking is the selector's job
// so a mis-ordered feed stays observable.
type Source struct {
	feedURL string
	client  httpclient.Client
	parser  *gofeed.Parser
}

// NewSource builds a feed source for the given feed URL.
func NewSource(feedURL string, client httpclient.Client) *Source {
	return &Source{
		feedURL: feedURL,
		client:  client,
		parser:  gofeed.NewParser(),
	}
}

// FetchEntries retrieves and parses the feed. Transport failures and
// non-2xx responses surface as *domain.FetchError, an unparseable body
// as *domain.ParseError; no partial results are returned.
func (s *Source) FetchEntries(ctx context.Context) ([]domain.FeedEntry, error) {
	resp, err := s.client.Get(ctx, s.feedURL, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: s.feedURL, Err: err}
	}
	if resp.StatusCode()/100 != 2 {
		return nil, &domain.FetchError{URL: s.feedURL, StatusCode: resp.StatusCode()}
	}

	parsed, err := s.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, &domain.ParseError{URL: s.feedURL, Err: err}
	}

	entries := make([]domain.FeedEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entry, ok := mapItem(item)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// mapItem converts one gofeed item. Items without a usable title or link
// cannot be surfaced and are dropped; a missing publish date is kept and
// left nil so the selector ranks the entry last.
func mapItem(item *gofeed.Item) (domain.FeedEntry, bool) {
	if item == nil {
		return domain.FeedEntry{}, false
	}

	title := strings.TrimSpace(item.Title)
	link := strings.TrimSpace(item.Link)
	if title == "" || link == "" {
		return domain.FeedEntry{}, false
	}

	entry := domain.FeedEntry{
		Title:   title,
		URL:     link,
		Summary: strings.TrimSpace(item.Description),
	}
	if item.PublishedParsed != nil {
		utc := item.PublishedParsed.UTC()
		entry.Published = &utc
	} else if item.UpdatedParsed != nil {
		utc := item.UpdatedParsed.UTC()
		entry.Published = &utc
	}
	return entry, true
}
