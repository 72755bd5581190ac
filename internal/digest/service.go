package digest

import (
	"context"
	"time"

	"github.com/shukan-hq/shukan-aws-digest/internal/article"
	"github.com/shukan-hq/shukan-aws-digest/internal/domain"
	"github.com/shukan-hq/shukan-aws-digest/internal/extract"
	"github.com/shukan-hq/shukan-aws-digest/internal/feed"
	"github.com/shukan-hq/shukan-aws-digest/pkg/httpclient"
)

// Default window for recent-update listings.
const (
	DefaultDays  = 7
	DefaultLimit = 10
)

// Service is the four-operation core consumed by the transport façade.
// Every operation is a stateless round trip: one feed fetch, plus one
// page fetch when detail or content is requested. Nothing is prefetched
// or cached across calls.
type Service struct {
	source   *feed.Source
	pipeline *article.Pipeline
	now      func() time.Time
}

// NewService wires the digest core for the given feed URL and site adapter.
func NewService(source *feed.Source, pipeline *article.Pipeline) *Service {
	return &Service{
		source:   source,
		pipeline: pipeline,
		now:      time.Now,
	}
}

// WithClock overrides the clock used for recency filtering.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// ListRecent returns entries published within the last days, newest
// first, at most limit of them. Arguments are validated before any
// network I/O.
func (s *Service) ListRecent(ctx context.Context, days, limit int) ([]domain.FeedEntry, error) {
	if err := feed.ValidateWindow(days, limit); err != nil {
		return nil, err
	}

	entries, err := s.source.FetchEntries(ctx)
	if err != nil {
		return nil, err
	}
	return feed.SelectRecent(entries, days, limit, s.now())
}

// Latest returns the newest entry of the series, or ok=false when the
// feed has no matching entry. An empty feed is a valid empty result; a
// failed fetch is not.
func (s *Service) Latest(ctx context.Context, series Series) (domain.FeedEntry, bool, error) {
	entries, err := s.source.FetchEntries(ctx)
	if err != nil {
		return domain.FeedEntry{}, false, err
	}

	entry, ok := feed.SelectLatest(filterSeries(entries, series))
	return entry, ok, nil
}

// LatestWithDetail resolves the newest entry of the series and enriches
// it with tags and author from the article page.
func (s *Service) LatestWithDetail(ctx context.Context, series Series) (domain.ArticleDetail, bool, error) {
	entry, ok, err := s.Latest(ctx, series)
	if err != nil || !ok {
		return domain.ArticleDetail{}, false, err
	}

	detail, err := s.pipeline.Detail(ctx, entry)
	if err != nil {
		return domain.ArticleDetail{}, false, err
	}
	return detail, true, nil
}

// LatestContent resolves the newest entry of the series and returns its
// readable body as Markdown.
func (s *Service) LatestContent(ctx context.Context, series Series) (domain.ArticleContent, bool, error) {
	entry, ok, err := s.Latest(ctx, series)
	if err != nil || !ok {
		return domain.ArticleContent{}, false, err
	}

	content, err := s.pipeline.Content(ctx, entry)
	if err != nil {
		return domain.ArticleContent{}, false, err
	}
	return content, true, nil
}

// New assembles the service from configuration values, sharing one HTTP
// client between feed and page fetches.
func New(feedURL string, timeout time.Duration) *Service {
	client := httpclient.NewRestyClient(timeout)
	return NewService(
		feed.NewSource(feedURL, client),
		article.NewPipeline(client, extract.NewAWSBlogAdapter()),
	)
}
