package digest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shukan-hq/shukan-aws-digest/internal/article"
	"github.com/shukan-hq/shukan-aws-digest/internal/domain"
	"github.com/shukan-hq/shukan-aws-digest/internal/extract"
	"github.com/shukan-hq/shukan-aws-digest/internal/feed"
	"github.com/shukan-hq/shukan-aws-digest/pkg/httpclient"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

const testFeedURL = "https://example.com/blogs/news/tag/weekly/feed/"

type stubHTTPResponse struct {
	body       []byte
	statusCode int
}

func (s stubHTTPResponse) Body() []byte    { return s.body }
func (s stubHTTPResponse) StatusCode() int { return s.statusCode }

// routingHTTPClient maps URLs to canned responses so one stub can serve
// both the feed fetch and the article page fetch.
type routingHTTPClient struct {
	responses map[string]stubHTTPResponse
}

func (c routingHTTPClient) Get(_ context.Context, url string, _ map[string]string) (httpclient.Response, error) {
	resp, ok := c.responses[url]
	if !ok {
		return nil, fmt.Errorf("unexpected request to %s", url)
	}
	return resp, nil
}

func feedItem(title, url string, published time.Time) string {
	return fmt.Sprintf(`<item><title>%s</title><link>%s</link><pubDate>%s</pubDate></item>`,
		title, url, published.Format(time.RFC1123Z))
}

func testFeed(items ...string) stubHTTPResponse {
	body := `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>aws jp</title>` +
		strings.Join(items, "") + `</channel></rss>`
	return stubHTTPResponse{body: []byte(body), statusCode: 200}
}

const weeklyArticlePage = `<html>
  <head><title>週刊AWS – 2026/8/17週</title></head>
  <body>
    <span class="blog-post-categories"><a>週刊 AWS</a><a>新機能</a></span>
    <span property="author"><span property="name">山田 太郎</span></span>
    <section class="blog-post-content"><h2>今週のまとめ</h2><p>新しいリージョンが追加されました。</p></section>
  </body>
</html>`

func newTestService(client httpclient.Client) *Service {
	svc := NewService(
		feed.NewSource(testFeedURL, client),
		article.NewPipeline(client, extract.NewAWSBlogAdapter()),
	)
	return svc.WithClock(func() time.Time { return testNow })
}

func TestListRecentEndToEndWindow(t *testing.T) {
	client := routingHTTPClient{responses: map[string]stubHTTPResponse{
		testFeedURL: testFeed(
			feedItem("週刊AWS – 1日前", "https://example.com/d1", testNow.Add(-1*24*time.Hour)),
			feedItem("週刊AWS – 5日前", "https://example.com/d5", testNow.Add(-5*24*time.Hour)),
			feedItem("週刊AWS – 10日前", "https://example.com/d10", testNow.Add(-10*24*time.Hour)),
			feedItem("週刊AWS – 20日前", "https://example.com/d20", testNow.Add(-20*24*time.Hour)),
		),
	}}

	got, err := newTestService(client).ListRecent(context.Background(), 7, 10)
	if err != nil {
		t.Fatalf("ListRecent returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries within 7 days, got %d", len(got))
	}
	if got[0].URL != "https://example.com/d1" || got[1].URL != "https://example.com/d5" {
		t.Fatalf("unexpected order: %s, %s", got[0].URL, got[1].URL)
	}
}

func TestListRecentValidatesBeforeFetching(t *testing.T) {
	// The client would fail any request; validation must trip first.
	client := routingHTTPClient{responses: map[string]stubHTTPResponse{}}

	_, err := newTestService(client).ListRecent(context.Background(), 0, 0)
	var invalid *domain.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidArgumentError, got %v", err)
	}
}

func TestListRecentFeedFailureIsNotAnEmptyList(t *testing.T) {
	client := routingHTTPClient{responses: map[string]stubHTTPResponse{
		testFeedURL: {body: []byte("internal error"), statusCode: 500},
	}}

	_, err := newTestService(client).ListRecent(context.Background(), 7, 10)
	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
}

func TestLatestAppliesSeriesFilter(t *testing.T) {
	client := routingHTTPClient{responses: map[string]stubHTTPResponse{
		testFeedURL: testFeed(
			feedItem("週刊生成AI with AWS – 2026/8/18週", "https://example.com/genai", testNow.Add(-1*24*time.Hour)),
			feedItem("週刊AWS – 2026/8/17週", "https://example.com/weekly", testNow.Add(-2*24*time.Hour)),
		),
	}}
	svc := newTestService(client)

	weekly, ok, err := svc.Latest(context.Background(), SeriesWeekly)
	if err != nil || !ok {
		t.Fatalf("Latest(weekly) = ok=%v err=%v", ok, err)
	}
	if weekly.URL != "https://example.com/weekly" {
		t.Errorf("weekly latest = %s", weekly.URL)
	}

	genai, ok, err := svc.Latest(context.Background(), SeriesGenAI)
	if err != nil || !ok {
		t.Fatalf("Latest(genai) = ok=%v err=%v", ok, err)
	}
	if genai.URL != "https://example.com/genai" {
		t.Errorf("genai latest = %s", genai.URL)
	}

	unfiltered, ok, err := svc.Latest(context.Background(), SeriesAny)
	if err != nil || !ok {
		t.Fatalf("Latest(any) = ok=%v err=%v", ok, err)
	}
	if unfiltered.URL != "https://example.com/genai" {
		t.Errorf("unfiltered latest should be the newest entry, got %s", unfiltered.URL)
	}
}

func TestLatestEmptyFeedIsOKFalse(t *testing.T) {
	client := routingHTTPClient{responses: map[string]stubHTTPResponse{
		testFeedURL: testFeed(),
	}}

	_, ok, err := newTestService(client).Latest(context.Background(), SeriesWeekly)
	if err != nil {
		t.Fatalf("empty feed must not be an error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for an empty feed")
	}
}

func TestLatestWithDetailFetchesThePage(t *testing.T) {
	client := routingHTTPClient{responses: map[string]stubHTTPResponse{
		testFeedURL: testFeed(
			feedItem("週刊AWS – 2026/8/17週", "https://example.com/weekly", testNow.Add(-1*24*time.Hour)),
		),
		"https://example.com/weekly": {body: []byte(weeklyArticlePage), statusCode: 200},
	}}

	detail, ok, err := newTestService(client).LatestWithDetail(context.Background(), SeriesWeekly)
	if err != nil || !ok {
		t.Fatalf("LatestWithDetail = ok=%v err=%v", ok, err)
	}
	if len(detail.Tags) != 2 || detail.Tags[1] != "新機能" {
		t.Errorf("Tags = %#v", detail.Tags)
	}
	if detail.Author != "山田 太郎" {
		t.Errorf("Author = %q", detail.Author)
	}
}

func TestLatestContentReturnsMarkdown(t *testing.T) {
	client := routingHTTPClient{responses: map[string]stubHTTPResponse{
		testFeedURL: testFeed(
			feedItem("週刊AWS – 2026/8/17週", "https://example.com/weekly", testNow.Add(-1*24*time.Hour)),
		),
		"https://example.com/weekly": {body: []byte(weeklyArticlePage), statusCode: 200},
	}}

	content, ok, err := newTestService(client).LatestContent(context.Background(), SeriesWeekly)
	if err != nil || !ok {
		t.Fatalf("LatestContent = ok=%v err=%v", ok, err)
	}
	if !strings.Contains(content.Content, "## 今週のまとめ") {
		t.Errorf("markdown heading missing: %q", content.Content)
	}
	if !strings.Contains(content.Content, "新しいリージョンが追加されました。") {
		t.Errorf("markdown body missing: %q", content.Content)
	}
}

func TestLatestContentPageFailurePropagates(t *testing.T) {
	client := routingHTTPClient{responses: map[string]stubHTTPResponse{
		testFeedURL: testFeed(
			feedItem("週刊AWS – 2026/8/17週", "https://example.com/weekly", testNow.Add(-1*24*time.Hour)),
		),
		"https://example.com/weekly": {body: []byte("gone"), statusCode: 503},
	}}

	_, _, err := newTestService(client).LatestContent(context.Background(), SeriesWeekly)
	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError from page fetch, got %v", err)
	}
	if fetchErr.URL != "https://example.com/weekly" {
		t.Fatalf("FetchError should carry the page URL, got %s", fetchErr.URL)
	}
}

func TestParseSeries(t *testing.T) {
	if s, err := ParseSeries("weekly"); err != nil || s != SeriesWeekly {
		t.Fatalf("ParseSeries(weekly) = %v, %v", s, err)
	}
	if s, err := ParseSeries(""); err != nil || s != SeriesAny {
		t.Fatalf("ParseSeries(\"\") = %v, %v", s, err)
	}
	if s, err := ParseSeries("any"); err != nil || s != SeriesAny {
		t.Fatalf("ParseSeries(any) = %v, %v", s, err)
	}
	if _, err := ParseSeries("daily"); err == nil {
		t.Fatal("expected an error for an unknown series")
	}
}
