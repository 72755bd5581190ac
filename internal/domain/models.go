package domain

import "time"

// Domain contains core models and error kinds shared across the pipeline.

// FeedEntry is one article reference as listed by the blog feed.
// Published is nil when the feed item carried no parseable date; such
// entries are kept but rank after dated ones.
type FeedEntry struct {
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Published *time.Time `json:"published,omitempty"`
	Summary   string     `json:"summary,omitempty"`
}

// ArticleDetail enriches a FeedEntry with metadata scraped from the
// article page. Tags and Author are best effort: absence is valid.
type ArticleDetail struct {
	FeedEntry
	Tags   []string `json:"tags"`
	Author string   `json:"author,omitempty"`
}

// ArticleContent is the readable article body converted to Markdown.
// Title is re-derived from the page and may differ trivially from the
// feed title. An empty Content is a degraded-but-valid result.
type ArticleContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
