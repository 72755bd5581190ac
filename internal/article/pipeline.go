package article

import (
	"context"

	"github.com/shukan-hq/shukan-aws-digest/internal/domain"
	"github.com/shukan-hq/shukan-aws-digest/internal/extract"
	"github.com/shukan-hq/shukan-aws-digest/pkg/httpclient"
)

const maxHTMLBodyBytes = 1 << 20 // 1 MiB

// Pipeline resolves one article at a time: fetch the page, then run the
// requested extractor over it. Detail and content are explicitly
// requested, so fetch failures propagate instead of degrading.
type Pipeline struct {
	client  httpclient.Client
	content *extract.ContentExtractor
	meta    *extract.MetadataExtractor
}

// NewPipeline wires a pipeline for the given site adapter.
func NewPipeline(client httpclient.Client, adapter extract.SiteAdapter) *Pipeline {
	return &Pipeline{
		client:  client,
		content: extract.NewContentExtractor(adapter),
		meta:    extract.NewMetadataExtractor(adapter),
	}
}

// Detail fetches the entry's page and enriches it with tags and author.
// Missing tags or author degrade to empty fields; a failed fetch does not.
func (p *Pipeline) Detail(ctx context.Context, entry domain.FeedEntry) (domain.ArticleDetail, error) {
	html, err := p.fetchPage(ctx, entry.URL)
	if err != nil {
		return domain.ArticleDetail{}, err
	}

	meta := p.meta.Metadata(html)
	return domain.ArticleDetail{
		FeedEntry: entry,
		Tags:      meta.Tags,
		Author:    meta.Author,
	}, nil
}

// Content fetches the entry's page and converts its readable body to
// Markdown. An empty body is a degraded-but-valid result.
func (p *Pipeline) Content(ctx context.Context, entry domain.FeedEntry) (domain.ArticleContent, error) {
	html, err := p.fetchPage(ctx, entry.URL)
	if err != nil {
		return domain.ArticleContent{}, err
	}

	content := p.content.Markdown(html)
	if content.Title == "" {
		content.Title = entry.Title
	}
	return content, nil
}

// fetchPage retrieves the raw HTML for a single article URL, capping the
// body size so a pathological page cannot exhaust memory.
func (p *Pipeline) fetchPage(ctx context.Context, url string) (string, error) {
	resp, err := p.client.Get(ctx, url, nil)
	if err != nil {
		return "", &domain.FetchError{URL: url, Err: err}
	}
	if resp.StatusCode()/100 != 2 {
		return "", &domain.FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	body := resp.Body()
	if len(body) > maxHTMLBodyBytes {
		body = body[:maxHTMLBodyBytes]
	}
	return string(body), nil
}
