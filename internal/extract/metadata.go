package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Metadata holds the structured fields scraped from an article page.
// Both fields are independently optional; absence is valid.
type Metadata struct {
	Tags   []string
	Author string
}

// MetadataExtractor pulls tags and the author byline out of an article
// page via the site adapter's targeted queries.
type MetadataExtractor struct {
	adapter SiteAdapter
}

// NewMetadataExtractor builds an extractor using the given site adapter.
func NewMetadataExtractor(adapter SiteAdapter) *MetadataExtractor {
	return &MetadataExtractor{adapter: adapter}
}

// Metadata extracts tags and author. It has no failure mode: the worst
// case is both fields empty.
func (e *MetadataExtractor) Metadata(html string) Metadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Metadata{}
	}

	return Metadata{
		Tags:   e.adapter.TagList(doc),
		Author: e.adapter.Author(doc),
	}
}
