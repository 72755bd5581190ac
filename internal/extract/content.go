package extract

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/shukan-hq/shukan-aws-digest/internal/domain"
)

// chromeSelector matches non-content fragments stripped before the
// Markdown conversion: navigation, share buttons, related-post widgets
// and anything else that is not readable body text.
const chromeSelector = `nav, header, footer, aside, form, script, style, noscript, iframe,
	.share, .sharing, [class*="share-"], .social, .related, [class*="related-post"],
	.comments, .blog-post-categories, .blog-post-meta`

// ContentExtractor isolates an article page's readable region and
// converts it to Markdown.
type ContentExtractor struct {
	adapter   SiteAdapter
	converter *md.Converter
}

// NewContentExtractor builds an extractor using the given site adapter to
// locate the content region.
func NewContentExtractor(adapter SiteAdapter) *ContentExtractor {
	return &ContentExtractor{
		adapter:   adapter,
		converter: md.NewConverter("", true, nil),
	}
}

// Markdown extracts the readable body of the page as Markdown. It never
// fails: when no content region can be located at all the result carries
// the page title and an empty body, which callers must treat as degraded
// but valid, distinct from a fetch failure.
func (e *ContentExtractor) Markdown(html string) domain.ArticleContent {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.ArticleContent{}
	}

	out := domain.ArticleContent{Title: pageTitle(doc)}

	region := e.adapter.ContentRegion(doc)
	if region == nil {
		region = fallbackRegion(doc)
	}
	if region == nil {
		return out
	}

	region.Find(chromeSelector).Remove()

	out.Content = strings.TrimSpace(e.converter.Convert(region))
	return out
}

// pageTitle re-derives the title from the page itself, preferring the
// OpenGraph title over the document title.
func pageTitle(doc *goquery.Document) string {
	og := ""
	if node := doc.Find(`meta[property="og:title"]`).First(); node.Length() > 0 {
		og, _ = node.Attr("content")
	}
	return firstNonEmpty(og, doc.Find("title").First().Text())
}

// fallbackRegion degrades to a generic readable-content heuristic when
// the publisher's marker is missing: the container holding the most
// paragraph text wins. Returns nil when the page has no paragraph text
// at all.
func fallbackRegion(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestLen := 0

	doc.Find("article, main, section, div").Each(func(_ int, candidate *goquery.Selection) {
		textLen := 0
		candidate.ChildrenFiltered("p").Each(func(_ int, p *goquery.Selection) {
			textLen += len(strings.TrimSpace(p.Text()))
		})
		if textLen > bestLen {
			best = candidate
			bestLen = textLen
		}
	})

	if bestLen == 0 {
		return nil
	}
	return best
}
