package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// awsBlogAdapter knows the AWS blog post template: the article body lives
// in a section marked blog-post-content, tags are category links under
// blog-post-categories, and the byline carries RDFa author properties.
type awsBlogAdapter struct{}

// NewAWSBlogAdapter returns the adapter for aws.amazon.com blog posts.
func NewAWSBlogAdapter() SiteAdapter { return awsBlogAdapter{} }

func (awsBlogAdapter) Name() string { return "aws-blog" }

func (awsBlogAdapter) ContentRegion(doc *goquery.Document) *goquery.Selection {
	for _, sel := range []string{
		`section.blog-post-content`,
		`article .blog-post-content`,
		`div.blog-post-content`,
	} {
		if region := doc.Find(sel).First(); region.Length() > 0 {
			return region
		}
	}
	return nil
}

func (awsBlogAdapter) TagList(doc *goquery.Document) []string {
	var tags []string
	doc.Find(`.blog-post-categories a, span.blog-post-categories a`).Each(func(_ int, link *goquery.Selection) {
		tag := strings.TrimSpace(link.Text())
		if tag == "" {
			return
		}
		for _, seen := range tags {
			if seen == tag {
				return
			}
		}
		tags = append(tags, tag)
	})
	return tags
}

func (awsBlogAdapter) Author(doc *goquery.Document) string {
	if name := doc.Find(`span[property="author"] span[property="name"]`).First(); name.Length() > 0 {
		if author := strings.TrimSpace(name.Text()); author != "" {
			return author
		}
	}
	if byline := doc.Find(`.blog-post-meta .author, span.blog-author`).First(); byline.Length() > 0 {
		if author := strings.TrimSpace(byline.Text()); author != "" {
			return author
		}
	}
	if meta := doc.Find(`meta[name="author"]`).First(); meta.Length() > 0 {
		if content, ok := meta.Attr("content"); ok {
			return strings.TrimSpace(content)
		}
	}
	return ""
}
