package extract

import (
	"strings"
	"testing"
)

const articlePage = `<!DOCTYPE html>
<html>
  <head>
    <title>週刊AWS – 2026/8/17週 | Amazon Web Services</title>
    <meta property="og:title" content="週刊AWS – 2026/8/17週">
  </head>
  <body>
    <nav><a href="/blogs/">ブログ一覧</a></nav>
    <article>
      <span class="blog-post-categories">
        <a href="/tag/weekly">週刊 AWS</a>
        <a href="/tag/launch">新機能</a>
      </span>
      <span property="author"><span property="name">山田 太郎</span></span>
      <section class="blog-post-content">
        <h2>今週のトピック</h2>
        <p>先週の主要なアップデートを振り返ります。</p>
        <p>詳細は <a href="https://example.com/whats-new">最新情報</a> を参照してください。</p>
        <img src="https://example.com/diagram.png" alt="構成図">
        <div class="share"><button>Share</button></div>
      </section>
    </article>
  </body>
</html>`

func TestMarkdownConvertsContentRegion(t *testing.T) {
	extractor := NewContentExtractor(NewAWSBlogAdapter())
	got := extractor.Markdown(articlePage)

	if got.Title != "週刊AWS – 2026/8/17週" {
		t.Errorf("Title = %q", got.Title)
	}
	if !strings.Contains(got.Content, "## 今週のトピック") {
		t.Errorf("heading missing from markdown:\n%s", got.Content)
	}
	if !strings.Contains(got.Content, "先週の主要なアップデートを振り返ります。") {
		t.Errorf("paragraph text missing from markdown:\n%s", got.Content)
	}
	if !strings.Contains(got.Content, "(https://example.com/whats-new)") {
		t.Errorf("link href missing from markdown:\n%s", got.Content)
	}
	if !strings.Contains(got.Content, "https://example.com/diagram.png") {
		t.Errorf("image source missing from markdown:\n%s", got.Content)
	}
}

func TestMarkdownStripsChromeAndRawTags(t *testing.T) {
	extractor := NewContentExtractor(NewAWSBlogAdapter())
	got := extractor.Markdown(articlePage)

	if strings.Contains(got.Content, "Share") {
		t.Errorf("share widget leaked into markdown:\n%s", got.Content)
	}
	if strings.Contains(got.Content, "ブログ一覧") {
		t.Errorf("navigation leaked into markdown:\n%s", got.Content)
	}
	if strings.Contains(got.Content, "<p>") || strings.Contains(got.Content, "<section") {
		t.Errorf("raw markup leaked into markdown:\n%s", got.Content)
	}
}

func TestMarkdownFallsBackWithoutSiteMarker(t *testing.T) {
	page := `<html><head><title>plain post</title></head><body>
	  <div id="wrapper">
	    <div class="entry">
	      <p>これは本文の段落です。マーカーのないテンプレートでも抽出されます。</p>
	      <p>二つ目の段落。</p>
	    </div>
	    <div class="sidebar"><p>短い</p></div>
	  </div>
	</body></html>`

	extractor := NewContentExtractor(NewAWSBlogAdapter())
	got := extractor.Markdown(page)

	if got.Title != "plain post" {
		t.Errorf("Title = %q", got.Title)
	}
	if !strings.Contains(got.Content, "これは本文の段落です。") {
		t.Errorf("fallback missed the main paragraphs:\n%s", got.Content)
	}
}

func TestMarkdownEmptyDocumentDegradesToEmptyContent(t *testing.T) {
	extractor := NewContentExtractor(NewAWSBlogAdapter())

	for _, page := range []string{
		"",
		"<html><head><title>bare</title></head><body></body></html>",
		"<html><body><div><span>no paragraphs here</span></div></body></html>",
	} {
		got := extractor.Markdown(page)
		if got.Content != "" {
			t.Errorf("expected empty content for page %q, got %q", page, got.Content)
		}
	}
}
