package extract

import "testing"

func TestMetadataExtractsTagsAndAuthor(t *testing.T) {
	page := `<html><body>
	  <article>
	    <span class="blog-post-categories">
	      <a href="/tag/weekly">週刊 AWS</a>
	      <a href="/tag/launch">新機能</a>
	    </span>
	    <span property="author"><span property="name">山田 太郎</span></span>
	    <section class="blog-post-content"><p>本文</p></section>
	  </article>
	</body></html>`

	got := NewMetadataExtractor(NewAWSBlogAdapter()).Metadata(page)

	if len(got.Tags) != 2 || got.Tags[0] != "週刊 AWS" || got.Tags[1] != "新機能" {
		t.Fatalf("Tags = %#v", got.Tags)
	}
	if got.Author != "山田 太郎" {
		t.Fatalf("Author = %q", got.Author)
	}
}

func TestMetadataFieldsAreIndependentlyOptional(t *testing.T) {
	tagsOnly := `<html><body><span class="blog-post-categories"><a>週刊 AWS</a></span></body></html>`
	got := NewMetadataExtractor(NewAWSBlogAdapter()).Metadata(tagsOnly)
	if len(got.Tags) != 1 || got.Author != "" {
		t.Fatalf("tags-only page: %#v", got)
	}

	authorOnly := `<html><head><meta name="author" content="鈴木"></head><body><p>x</p></body></html>`
	got = NewMetadataExtractor(NewAWSBlogAdapter()).Metadata(authorOnly)
	if len(got.Tags) != 0 || got.Author != "鈴木" {
		t.Fatalf("author-only page: %#v", got)
	}
}

func TestMetadataAbsentEverywhereIsEmptyNotError(t *testing.T) {
	got := NewMetadataExtractor(NewAWSBlogAdapter()).Metadata("<html><body><p>nothing here</p></body></html>")
	if len(got.Tags) != 0 || got.Author != "" {
		t.Fatalf("expected empty metadata, got %#v", got)
	}
}

func TestMetadataDeduplicatesRepeatedTags(t *testing.T) {
	page := `<html><body>
	  <span class="blog-post-categories">
	    <a>週刊 AWS</a><a>週刊 AWS</a><a>新機能</a>
	  </span>
	</body></html>`

	got := NewMetadataExtractor(NewAWSBlogAdapter()).Metadata(page)
	if len(got.Tags) != 2 {
		t.Fatalf("Tags = %#v", got.Tags)
	}
}
