// Package trafilatura extracts article content from web pages using
// go-trafilatura.
package trafilatura

import (
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/webrows"
	goq "github.com/fwojciec/webrows/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// ArticleFields is the canonical field order for article records, shared by
// every article-extraction engine.
var ArticleFields = []string{"title", "authors", "publish_date", "text", "top_image", "images", "movies"}

// Ensure Extractor implements webrows.Extractor at compile time.
var _ webrows.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article content. It produces
// exactly one record per page, with metadata (title, authors, publish date,
// lead image) from trafilatura and media URL lists gathered from the raw
// document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns a single article record.
func (e *Extractor) Extract(body string, sourceURL string) ([]webrows.Record, error) {
	if body == "" {
		return nil, webrows.Errorf(webrows.EUNPROCESSABLE, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(sourceURL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(body), opts)
	if err != nil {
		return nil, webrows.Errorf(webrows.EUNPROCESSABLE, "article extraction failed: %v", err)
	}

	rec := webrows.Record{
		"title":        result.Metadata.Title,
		"authors":      joinAuthors(result.Metadata.Author),
		"publish_date": publishDate(result.Metadata.Date),
		"text":         result.ContentText,
		"top_image":    result.Metadata.Image,
		"images":       strings.Join(goq.MediaURLs(body, sourceURL, "img[src]", "src"), ","),
		"movies":       strings.Join(goq.MediaURLs(body, sourceURL, "video[src], video source[src], iframe[src]", "src"), ","),
	}

	return []webrows.Record{rec}, nil
}

// Fields returns the canonical article field list.
func (e *Extractor) Fields() []string {
	out := make([]string, len(ArticleFields))
	copy(out, ArticleFields)
	return out
}

// joinAuthors rewrites trafilatura's "; "-separated author list as a
// comma-joined one.
func joinAuthors(author string) string {
	if author == "" {
		return ""
	}
	parts := strings.Split(author, ";")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ",")
}

// publishDate converts a zero date to an absent value so it renders as an
// empty string.
func publishDate(d time.Time) any {
	if d.IsZero() {
		return nil
	}
	return d
}
