// Package readability provides an alternative article-extraction engine
// backed by go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/webrows"
	goq "github.com/fwojciec/webrows/goquery"
	"github.com/fwojciec/webrows/trafilatura"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webrows.Extractor at compile time.
var _ webrows.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article content. It produces
// the same field set as the trafilatura engine so the two are
// interchangeable behind webrows.Extractor.
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

	pageURL, _ := url.Parse(sourceURL)

	article, err := readability.FromReader(strings.NewReader(body), pageURL)
	if err != nil {
		return nil, webrows.Errorf(webrows.EUNPROCESSABLE, "article extraction failed: %v", err)
	}

	var publishDate any
	if article.PublishedTime != nil {
		publishDate = *article.PublishedTime
	}

	rec := webrows.Record{
		"title":        article.Title,
		"authors":      article.Byline,
		"publish_date": publishDate,
		"text":         article.TextContent,
		"top_image":    article.Image,
		"images":       strings.Join(goq.MediaURLs(body, sourceURL, "img[src]", "src"), ","),
		"movies":       strings.Join(goq.MediaURLs(body, sourceURL, "video[src], video source[src], iframe[src]", "src"), ","),
	}

	return []webrows.Record{rec}, nil
}

// Fields returns the canonical article field list.
func (e *Extractor) Fields() []string {
	out := make([]string, len(trafilatura.ArticleFields))
	copy(out, trafilatura.ArticleFields)
	return out
}
