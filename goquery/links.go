// Package goquery extracts anchor links matching a search string from HTML
// pages.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webrows"
)

// Canonical field order for link records.
var linkFields = []string{"domain", "link", "text"}

// Ensure LinkExtractor implements webrows.Extractor at compile time.
var _ webrows.Extractor = (*LinkExtractor)(nil)

// LinkExtractor finds anchors whose visible text contains a search string.
// Matching is case-insensitive on whitespace-collapsed text; the emitted
// text field keeps the original anchor text. Anchor hrefs are resolved to
// absolute URLs against the page's own URL.
type LinkExtractor struct {
	search string
}

// NewLinkExtractor creates a LinkExtractor for the given search string.
// The search string is normalized once, the same way anchor text is.
func NewLinkExtractor(search string) *LinkExtractor {
	return &LinkExtractor{search: NormalizeText(search)}
}

// Extract parses body as HTML and returns one record per matching anchor,
// in document order. Records have fields domain, link, and text.
func (e *LinkExtractor) Extract(body string, sourceURL string) ([]webrows.Record, error) {
	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, webrows.Errorf(webrows.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, webrows.Errorf(webrows.EUNPROCESSABLE, "failed to parse HTML: %v", err)
	}

	var records []webrows.Record
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}

		text := sel.Text()
		if !strings.Contains(NormalizeText(text), e.search) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		records = append(records, webrows.Record{
			"domain": hostOf(resolved),
			"link":   resolved,
			"text":   text,
		})
	})

	return records, nil
}

// Fields returns the canonical link field list.
func (e *LinkExtractor) Fields() []string {
	out := make([]string, len(linkFields))
	copy(out, linkFields)
	return out
}

// NormalizeText collapses runs of whitespace to single spaces, trims, and
// lower-cases. Search strings and anchor text are compared in this form.
func NormalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// hostOf returns the network location part of a URL.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
