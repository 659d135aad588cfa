package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MediaURLs collects attribute values from elements matching selector,
// resolved to absolute URLs against the page URL. Duplicates are dropped,
// first occurrence wins, document order is preserved. Used by the article
// extractors for image and movie URL lists.
func MediaURLs(body string, sourceURL string, selector string, attr string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}

	var base *url.URL
	if u, err := url.Parse(sourceURL); err == nil {
		base = u
	}

	seen := make(map[string]bool)
	var urls []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		val, exists := sel.Attr(attr)
		if !exists || val == "" {
			return
		}

		resolved := val
		if base != nil {
			if ref, err := url.Parse(val); err == nil {
				resolved = base.ResolveReference(ref).String()
			}
		}

		if seen[resolved] {
			return
		}
		seen[resolved] = true
		urls = append(urls, resolved)
	})

	return urls
}
