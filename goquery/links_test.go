package goquery_test

import (
	"testing"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("matching anchor yields domain, link and text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/c">Contact Us</a><a href="/about">About</a></body></html>`

		ex := goquery.NewLinkExtractor("Contact Us")
		records, err := ex.Extract(html, "https://example.org/")
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, webrows.Record{
			"domain": "example.org",
			"link":   "https://example.org/c",
			"text":   "Contact Us",
		}, records[0])
	})

	t.Run("matching is case-insensitive and whitespace-collapsed", func(t *testing.T) {
		t.Parallel()

		html := "<a href=\"/c\">  contact\n   US  </a>"

		ex := goquery.NewLinkExtractor("Contact Us")
		records, err := ex.Extract(html, "https://example.org/")
		require.NoError(t, err)

		require.Len(t, records, 1)
		// The text field keeps the original, non-normalized anchor text.
		assert.Equal(t, "  contact\n   US  ", records[0]["text"])
	})

	t.Run("search matches substrings of anchor text", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/p1">Show HN: My project</a><a href="/p2">Ask HN: A question</a>`

		ex := goquery.NewLinkExtractor("Show HN")
		records, err := ex.Extract(html, "https://news.ycombinator.com/news?p=1")
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, "https://news.ycombinator.com/p1", records[0]["link"])
	})

	t.Run("absolute hrefs keep their own domain", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://other.example.com/x">Contact Us</a>`

		ex := goquery.NewLinkExtractor("contact")
		records, err := ex.Extract(html, "https://example.org/")
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, "other.example.com", records[0]["domain"])
		assert.Equal(t, "https://other.example.com/x", records[0]["link"])
	})

	t.Run("anchors without href are skipped", func(t *testing.T) {
		t.Parallel()

		html := `<a name="top">Contact Us</a><a href="/c">Contact Us</a>`

		ex := goquery.NewLinkExtractor("contact us")
		records, err := ex.Extract(html, "https://example.org/")
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("records preserve document order", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/1">x one</a><a href="/2">x two</a><a href="/3">x three</a>`

		ex := goquery.NewLinkExtractor("x")
		records, err := ex.Extract(html, "https://example.org/")
		require.NoError(t, err)

		require.Len(t, records, 3)
		assert.Equal(t, "https://example.org/1", records[0]["link"])
		assert.Equal(t, "https://example.org/2", records[1]["link"])
		assert.Equal(t, "https://example.org/3", records[2]["link"])
	})

	t.Run("no matches yields zero records", func(t *testing.T) {
		t.Parallel()

		ex := goquery.NewLinkExtractor("missing")
		records, err := ex.Extract(`<a href="/c">Contact</a>`, "https://example.org/")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("canonical fields are stable", func(t *testing.T) {
		t.Parallel()

		ex := goquery.NewLinkExtractor("x")
		assert.Equal(t, []string{"domain", "link", "text"}, ex.Fields())
	})
}

func TestMediaURLs(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates preserving document order", func(t *testing.T) {
		t.Parallel()

		html := `<img src="/a.jpg"><img src="/b.jpg"><img src="/a.jpg">`
		urls := goquery.MediaURLs(html, "https://x.io/", "img[src]", "src")
		assert.Equal(t, []string{"https://x.io/a.jpg", "https://x.io/b.jpg"}, urls)
	})

	t.Run("skips elements without the attribute", func(t *testing.T) {
		t.Parallel()

		html := `<img alt="no src"><img src="/a.jpg">`
		urls := goquery.MediaURLs(html, "https://x.io/", "img", "src")
		assert.Equal(t, []string{"https://x.io/a.jpg"}, urls)
	})
}
