// Package gofeed extracts items from RSS and Atom feeds using
// github.com/mmcdole/gofeed.
package gofeed

import (
	"github.com/fwojciec/webrows"
	"github.com/mmcdole/gofeed"
)

// publishedLayout is the output format for item publish timestamps.
const publishedLayout = "2006-01-02 15:04:05"

// Canonical field order for feed records.
var feedFields = []string{
	"channel_title",
	"channel_link",
	"item_title",
	"item_author",
	"item_link",
	"item_published",
	"item_description",
}

// Ensure Extractor implements webrows.Extractor at compile time.
var _ webrows.Extractor = (*Extractor)(nil)

// Extractor turns each feed entry into one record. Channel-level fields are
// repeated on every item record from that feed.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses body as an RSS or Atom feed and returns one record per
// item, in feed order. An unparsable publish date renders as an empty
// string.
func (e *Extractor) Extract(body string, sourceURL string) ([]webrows.Record, error) {
	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, webrows.Errorf(webrows.EUNPROCESSABLE, "failed to parse feed: %v", err)
	}

	records := make([]webrows.Record, 0, len(feed.Items))
	for _, item := range feed.Items {
		published := ""
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.Format(publishedLayout)
		}

		records = append(records, webrows.Record{
			"channel_title":    feed.Title,
			"channel_link":     feed.Link,
			"item_title":       item.Title,
			"item_author":      itemAuthor(item),
			"item_link":        item.Link,
			"item_published":   published,
			"item_description": item.Description,
		})
	}

	return records, nil
}

// Fields returns the canonical feed field list.
func (e *Extractor) Fields() []string {
	out := make([]string, len(feedFields))
	copy(out, feedFields)
	return out
}

func itemAuthor(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		return item.Authors[0].Name
	}
	return ""
}
