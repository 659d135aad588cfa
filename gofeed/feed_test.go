package gofeed_test

import (
	"testing"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example News</title>
    <link>https://example.com/</link>
    <item>
      <title>First Item</title>
      <author>ann@example.com (Ann)</author>
      <link>https://example.com/1</link>
      <pubDate>Mon, 01 Apr 2019 12:30:00 GMT</pubDate>
      <description>First description</description>
    </item>
    <item>
      <title>Second Item</title>
      <link>https://example.com/2</link>
      <description>Second description</description>
    </item>
  </channel>
</rss>`

const atomBody = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Example</title>
  <link href="https://example.org/"/>
  <entry>
    <title>Atom Entry</title>
    <link href="https://example.org/entry"/>
    <author><name>Bob</name></author>
    <updated>2019-04-01T12:30:00Z</updated>
    <summary>Entry summary</summary>
  </entry>
</feed>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("each entry becomes one record with channel fields repeated", func(t *testing.T) {
		t.Parallel()

		ex := gofeed.NewExtractor()
		records, err := ex.Extract(rssBody, "https://example.com/rss")
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "Example News", records[0]["channel_title"])
		assert.Equal(t, "Example News", records[1]["channel_title"])
		assert.Equal(t, "https://example.com/", records[0]["channel_link"])
		assert.Equal(t, "First Item", records[0]["item_title"])
		assert.Equal(t, "https://example.com/1", records[0]["item_link"])
		assert.Equal(t, "First description", records[0]["item_description"])
	})

	t.Run("publish dates format as YYYY-MM-DD HH:MM:SS", func(t *testing.T) {
		t.Parallel()

		ex := gofeed.NewExtractor()
		records, err := ex.Extract(rssBody, "https://example.com/rss")
		require.NoError(t, err)

		assert.Equal(t, "2019-04-01 12:30:00", records[0]["item_published"])
	})

	t.Run("missing publish date renders empty", func(t *testing.T) {
		t.Parallel()

		ex := gofeed.NewExtractor()
		records, err := ex.Extract(rssBody, "https://example.com/rss")
		require.NoError(t, err)

		assert.Equal(t, "", records[1]["item_published"])
	})

	t.Run("parses Atom feeds", func(t *testing.T) {
		t.Parallel()

		ex := gofeed.NewExtractor()
		records, err := ex.Extract(atomBody, "https://example.org/feed")
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, "Atom Example", records[0]["channel_title"])
		assert.Equal(t, "Atom Entry", records[0]["item_title"])
		assert.Equal(t, "Bob", records[0]["item_author"])
	})

	t.Run("invalid XML fails with EUNPROCESSABLE", func(t *testing.T) {
		t.Parallel()

		ex := gofeed.NewExtractor()
		_, err := ex.Extract("<invalid><tag>", "https://example.com/rss")
		require.Error(t, err)
		assert.Equal(t, webrows.EUNPROCESSABLE, webrows.ErrorCode(err))
	})

	t.Run("canonical fields are stable", func(t *testing.T) {
		t.Parallel()

		ex := gofeed.NewExtractor()
		assert.Equal(t, []string{
			"channel_title", "channel_link", "item_title", "item_author",
			"item_link", "item_published", "item_description",
		}, ex.Fields())
	})
}
