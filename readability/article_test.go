package readability_test

import (
	"testing"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/readability"
	"github.com/fwojciec/webrows/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements webrows.Extractor at compile time.
var _ webrows.Extractor = (*readability.Extractor)(nil)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>A Notable Event</title></head>
<body>
<article>
<h1>A Notable Event</h1>
<p>Something happened today that is worth several paragraphs of coverage.
The report goes into considerable detail about what happened and why it
matters to readers following the story over several days.</p>
<p>A second paragraph continues the coverage with additional background
and context gathered from multiple sources close to the matter.</p>
</article>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("produces exactly one record", func(t *testing.T) {
		t.Parallel()

		ex := readability.NewExtractor()
		records, err := ex.Extract(articleHTML, "https://example.com/news/event")
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.NotEmpty(t, records[0]["title"])
		assert.Contains(t, records[0]["text"], "worth several paragraphs")
	})

	t.Run("empty input fails", func(t *testing.T) {
		t.Parallel()

		ex := readability.NewExtractor()
		_, err := ex.Extract("", "https://example.com/")
		require.Error(t, err)
		assert.Equal(t, webrows.EUNPROCESSABLE, webrows.ErrorCode(err))
	})

	t.Run("field list matches the trafilatura engine", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, trafilatura.NewExtractor().Fields(), readability.NewExtractor().Fields())
	})
}
