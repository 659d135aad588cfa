package webrows

// Record is one structured item extracted from a fetched resource: a CSV
// row, a matching anchor, an article, or a feed entry. Keys are field names;
// values are strings except where a format produces a time.Time (encoded as
// ISO-8601 on output). A missing key renders as the empty string when
// projected.
type Record map[string]any

// Extractor turns the body of one fetched resource into zero or more
// records. Implementations are per-format (CSV rows, anchor links, article
// content, feed entries).
type Extractor interface {
	// Extract parses body and returns the records it contains, in the
	// format's natural order. sourceURL is the URL the body was fetched
	// from; it is used to resolve relative links.
	Extract(body string, sourceURL string) ([]Record, error)

	// Fields returns the canonical field list in its declared order.
	// A wildcard property request expands to exactly this list.
	//
	// Implementations whose field set depends on content (CSV) return nil
	// until the first successful Extract has fixed the batch schema.
	Fields() []string
}
