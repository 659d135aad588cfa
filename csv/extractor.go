// Package csv extracts records from comma-delimited files using
// encoding/csv.
package csv

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/webrows"
)

// Ensure Extractor implements webrows.Extractor at compile time.
var _ webrows.Extractor = (*Extractor)(nil)

// Extractor turns each data row of a CSV file into one record, keyed by the
// file's own header row (names trimmed and lower-cased so property matching
// is case-insensitive).
//
// The batch-wide schema is the header of the first successfully parsed URL:
// Fields returns nil until the first Extract succeeds and that first header
// afterwards, for the lifetime of the extractor. Create one Extractor per
// invocation; it is not safe for concurrent use, and the pipeline extracts
// sequentially in input order.
type Extractor struct {
	schema []string
}

// NewExtractor creates an Extractor with no schema fixed yet.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses body as a CSV file. The first row is the header; every
// following row becomes one record. An optional UTF-8 byte-order mark is
// stripped. An empty body yields zero records.
func (e *Extractor) Extract(body string, sourceURL string) ([]webrows.Record, error) {
	body = strings.TrimPrefix(body, "\uFEFF")

	r := csv.NewReader(strings.NewReader(body))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, webrows.Errorf(webrows.EUNPROCESSABLE, "invalid CSV header: %v", err)
	}

	fields := make([]string, len(header))
	for i, name := range header {
		fields[i] = strings.ToLower(strings.TrimSpace(name))
	}

	var records []webrows.Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, webrows.Errorf(webrows.EUNPROCESSABLE, "invalid CSV row: %v", err)
		}

		rec := make(webrows.Record, len(fields))
		for i, name := range fields {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}

	// The first successful parse fixes the batch schema.
	if e.schema == nil {
		e.schema = fields
	}

	return records, nil
}

// Fields returns the batch schema: the header of the first successfully
// parsed URL, or nil before any URL has parsed.
func (e *Extractor) Fields() []string {
	return e.schema
}
