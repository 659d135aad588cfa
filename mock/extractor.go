package mock

import "github.com/fwojciec/webrows"

var _ webrows.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webrows.Extractor.
type Extractor struct {
	ExtractFn func(body string, sourceURL string) ([]webrows.Record, error)
	FieldsFn  func() []string
}

func (e *Extractor) Extract(body string, sourceURL string) ([]webrows.Record, error) {
	return e.ExtractFn(body, sourceURL)
}

func (e *Extractor) Fields() []string {
	return e.FieldsFn()
}
