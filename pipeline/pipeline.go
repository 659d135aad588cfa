// Package pipeline runs the fetch-extract-project-emit pipeline shared by
// every handler: fetch N URLs concurrently, parse each body with a
// format-specific extractor, project the requested properties, and hand the
// resulting rows to a writer in input-URL order.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/fetch"
)

// Pipeline wires a fetcher to an extractor and a row writer.
//
// Under the tolerant policy a per-URL fetch or parse failure contributes
// zero records and the batch continues; under the strict policy the first
// failure aborts the run and the writer is left unclosed so the caller can
// discard partial output.
type Pipeline struct {
	Fetcher     webrows.Fetcher
	Concurrency int
	RetryDelays []time.Duration
	Tolerant    bool
	Logger      fetch.LogFunc
}

// Run fetches urls, extracts records with ex, projects the requested
// properties, and writes rows to w. The header row (the resolved property
// names) is written first when opts.Headers is set; opts.Limit caps the
// number of data rows across all URLs.
//
// Output row order is input URL order, then the extractor's natural record
// order within a URL, regardless of fetch completion order.
func (p *Pipeline) Run(ctx context.Context, urls []string, ex webrows.Extractor, properties []string, opts webrows.Options, w webrows.RowWriter) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	requested := webrows.NormalizeProperties(properties)

	// A wildcard request resolves against the extractor's canonical field
	// list. For content-derived schemas (CSV) that list is only known after
	// the first successful parse, so resolution is deferred until then.
	var props []string
	headerWritten := false
	if !webrows.IsWildcard(requested) {
		props = requested
	}

	if err := w.Open(); err != nil {
		return err
	}

	writeHeader := func() error {
		if headerWritten || !opts.Headers {
			headerWritten = true
			return nil
		}
		headerWritten = true
		return w.WriteRow(webrows.Header(props))
	}

	orch := &fetch.Orchestrator{
		Fetcher:     p.Fetcher,
		Concurrency: p.Concurrency,
		RetryDelays: p.RetryDelays,
		Logger:      p.Logger,
	}

	rows := 0
	stream := orch.FetchStream(ctx, urls)
	defer func() {
		// Abandon in-flight fetches and drain the stream so no goroutine
		// is left blocked.
		cancel()
		for range stream {
		}
	}()

	for res := range stream {
		if res.Err != nil {
			if p.Tolerant {
				if p.Logger != nil {
					p.Logger("  skip %s: %v", res.URL, res.Err)
				}
				continue
			}
			return fmt.Errorf("fetch %s: %w", res.URL, res.Err)
		}

		records, err := ex.Extract(res.Body, res.URL)
		if err != nil {
			if p.Tolerant {
				if p.Logger != nil {
					p.Logger("  skip %s: %v", res.URL, err)
				}
				continue
			}
			return fmt.Errorf("extract %s: %w", res.URL, err)
		}

		// First successful parse fixes the wildcard expansion.
		if props == nil {
			props = webrows.ResolveProperties(requested, ex.Fields())
		}
		if err := writeHeader(); err != nil {
			return err
		}

		for _, rec := range records {
			if opts.Limit > 0 && rows >= opts.Limit {
				break
			}
			if err := w.WriteRow(webrows.Project(rec, props)); err != nil {
				return err
			}
			rows++
		}

		if opts.Limit > 0 && rows >= opts.Limit {
			break
		}
	}

	// All URLs failed (or produced nothing) before the wildcard resolved;
	// the header still leads the (otherwise empty) output.
	if props == nil {
		props = webrows.ResolveProperties(requested, ex.Fields())
	}
	if err := writeHeader(); err != nil {
		return err
	}

	return w.Close()
}
