// Package fetch provides the concurrent fetch orchestrator. It fans one
// in-flight request out per input URL (bounded by a concurrency cap), fans
// the results back in, and yields exactly one webrows.FetchResult per URL in
// input order regardless of completion order.
package fetch

import (
	"context"
	"time"

	"github.com/fwojciec/webrows"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds in-flight requests when none is configured.
const DefaultConcurrency = 10

// Orchestrator issues concurrent HTTP fetches for a list of URLs.
// Per-URL failures do not abort the batch: the failed URL's FetchResult
// carries the error and an empty body.
type Orchestrator struct {
	Fetcher     webrows.Fetcher
	Concurrency int
	RetryDelays []time.Duration
	Logger      LogFunc
}

// indexedResult pairs a FetchResult with its input position so the stream
// can be reassembled in order.
type indexedResult struct {
	pos int
	res webrows.FetchResult
}

// FetchAll fetches every URL concurrently and returns one result per URL,
// in input order.
func (o *Orchestrator) FetchAll(ctx context.Context, urls []string) []webrows.FetchResult {
	results := make([]webrows.FetchResult, 0, len(urls))
	for res := range o.FetchStream(ctx, urls) {
		results = append(results, res)
	}
	return results
}

// FetchStream fetches every URL concurrently and sends results on the
// returned channel in input order. Completed-but-out-of-order results are
// buffered until their predecessors are ready, so downstream consumers can
// start extracting as soon as the first URL's fetch completes. The channel
// is closed after the last result; if the context is canceled the stream
// ends early.
func (o *Orchestrator) FetchStream(ctx context.Context, urls []string) <-chan webrows.FetchResult {
	out := make(chan webrows.FetchResult)

	concurrency := o.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan indexedResult, len(urls))

	// Fan out workers
	go func() {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i, url := range urls {
			i, url := i, url
			g.Go(func() error {
				resultCh <- indexedResult{pos: i, res: o.fetchOne(gctx, url)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Fan in, reassembling input order
	go func() {
		defer close(out)

		pending := make(map[int]webrows.FetchResult, len(urls))
		next := 0
		for ir := range resultCh {
			pending[ir.pos] = ir.res
			for {
				res, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
				next++
			}
		}
	}()

	return out
}

// fetchOne fetches a single URL with transient-status retry and computes the
// content hash of the body.
func (o *Orchestrator) fetchOne(ctx context.Context, url string) webrows.FetchResult {
	delays := o.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	body, err := FetchWithRetryDelays(ctx, url, o.Fetcher.Fetch, o.Logger, delays)
	if err != nil {
		return webrows.FetchResult{URL: url, Err: err}
	}

	return webrows.FetchResult{URL: url, Body: body, Hash: ComputeHash(body)}
}
