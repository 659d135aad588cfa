package webrows

import "context"

// Fetcher retrieves the decoded body of a URL.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body as text.
	// The body is decoded using the response's apparent character encoding.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// FetchResult holds the outcome of fetching a single URL. Exactly one
// FetchResult is produced per input URL. It is never mutated after creation;
// ownership passes to the extraction stage.
type FetchResult struct {
	// URL is the requested URL, as given in the input.
	URL string

	// Body is the decoded response body. Empty when Err is set.
	Body string

	// Hash is an xxhash digest of Body, hex-encoded. Empty when Err is set.
	Hash string

	// Err records why the fetch failed, or nil.
	Err error
}
