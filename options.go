package webrows

import (
	"net/url"
	"strconv"
)

// DefaultLimit caps the total number of emitted data rows across all URLs
// when no limit option is given.
const DefaultLimit = 10000

// Options holds the recognized entries of the free-form config parameter.
type Options struct {
	// Limit caps the total number of data rows emitted across all URLs.
	// A non-positive value means no cap; ParseOptions never produces one.
	Limit int

	// Headers controls whether the property-name row is emitted first.
	Headers bool
}

// DefaultOptions returns the option defaults.
func DefaultOptions() Options {
	return Options{Limit: DefaultLimit, Headers: true}
}

// ParseOptions parses a query-string-style config parameter
// (e.g. "limit=100&headers=false"). Unrecognized options are ignored.
func ParseOptions(config string) (Options, error) {
	opts := DefaultOptions()
	if config == "" {
		return opts, nil
	}

	values, err := url.ParseQuery(config)
	if err != nil {
		return opts, Errorf(EINVALID, "invalid config parameter: %v", err)
	}

	if s := values.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 {
			return opts, Errorf(EINVALID, "invalid limit option %q", s)
		}
		opts.Limit = limit
	}

	if s := values.Get("headers"); s != "" {
		headers, err := strconv.ParseBool(s)
		if err != nil {
			return opts, Errorf(EINVALID, "invalid headers option %q", s)
		}
		opts.Headers = headers
	}

	return opts, nil
}
