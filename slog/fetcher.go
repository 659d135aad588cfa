// Package slog provides logging decorators for webrows interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webrows"
)

// Ensure LoggingFetcher implements webrows.Fetcher.
var _ webrows.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of each fetch.
type LoggingFetcher struct {
	next   webrows.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webrows.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)
	duration := time.Since(begin)
	if err != nil {
		f.logger.Error("fetch",
			slog.String("url", url),
			slog.Duration("duration", duration),
			slog.Any("err", err),
		)
		return "", err
	}
	f.logger.Info("fetch",
		slog.String("url", url),
		slog.Int("bytes", len(body)),
		slog.Duration("duration", duration),
	)
	return body, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
