// Package handler implements the four handlers of the family: csv, links,
// article, and feed. Each handler accepts a positional JSON array payload,
// runs the shared fetch-extract-project pipeline, and emits a JSON array of
// arrays to its output writer.
package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/fetch"
	"github.com/fwojciec/webrows/pipeline"
)

// ContentType is the media type of every handler's output body.
const ContentType = "application/json"

// Handler processes one invocation payload and writes the response body to
// out. Tolerant handlers stream as they go, so out may hold partial output
// after an error; strict handlers write nothing on failure.
type Handler interface {
	Handle(ctx context.Context, payload []byte, out io.Writer) error
}

// Config carries the collaborators shared by every handler.
type Config struct {
	Fetcher     webrows.Fetcher
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// logger returns the configured logger tagged with a fresh invocation ID,
// or a discarding logger when none is configured.
func (c Config) logger() *slog.Logger {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger.With(slog.String("invocation", uuid.NewString()))
}

// pipeline assembles the shared pipeline for one invocation.
func (c Config) pipeline(tolerant bool, logger *slog.Logger) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Fetcher:     c.Fetcher,
		Concurrency: c.Concurrency,
		RetryDelays: c.RetryDelays,
		Tolerant:    tolerant,
		Logger:      debugf(logger),
	}
}

func debugf(logger *slog.Logger) fetch.LogFunc {
	return func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}
}

// failure logs err with its full detail and collapses it to the coarse
// failure signal promised at the boundary. Invalid-input errors pass
// through unchanged so callers can tell bad input from a failed run.
func failure(logger *slog.Logger, err error) error {
	if webrows.ErrorCode(err) == webrows.EINVALID {
		return err
	}
	logger.Error("handler failed", slog.Any("err", err))
	return webrows.Errorf(webrows.EINTERNAL, "Handler failed.")
}
