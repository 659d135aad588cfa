package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/webrows/handler"
	"github.com/fwojciec/webrows/readability"
	"github.com/fwojciec/webrows/trafilatura"
)

// Dependencies holds the shared collaborators for command execution.
type Dependencies struct {
	Ctx    context.Context
	Out    io.Writer
	Config handler.Config
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Csv     CsvCmd     `cmd:"" help:"Emit the rows of one or more remote CSV files"`
	Links   LinksCmd   `cmd:"" help:"Emit the anchors on pages whose text contains a search string"`
	Article ArticleCmd `cmd:"" help:"Emit the extracted article of a single page"`
	Feed    FeedCmd    `cmd:"" help:"Emit the items of one or more RSS/Atom feeds"`

	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	Timeout     time.Duration `default:"10s" help:"Per-request timeout"`
	Output      string        `short:"o" placeholder:"FILE" help:"Write output to FILE instead of stdout"`
	Verbose     bool          `short:"v" help:"Log fetches and skipped URLs to stderr"`
}

// CsvCmd is the "csv" subcommand.
type CsvCmd struct {
	URLs []string `arg:"" help:"CSV file URLs"`
}

// Run executes the csv command.
func (c *CsvCmd) Run(deps *Dependencies) error {
	h := &handler.CSV{Config: deps.Config}
	return h.Handle(deps.Ctx, payload(completeSchemes(c.URLs)), deps.Out)
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	Search     string   `arg:"" help:"Anchor text to search for (case-insensitive substring)"`
	URLs       []string `arg:"" help:"Page URLs"`
	Properties []string `short:"p" default:"*" help:"Properties to emit (domain, link, text)"`
	Strict     bool     `help:"Abort on the first failed URL instead of skipping it"`
}

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	h := &handler.Links{Config: deps.Config, Strict: c.Strict}
	return h.Handle(deps.Ctx, payload(completeSchemes(c.URLs), c.Search, c.Properties), deps.Out)
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL        string   `arg:"" help:"Article URL"`
	Properties []string `short:"p" default:"title" help:"Properties to emit (title, authors, publish_date, text, top_image, images, movies)"`
	Engine     string   `default:"trafilatura" enum:"trafilatura,readability" help:"Article extraction engine"`
}

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	h := &handler.Article{Config: deps.Config}
	if c.Engine == "readability" {
		h.Extractor = readability.NewExtractor()
	} else {
		h.Extractor = trafilatura.NewExtractor()
	}
	return h.Handle(deps.Ctx, payload(completeScheme(c.URL), c.Properties), deps.Out)
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	URLs       []string `arg:"" help:"Feed URLs"`
	Properties []string `short:"p" default:"*" help:"Properties to emit"`
	Limit      int      `default:"10000" help:"Cap on emitted rows across all feeds"`
	Headers    bool     `default:"true" negatable:"" help:"Emit the property-name header row first"`
}

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	h := &handler.Feed{Config: deps.Config}
	config := fmt.Sprintf("limit=%d&headers=%t", c.Limit, c.Headers)
	return h.Handle(deps.Ctx, payload(completeSchemes(c.URLs), c.Properties, config), deps.Out)
}

// payload marshals command arguments into the positional array form the
// handlers accept.
func payload(elems ...any) []byte {
	b, err := json.Marshal(elems)
	if err != nil {
		panic(err) // the element types above always marshal
	}
	return b
}

// completeScheme prefixes https:// when the URL carries no scheme, so
// "example.com/data.csv" works as a command argument.
func completeScheme(url string) string {
	if strings.Contains(url, "://") {
		return url
	}
	return "https://" + url
}

func completeSchemes(urls []string) []string {
	out := make([]string, len(urls))
	for i, u := range urls {
		out[i] = completeScheme(u)
	}
	return out
}
