package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/fs"
	"github.com/fwojciec/webrows/handler"
	webhttp "github.com/fwojciec/webrows/http"
	webslog "github.com/fwojciec/webrows/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	// Used by end-to-end tests.
	Fetcher webrows.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webrows"),
		kong.Description("Fetch remote documents and emit extracted rows as JSON."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webrows --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = webhttp.NewFetcher(webhttp.WithTimeout(cli.Timeout))
	}
	if cli.Verbose {
		fetcher = webslog.NewLoggingFetcher(fetcher, logger)
	}
	defer fetcher.Close()

	var out io.Writer = stdout
	var output *fs.Output
	if cli.Output != "" {
		output, err = fs.CreateOutput(cli.Output)
		if err != nil {
			return err
		}
		out = output
	}

	deps := &Dependencies{
		Ctx: ctx,
		Out: out,
		Config: handler.Config{
			Fetcher:     fetcher,
			Concurrency: cli.Concurrency,
			Logger:      logger,
		},
	}

	if err := kongCtx.Run(deps); err != nil {
		if output != nil {
			_ = output.Discard()
		}
		return err
	}
	if output != nil {
		return output.Commit()
	}
	return nil
}
