package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/chemark/rssos"
	"github.com/chemark/rssos/gocache"
	rssosquery "github.com/chemark/rssos/goquery"
	rssoshttp "github.com/chemark/rssos/http"
	"github.com/chemark/rssos/pipeline"
	"github.com/chemark/rssos/rss"
	rssosslog "github.com/chemark/rssos/slog"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rssos"),
		kong.Description("Turn any web page into an RSS feed."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rssos --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if !cli.Verbose {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := rssos.Fetcher(rssoshttp.NewRateLimitedFetcher(rssoshttp.NewFetcher(), cli.Rate))
	fetcher = rssosslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	classifier := rssosslog.NewLoggingClassifier(rssosquery.NewClassifier(), logger)
	extractor := rssosslog.NewLoggingExtractor(
		rssosquery.NewExtractor(rssosquery.WithFetcher(fetcher)), logger)

	deps.Fetcher = fetcher
	deps.Classifier = classifier
	deps.Extractor = extractor
	deps.Pipeline = &pipeline.Pipeline{
		Fetcher:    fetcher,
		Classifier: classifier,
		Extractor:  extractor,
		Writer:     rss.NewWriter(),
		Caches:     gocache.NewCaches(),
		Logger:     logger,
		Timeout:    time.Duration(cli.Timeout) * time.Second,
	}

	return kongCtx.Run(deps)
}
