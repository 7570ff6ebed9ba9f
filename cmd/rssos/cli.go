package main

import (
	"context"
	"io"

	"github.com/chemark/rssos"
	"github.com/chemark/rssos/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Classifier rssos.Classifier
	Extractor  rssos.Extractor
	Fetcher    rssos.Fetcher
	Pipeline   *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Feed     FeedCmd     `cmd:"" help:"Fetch a page and print its generated RSS feed"`
	Classify ClassifyCmd `cmd:"" help:"Fetch a page and print its classification"`

	Verbose bool    `short:"v" help:"Enable debug logging"`
	Timeout int     `default:"30" help:"Overall request timeout in seconds"`
	Rate    float64 `default:"2" help:"Per-host fetch rate limit (requests/second)"`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	URL string `arg:"" help:"Page URL to convert into a feed"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	URL string `arg:"" help:"Page URL to classify"`
}
