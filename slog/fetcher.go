package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/chemark/rssos"
)

// Ensure LoggingFetcher implements rssos.Fetcher.
var _ rssos.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging for bytes fetched and
// duration.
type LoggingFetcher struct {
	next   rssos.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next rssos.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"err", err,
			"duration", time.Since(begin),
		)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(body),
		"duration", time.Since(begin),
	)
	return body, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
