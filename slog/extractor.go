package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/chemark/rssos"
)

// Ensure LoggingExtractor implements rssos.Extractor.
var _ rssos.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging for record counts and
// duration.
type LoggingExtractor struct {
	next   rssos.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next rssos.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, html string, c *rssos.Classification) ([]*rssos.Record, error) {
	begin := time.Now()
	records, err := e.next.Extract(ctx, html, c)
	if err != nil {
		e.logger.Error("extract",
			"url", c.OriginURL,
			"archetype", string(c.Archetype),
			"err", err,
			"duration", time.Since(begin),
		)
		return records, err
	}
	e.logger.Info("extract",
		"url", c.OriginURL,
		"archetype", string(c.Archetype),
		"records", len(records),
		"duration", time.Since(begin),
	)
	return records, nil
}
