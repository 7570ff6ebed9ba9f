// Package slog provides logging decorators for rssos domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/chemark/rssos"
)

// Ensure LoggingClassifier implements rssos.Classifier.
var _ rssos.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging for the chosen
// archetype and its matched features.
type LoggingClassifier struct {
	next   rssos.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next rssos.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the outcome.
func (c *LoggingClassifier) Classify(html string, originURL string) *rssos.Classification {
	begin := time.Now()
	result := c.next.Classify(html, originURL)
	c.logger.Info("classify",
		"url", originURL,
		"archetype", string(result.Archetype),
		"platform", result.Platform,
		"confidence", result.Confidence,
		"features", result.MatchedFeatures,
		"duration", time.Since(begin),
	)
	return result
}
