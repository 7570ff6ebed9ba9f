package mock

import (
	"context"

	"github.com/chemark/rssos"
)

var _ rssos.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of rssos.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, html string, c *rssos.Classification) ([]*rssos.Record, error)
}

func (e *Extractor) Extract(ctx context.Context, html string, c *rssos.Classification) ([]*rssos.Record, error) {
	return e.ExtractFn(ctx, html, c)
}
