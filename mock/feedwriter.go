package mock

import "github.com/chemark/rssos"

var _ rssos.FeedWriter = (*FeedWriter)(nil)

// FeedWriter is a mock implementation of rssos.FeedWriter.
type FeedWriter struct {
	WriteFn func(records []*rssos.Record, meta rssos.SiteMeta) (string, error)
}

func (w *FeedWriter) Write(records []*rssos.Record, meta rssos.SiteMeta) (string, error) {
	return w.WriteFn(records, meta)
}
