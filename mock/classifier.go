package mock

import "github.com/chemark/rssos"

var _ rssos.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of rssos.Classifier.
type Classifier struct {
	ClassifyFn func(html string, originURL string) *rssos.Classification
}

func (c *Classifier) Classify(html string, originURL string) *rssos.Classification {
	return c.ClassifyFn(html, originURL)
}
