package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
)

// Ensure Classifier implements rssos.Classifier at compile time.
var _ rssos.Classifier = (*Classifier)(nil)

// Classifier runs an ordered chain of archetype detectors and keeps the
// highest-confidence candidate. A candidate replaces the running best only
// on strictly greater confidence, so ties go to the earlier-registered
// detector.
type Classifier struct {
	detectors []Detector
}

// NewClassifier creates a Classifier with the default detector chain. The
// generic detector is registered last and always matches, so classification
// never fails.
func NewClassifier() *Classifier {
	return &Classifier{
		detectors: []Detector{
			DetectBlog,
			DetectNews,
			DetectPortfolio,
			DetectEcommerce,
			DetectRepository,
			DetectGeneric,
		},
	}
}

// NewClassifierWithDetectors creates a Classifier with a custom chain.
// Callers are responsible for ending the chain with a catch-all detector.
func NewClassifierWithDetectors(detectors ...Detector) *Classifier {
	return &Classifier{detectors: detectors}
}

// Classify analyzes HTML and returns the best-matching archetype with
// extraction rules. When the winning detector's confidence was below its
// rule threshold the generic rules are merged in, so the result always
// carries a non-empty rule set.
func (c *Classifier) Classify(html string, originURL string) *rssos.Classification {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return DetectGeneric(nil, html, originURL)
	}

	var best *rssos.Classification
	for _, detect := range c.detectors {
		candidate := detect(doc, html, originURL)
		if candidate == nil {
			continue
		}
		if best == nil || candidate.Confidence > best.Confidence {
			best = candidate
		}
	}

	if best == nil {
		best = DetectGeneric(doc, html, originURL)
	}
	if len(best.Rules) == 0 {
		best.Rules = genericRules.Clone()
	}
	return best
}
