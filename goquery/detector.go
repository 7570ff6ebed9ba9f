package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
)

// Detector scores a page against one site archetype. Detectors are pure and
// stateless over (document, raw markup, origin URL); each returns a candidate
// classification with its own confidence, or nil when it has nothing to say.
//
// A detector attaches selector rules only once its confidence reaches the
// detector's own threshold. Below the threshold the candidate still competes
// on confidence but carries no rules, so weak evidence never pins
// archetype-specific extraction rules to a page.
type Detector func(doc *goquery.Document, rawHTML, originURL string) *rssos.Classification

// Per-detector thresholds below which no selector rules are attached.
// Tunable; values chosen against a corpus of real sites.
const (
	BlogRuleThreshold       = 30
	NewsRuleThreshold       = 30
	PortfolioRuleThreshold  = 35
	EcommerceRuleThreshold  = 35
	RepositoryRuleThreshold = 35
)

// GenericConfidence is the fixed confidence of the catch-all detector.
const GenericConfidence = 10

// score accumulates weighted signals for one detector run. Features are
// appended in check order, which keeps the audit trail deterministic.
type score struct {
	confidence int
	features   []string
}

func (s *score) add(points int, feature string) {
	s.confidence += points
	s.features = append(s.features, feature)
}

// clamped returns the confidence capped to the [0,100] range.
func (s *score) clamped() int {
	if s.confidence > 100 {
		return 100
	}
	if s.confidence < 0 {
		return 0
	}
	return s.confidence
}

// result assembles a classification from the accumulated score, attaching
// rules only at or above the threshold.
func (s *score) result(originURL string, archetype rssos.Archetype, platform string, threshold int, rules rssos.SelectorRules) *rssos.Classification {
	c := &rssos.Classification{
		OriginURL:       originURL,
		Archetype:       archetype,
		Platform:        platform,
		Confidence:      s.clamped(),
		MatchedFeatures: s.features,
	}
	if s.confidence >= threshold {
		c.Rules = rules.Clone()
	}
	return c
}

// metaGenerator returns the lower-cased content of the page's generator meta
// tag, empty when absent.
func metaGenerator(doc *goquery.Document) string {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})
	return generator
}

// metaProperty returns the lower-cased content of an Open Graph style meta
// property, empty when absent.
func metaProperty(doc *goquery.Document, property string) string {
	value := ""
	doc.Find("meta[property='" + property + "']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			value = strings.ToLower(content)
		}
	})
	return value
}

// hasSelector checks if the document contains at least one element matching
// the selector.
func hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
