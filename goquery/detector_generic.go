package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
)

// genericRules are the maximally generic selector rules used by the fallback
// detector and by the generic extraction strategy.
var genericRules = rssos.SelectorRules{
	rssos.RoleArticles: "article, .post, .entry, .item, section, li",
	rssos.RoleTitle:    "h1, h2, h3, .title",
	rssos.RoleContent:  "p, .content, .description",
	rssos.RoleLink:     "a[href]",
	rssos.RoleDate:     "time",
	rssos.RoleImage:    "img",
}

// GenericRules returns a copy of the generic selector rule set.
func GenericRules() rssos.SelectorRules {
	return genericRules.Clone()
}

// DetectGeneric is the catch-all detector. It always matches with the lowest
// fixed confidence and supplies generic selector rules, guaranteeing every
// classification request produces a usable result.
func DetectGeneric(_ *goquery.Document, _, originURL string) *rssos.Classification {
	return &rssos.Classification{
		OriginURL:       originURL,
		Archetype:       rssos.ArchetypeUnknown,
		Platform:        rssos.PlatformUnknown,
		Confidence:      GenericConfidence,
		Rules:           genericRules.Clone(),
		MatchedFeatures: []string{"generic-fallback"},
	}
}
