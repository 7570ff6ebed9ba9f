package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
)

// portfolioRules are the selector rules attached by the portfolio detector.
var portfolioRules = rssos.SelectorRules{
	rssos.RoleArticles: ".project, .portfolio-item, .work-item, .case-study, .grid-item",
	rssos.RoleTitle:    ".project-title, h2, h3",
	rssos.RoleContent:  ".project-description, .case-study-summary, p",
	rssos.RoleLink:     "a[href]",
	rssos.RoleImage:    "img",
}

// dataURLPattern matches a JSON resource URL embedded in raw markup. Builder
// platforms reference their page data this way instead of rendering static
// article markup.
var dataURLPattern = regexp.MustCompile(`["'](/[^"']*\.json[^"']*|https?://[^"']+\.json[^"']*)["']`)

// DetectPortfolio scores a page as a portfolio/showcase site: site-builder
// platform markers, work/project navigation, project grid markup, and an
// embedded JSON data payload.
func DetectPortfolio(doc *goquery.Document, rawHTML, originURL string) *rssos.Classification {
	var s score
	platform := rssos.PlatformUnknown

	generator := metaGenerator(doc)
	switch {
	case strings.Contains(generator, "framer") || strings.Contains(rawHTML, "framerusercontent"):
		platform = rssos.PlatformFramer
		s.add(30, "platform:framer")
	case strings.Contains(generator, "webflow") || strings.Contains(rawHTML, "data-wf-site"):
		platform = rssos.PlatformWebflow
		s.add(30, "platform:webflow")
	}

	if hasPortfolioNav(doc) {
		s.add(15, "nav:portfolio")
	}

	if hasSelector(doc, ".project, .portfolio-item, .work-item, .case-study") {
		s.add(15, "project-grid")
	}

	if dataURLPattern.MatchString(rawHTML) {
		s.add(20, "embedded-data")
	}

	if s.confidence == 0 {
		return nil
	}
	return s.result(originURL, rssos.ArchetypePortfolio, platform, PortfolioRuleThreshold, portfolioRules)
}

// hasPortfolioNav reports whether navigation anchors use portfolio
// vocabulary ("work", "projects", "portfolio").
func hasPortfolioNav(doc *goquery.Document) bool {
	found := false
	doc.Find("nav a, header a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		switch text {
		case "work", "projects", "portfolio", "case studies":
			found = true
			return false
		}
		return true
	})
	return found
}

// FindDataURL returns the first JSON resource URL referenced in the raw
// markup, resolved against the origin, or "" when none is present.
func FindDataURL(rawHTML, originURL string) string {
	m := dataURLPattern.FindStringSubmatch(rawHTML)
	if m == nil {
		return ""
	}
	return rssos.ResolveURL(originURL, m[1])
}
