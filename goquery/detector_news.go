package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
)

// newsRules are the selector rules attached by the news detector.
var newsRules = rssos.SelectorRules{
	rssos.RoleArticles: "article, .story, .news-item, .teaser",
	rssos.RoleTitle:    ".headline, .story-title, h2, h3",
	rssos.RoleContent:  ".story-body, .article-body, .teaser-text, p",
	rssos.RoleLink:     "a[href]",
	rssos.RoleDate:     "time, .timestamp, .date",
	rssos.RoleAuthor:   ".byline, .author",
	rssos.RoleImage:    "img",
	rssos.RoleSummary:  ".standfirst, .summary, .dek",
}

// DetectNews scores a page as a news site: structured-data article markers,
// a dense set of article nodes, and newsroom vocabulary in classes and URLs.
func DetectNews(doc *goquery.Document, rawHTML, originURL string) *rssos.Classification {
	var s score

	if strings.Contains(rawHTML, "\"NewsArticle\"") || strings.Contains(rawHTML, "'NewsArticle'") {
		s.add(25, "jsonld:newsarticle")
	}

	if metaProperty(doc, "og:type") == "article" {
		s.add(15, "og:article")
	}

	lowered := strings.ToLower(originURL)
	if strings.Contains(lowered, "news") {
		s.add(20, "url:news")
	}

	if doc.Find("article").Length() >= 4 {
		s.add(20, "article-density")
	}

	if hasSelector(doc, ".headline, .story, .teaser") {
		s.add(10, "newsroom-classes")
	}

	if s.confidence == 0 {
		return nil
	}
	return s.result(originURL, rssos.ArchetypeNews, rssos.PlatformUnknown, NewsRuleThreshold, newsRules)
}
