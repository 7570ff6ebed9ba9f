package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
)

// blogRules are the selector rules attached by the blog detector.
var blogRules = rssos.SelectorRules{
	rssos.RoleArticles: "article, .post, .hentry, .blog-post",
	rssos.RoleTitle:    ".entry-title, .post-title, h2 a, h1, h2",
	rssos.RoleContent:  ".entry-content, .post-content, .entry-summary, .post-body",
	rssos.RoleLink:     "a[href]",
	rssos.RoleDate:     "time, .published, .post-date, .date",
	rssos.RoleAuthor:   ".author, .byline, [rel='author']",
	rssos.RoleImage:    "img",
	rssos.RoleSummary:  ".entry-summary, .excerpt",
}

// DetectBlog scores a page as a blog. The strongest signal is a generator
// meta tag naming a known blogging engine; structural signals (entry titles,
// feed links, post markup) accumulate on top.
func DetectBlog(doc *goquery.Document, rawHTML, originURL string) *rssos.Classification {
	var s score
	platform := rssos.PlatformUnknown

	generator := metaGenerator(doc)
	switch {
	case strings.Contains(generator, "wordpress"):
		platform = rssos.PlatformWordPress
		s.add(40, "generator:wordpress")
	case strings.Contains(generator, "ghost"):
		platform = rssos.PlatformGhost
		s.add(40, "generator:ghost")
	case strings.Contains(generator, "jekyll"):
		platform = rssos.PlatformJekyll
		s.add(35, "generator:jekyll")
	case strings.Contains(generator, "hugo"):
		platform = rssos.PlatformHugo
		s.add(35, "generator:hugo")
	case strings.Contains(generator, "bear"):
		platform = rssos.PlatformBear
		s.add(35, "generator:bear")
	}

	if platform == rssos.PlatformUnknown && strings.Contains(rawHTML, "bearblog.dev") {
		platform = rssos.PlatformBear
		s.add(30, "markup:bearblog")
	}

	if hasSelector(doc, "link[rel='alternate'][type='application/rss+xml'], link[rel='alternate'][type='application/atom+xml']") {
		s.add(15, "feed-link")
	}

	if hasSelector(doc, "article .entry-title, .post .entry-title, .hentry .entry-title, article .post-title, .post .post-title") {
		s.add(20, "entry-structure")
	} else if doc.Find("article, .post, .hentry").Length() > 0 {
		s.add(10, "post-markup")
	}

	if strings.Contains(strings.ToLower(originURL), "blog") {
		s.add(10, "url:blog")
	}

	if hasSelector(doc, "time[datetime]") {
		s.add(5, "timestamps")
	}

	if s.confidence == 0 {
		return nil
	}
	return s.result(originURL, rssos.ArchetypeBlog, platform, BlogRuleThreshold, blogRules)
}
