package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
)

// repositoryRules are the selector rules attached by the repository detector.
var repositoryRules = rssos.SelectorRules{
	rssos.RoleArticles: ".Box-row, .repo-list-item, .repository, .project-row",
	rssos.RoleTitle:    "h3 a, .repo-name, a",
	rssos.RoleContent:  "p, .description, .repo-description",
	rssos.RoleLink:     "a[href]",
	rssos.RoleDate:     "relative-time, time",
}

// DetectRepository scores a page as a code-hosting site: forge hostnames,
// forge-specific markup, and readme/commit UI markers.
func DetectRepository(doc *goquery.Document, rawHTML, originURL string) *rssos.Classification {
	var s score
	platform := rssos.PlatformUnknown

	if u, err := url.Parse(originURL); err == nil {
		host := strings.ToLower(u.Host)
		switch {
		case strings.Contains(host, "github.com"):
			platform = rssos.PlatformGitHub
			s.add(40, "host:github")
		case strings.Contains(host, "gitlab"):
			platform = rssos.PlatformGitLab
			s.add(40, "host:gitlab")
		}
	}

	if strings.Contains(rawHTML, "octolytics") || hasSelector(doc, ".repository-content, .Box-row") {
		s.add(20, "forge-markup")
	}

	if hasSelector(doc, "article.markdown-body, #readme") {
		s.add(20, "readme")
	}

	if hasSelector(doc, ".commit, .branch, relative-time") {
		s.add(10, "commit-ui")
	}

	if s.confidence == 0 {
		return nil
	}
	return s.result(originURL, rssos.ArchetypeRepository, platform, RepositoryRuleThreshold, repositoryRules)
}
