package goquery

import (
	"context"
	"html"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
	"golang.org/x/sync/errgroup"
)

// Enrichment limits. Paragraphs at or under the minimum length are markup
// residue, not prose.
const (
	paragraphMinLength = 20
	paragraphCap       = 10
)

// enrichContentSelectors are tried in order against a fetched article page;
// the first that yields non-empty markup wins.
var enrichContentSelectors = []string{
	".entry-content",
	".post-content",
	"article .content",
	"article",
	"main",
}

// paragraphBoilerplate marks comment and mailing-list prompts excluded from
// the paragraph fallback.
var paragraphBoilerplate = []string{"comment", "email", "subscribe", "reply"}

// secondaryZoneSelector is the "recent links" zone of minimal blog archive
// pages, merged with the primary entries zone.
const secondaryZoneSelector = "ul.blog-posts li a[href], .recent-posts a[href], .archive a[href], ul.post-list li a[href]"

// extractBlog handles blog pages. Most platforms go through the common
// rule-driven shape; minimal archive-style platforms additionally merge a
// secondary recent-links zone and enrich too-short records by fetching their
// permalinks.
func (e *Extractor) extractBlog(ctx context.Context, doc *goquery.Document, c *rssos.Classification) []*rssos.Record {
	records := e.extractWithRules(doc, c, e.rules(c), strategyConfig{cap: e.maxRecords})
	if c.Platform != rssos.PlatformBear {
		return records
	}
	records = e.mergeSecondaryZone(doc, c, records)
	e.enrichRecords(ctx, c, records)
	return records
}

// mergeSecondaryZone appends records from the recent-links zone,
// deduplicated against the primary zone by resolved link. First-encountered
// zone wins.
func (e *Extractor) mergeSecondaryZone(doc *goquery.Document, c *rssos.Classification, records []*rssos.Record) []*rssos.Record {
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		seen[rec.Link] = true
	}

	doc.Find(secondaryZoneSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(records) >= e.maxRecords {
			return false
		}
		title := strings.TrimSpace(sel.Text())
		href, ok := sel.Attr("href")
		if title == "" || !ok || href == "" {
			return true
		}
		link := rssos.ResolveURL(c.OriginURL, href)
		if seen[link] {
			return true
		}
		seen[link] = true
		records = append(records, &rssos.Record{
			ID:          rssos.MakeIdentifier(link, c.OriginURL),
			Title:       title,
			Link:        link,
			PublishedAt: e.now().UTC().Format(time.RFC3339),
		})
		return true
	})

	return records
}

// enrichRecords performs one secondary fetch per too-short record to replace
// its inline content with the full article body. Fetches run through a small
// worker pool; each failure is isolated to its record, which keeps its
// pre-enrichment content.
func (e *Extractor) enrichRecords(ctx context.Context, c *rssos.Classification, records []*rssos.Record) {
	if e.fetcher == nil {
		return
	}

	var candidates []*rssos.Record
	for _, rec := range records {
		if len(candidates) >= e.enrichLimit {
			break
		}
		if rec.Link == c.OriginURL {
			continue
		}
		if len(textOf(rec.Body)) < e.inlineContentMin {
			candidates = append(candidates, rec)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.enrichConcurrency)
	for _, rec := range candidates {
		rec := rec
		g.Go(func() error {
			page, err := e.fetcher.Fetch(ctx, rec.Link)
			if err != nil {
				return nil // record keeps its pre-enrichment content
			}
			body := e.enrichedBody(page, c.OriginURL)
			if body == "" {
				return nil
			}
			rec.Body = body
			if rec.Summary == "" {
				rec.Summary = rssos.Summarize(textOf(body), e.summaryLength)
			}
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors; failures are per-record no-ops
}

// enrichedBody extracts the full article body from a fetched permalink page:
// ordered content-selector candidates first, then a paragraph-collection
// fallback that skips boilerplate.
func (e *Extractor) enrichedBody(page, originURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return ""
	}

	for _, selector := range enrichContentSelectors {
		node := doc.Find(selector).First()
		if node.Length() == 0 {
			continue
		}
		inner, err := node.Html()
		if err != nil || strings.TrimSpace(inner) == "" {
			continue
		}
		return e.Sanitize(inner, originURL)
	}

	var paragraphs []string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(paragraphs) >= paragraphCap {
			return false
		}
		text := strings.TrimSpace(sel.Text())
		if len(text) <= paragraphMinLength {
			return true
		}
		lowered := strings.ToLower(text)
		for _, marker := range paragraphBoilerplate {
			if strings.Contains(lowered, marker) {
				return true
			}
		}
		paragraphs = append(paragraphs, "<p>"+html.EscapeString(text)+"</p>")
		return true
	})

	return strings.Join(paragraphs, "\n")
}
