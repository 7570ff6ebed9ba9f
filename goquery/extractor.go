package goquery

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
)

// Default extraction limits. All tunable via options; the filters are crude
// noise gates chosen empirically, not inferred semantics.
const (
	DefaultMaxRecords        = 20
	DefaultEmbeddedCap       = 10
	DefaultMinTitleLength    = 6
	DefaultSummaryLength     = 200
	DefaultInlineContentMin  = 120
	DefaultEnrichLimit       = 5
	DefaultEnrichConcurrency = 2
)

// Ensure Extractor implements rssos.Extractor at compile time.
var _ rssos.Extractor = (*Extractor)(nil)

// Extractor applies classification rules to a page and emits normalized
// records. Dispatch is by archetype; any archetype strategy that produces
// zero records falls back to the generic strategy.
type Extractor struct {
	fetcher rssos.Fetcher
	now     func() time.Time

	maxRecords        int
	embeddedCap       int
	minTitleLength    int
	summaryLength     int
	inlineContentMin  int
	enrichLimit       int
	enrichConcurrency int
	textKeywords      []string
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithFetcher sets the network collaborator used by the enrichment
// strategies. Without a fetcher, enrichment is skipped and the embedded-data
// strategy falls back to generic extraction.
func WithFetcher(f rssos.Fetcher) ExtractorOption {
	return func(e *Extractor) { e.fetcher = f }
}

// WithClock overrides the time source used for default publish dates.
func WithClock(now func() time.Time) ExtractorOption {
	return func(e *Extractor) { e.now = now }
}

// WithMinTitleLength sets the generic strategy's minimum title length.
func WithMinTitleLength(n int) ExtractorOption {
	return func(e *Extractor) { e.minTitleLength = n }
}

// WithSummaryLength sets the maximum summary length before truncation.
func WithSummaryLength(n int) ExtractorOption {
	return func(e *Extractor) { e.summaryLength = n }
}

// WithTextKeywords overrides the keyword list used by the embedded-data
// strategy's free-text filter.
func WithTextKeywords(keywords []string) ExtractorOption {
	return func(e *Extractor) { e.textKeywords = keywords }
}

// WithEnrichConcurrency caps the number of parallel enrichment fetches.
func WithEnrichConcurrency(n int) ExtractorOption {
	return func(e *Extractor) { e.enrichConcurrency = n }
}

// NewExtractor creates an Extractor with default limits.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		now:               time.Now,
		maxRecords:        DefaultMaxRecords,
		embeddedCap:       DefaultEmbeddedCap,
		minTitleLength:    DefaultMinTitleLength,
		summaryLength:     DefaultSummaryLength,
		inlineContentMin:  DefaultInlineContentMin,
		enrichLimit:       DefaultEnrichLimit,
		enrichConcurrency: DefaultEnrichConcurrency,
		textKeywords:      defaultTextKeywords(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract applies the classification's rules to the HTML and returns an
// ordered list of records, capped at the extractor's maximum. An empty list
// is a valid result.
func (e *Extractor) Extract(ctx context.Context, html string, c *rssos.Classification) ([]*rssos.Record, error) {
	if c == nil {
		return nil, rssos.Errorf(rssos.EINVALID, "classification required")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, rssos.Errorf(rssos.EINVALID, "failed to parse HTML: %v", err)
	}

	var records []*rssos.Record
	switch c.Archetype {
	case rssos.ArchetypeBlog:
		records = e.extractBlog(ctx, doc, c)
	case rssos.ArchetypeNews:
		records = e.extractNews(doc, c)
	case rssos.ArchetypePortfolio:
		records = e.extractPortfolio(ctx, doc, html, c)
	case rssos.ArchetypeEcommerce:
		records = e.extractEcommerce(doc, c)
	case rssos.ArchetypeRepository:
		records = e.extractRepository(doc, c)
	default:
		records = e.extractGeneric(doc, c)
	}

	// Universal fallback: an archetype strategy that found nothing yields
	// to the generic strategy rather than returning an empty feed outright.
	if len(records) == 0 && c.Archetype != rssos.ArchetypeUnknown {
		records = e.extractGeneric(doc, c)
	}
	return records, nil
}

// strategyConfig tunes the shared rule-driven walk per strategy.
type strategyConfig struct {
	cap            int
	minTitleLength int
	includePrice   bool
}

// extractNews applies the common shape with the news rule set.
func (e *Extractor) extractNews(doc *goquery.Document, c *rssos.Classification) []*rssos.Record {
	return e.extractWithRules(doc, c, e.rules(c), strategyConfig{cap: e.maxRecords})
}

// extractEcommerce applies the common shape and folds the price role into
// each record's summary.
func (e *Extractor) extractEcommerce(doc *goquery.Document, c *rssos.Classification) []*rssos.Record {
	return e.extractWithRules(doc, c, e.rules(c), strategyConfig{cap: e.maxRecords, includePrice: true})
}

// extractRepository applies the common shape with the repository rule set.
func (e *Extractor) extractRepository(doc *goquery.Document, c *rssos.Classification) []*rssos.Record {
	return e.extractWithRules(doc, c, e.rules(c), strategyConfig{cap: e.maxRecords})
}

// extractGeneric applies the common shape with generic rules and the minimum
// title length noise gate. It serves both as the default case and as the
// universal fallback.
func (e *Extractor) extractGeneric(doc *goquery.Document, c *rssos.Classification) []*rssos.Record {
	return e.extractWithRules(doc, c, GenericRules(), strategyConfig{
		cap:            e.maxRecords,
		minTitleLength: e.minTitleLength,
	})
}

// rules returns the classification's rule set, falling back to the generic
// rules when classification attached none.
func (e *Extractor) rules(c *rssos.Classification) rssos.SelectorRules {
	if len(c.Rules) == 0 {
		return GenericRules()
	}
	return c.Rules
}

// extractWithRules is the common strategy shape: walk every node matched by
// the articles selector, pull each role via its selector with per-role
// fallbacks, and assemble records. Duplicates by resolved link are
// suppressed, first occurrence wins.
func (e *Extractor) extractWithRules(doc *goquery.Document, c *rssos.Classification, rules rssos.SelectorRules, cfg strategyConfig) []*rssos.Record {
	articlesSel := rules[rssos.RoleArticles]
	if articlesSel == "" {
		articlesSel = genericRules[rssos.RoleArticles]
	}

	seen := make(map[string]bool)
	var out []*rssos.Record

	doc.Find(articlesSel).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(out) >= cfg.cap {
			return false
		}
		rec, dedupeKey := e.buildRecord(sel, c, rules, cfg)
		if rec == nil {
			return true
		}
		if seen[dedupeKey] {
			return true
		}
		seen[dedupeKey] = true
		out = append(out, rec)
		return true
	})

	return out
}

// buildRecord assembles one record from an article node. Returns nil when
// the node has no usable title. The second return value is the dedupe key:
// the resolved link when the node carried one, otherwise the record ID so
// linkless items don't collapse into each other.
func (e *Extractor) buildRecord(sel *goquery.Selection, c *rssos.Classification, rules rssos.SelectorRules, cfg strategyConfig) (*rssos.Record, string) {
	title := firstText(sel, rules[rssos.RoleTitle])
	if title == "" {
		title = strings.TrimSpace(sel.Find("a").First().Text())
	}
	if title == "" {
		return nil, ""
	}
	if cfg.minTitleLength > 0 && len([]rune(title)) < cfg.minTitleLength {
		return nil, ""
	}

	href, hasHref := nodeLink(sel, rules[rssos.RoleLink])
	link := rssos.ResolveURL(c.OriginURL, href)

	contentHTML := firstHTML(sel, rules[rssos.RoleContent])
	if contentHTML == "" {
		contentHTML, _ = sel.Html()
	}
	body := e.Sanitize(contentHTML, c.OriginURL)

	summarySource := firstText(sel, rules[rssos.RoleSummary])
	if summarySource == "" {
		summarySource = textOf(contentHTML)
	}
	if cfg.includePrice {
		if price := firstText(sel, rules[rssos.RolePrice]); price != "" {
			summarySource = price + " " + summarySource
		}
	}

	rec := &rssos.Record{
		ID:          rssos.MakeIdentifier(seedFor(link, title, hasHref), c.OriginURL),
		Title:       title,
		Link:        link,
		Summary:     rssos.Summarize(summarySource, e.summaryLength),
		Body:        body,
		PublishedAt: e.publishedAt(sel, rules[rssos.RoleDate]),
		Author:      firstText(sel, rules[rssos.RoleAuthor]),
	}
	if img := firstImage(sel, rules[rssos.RoleImage]); img != "" {
		rec.Image = rssos.ResolveURL(c.OriginURL, img)
	}

	key := link
	if !hasHref {
		key = rec.ID
	}
	return rec, key
}

// seedFor picks the identifier seed: the resolved link when the node had
// one, otherwise the title.
func seedFor(link, title string, hasHref bool) string {
	if hasHref {
		return link
	}
	return title
}

// nodeLink finds the node's permalink href: the link role selector first,
// the node's own href when it is an anchor, then the first descendant
// anchor. The second return value reports whether any href was found.
func nodeLink(sel *goquery.Selection, linkSelector string) (string, bool) {
	if linkSelector != "" {
		if href, ok := sel.Find(linkSelector).First().Attr("href"); ok && href != "" {
			return href, true
		}
	}
	if href, ok := sel.Attr("href"); ok && href != "" {
		return href, true
	}
	if href, ok := sel.Find("a[href]").First().Attr("href"); ok && href != "" {
		return href, true
	}
	return "", false
}

// publishedAt extracts and normalizes the publish date, defaulting to the
// extraction time when undeterminable.
func (e *Extractor) publishedAt(sel *goquery.Selection, dateSelector string) string {
	if dateSelector != "" {
		node := sel.Find(dateSelector).First()
		if dt, ok := node.Attr("datetime"); ok {
			if t, err := parseDate(dt); err == nil {
				return t.UTC().Format(time.RFC3339)
			}
		}
		if t, err := parseDate(strings.TrimSpace(node.Text())); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return e.now().UTC().Format(time.RFC3339)
}
