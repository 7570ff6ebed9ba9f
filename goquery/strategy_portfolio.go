package goquery

import (
	"context"
	"encoding/json"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
)

// Embedded-data text filter bounds. Strings outside this window are either
// UI labels or full page dumps, neither of which makes a useful record.
const (
	textWindowMin = 40
	textWindowMax = 400
	textKeyLength = 20
	maxTitleRunes = 60
)

// defaultTextKeywords gate the free-text signal: a text node must mention at
// least one to count as portfolio content.
func defaultTextKeywords() []string {
	return []string{
		"work", "design", "project", "portfolio", "built", "created",
		"studio", "client", "brand", "develop",
	}
}

// extractPortfolio handles portfolio pages. Sites that embed their content
// as a JSON payload get the embedded-data walk; everything else goes through
// the common rule-driven shape. A failed payload fetch is not an error, it
// just means the static-markup path runs instead.
func (e *Extractor) extractPortfolio(ctx context.Context, doc *goquery.Document, rawHTML string, c *rssos.Classification) []*rssos.Record {
	if dataURL := FindDataURL(rawHTML, c.OriginURL); dataURL != "" && e.fetcher != nil {
		if payload, err := e.fetcher.Fetch(ctx, dataURL); err == nil {
			if records := e.extractEmbedded(payload, c); len(records) > 0 {
				return records
			}
		}
	}
	return e.extractWithRules(doc, c, e.rules(c), strategyConfig{cap: e.maxRecords})
}

// embeddedWalk accumulates records while walking a JSON node graph. The seen
// map is shared between both signal types so neither emits a duplicate key.
type embeddedWalk struct {
	extractor *Extractor
	c         *rssos.Classification
	seen      map[string]bool
	records   []*rssos.Record
	now       time.Time
}

// extractEmbedded walks a JSON payload for two signal types: interactive
// nodes whose action targets a same-origin relative path, and free-text
// nodes in a bounded length window mentioning a work keyword. Maps are
// visited in sorted key order so results are deterministic.
func (e *Extractor) extractEmbedded(payload string, c *rssos.Classification) []*rssos.Record {
	var root any
	if err := json.Unmarshal([]byte(payload), &root); err != nil {
		return nil
	}
	w := &embeddedWalk{
		extractor: e,
		c:         c,
		seen:      make(map[string]bool),
		now:       e.now().UTC(),
	}
	w.walk(root)
	return w.records
}

// linkKeys and labelKeys are tried in order when inspecting an interactive
// node.
var (
	linkKeys  = []string{"action", "href", "link", "url", "path"}
	labelKeys = []string{"title", "label", "name", "text", "heading"}
)

func (w *embeddedWalk) walk(node any) {
	if len(w.records) >= w.extractor.embeddedCap {
		return
	}

	switch v := node.(type) {
	case map[string]any:
		w.visitObject(v)
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			w.walk(v[k])
		}
	case []any:
		for _, item := range v {
			w.walk(item)
		}
	case string:
		w.visitText(v)
	}
}

// visitObject emits a record for an interactive node whose action targets a
// same-origin relative path, one record per distinct path.
func (w *embeddedWalk) visitObject(obj map[string]any) {
	var target string
	for _, key := range linkKeys {
		if s, ok := obj[key].(string); ok && strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
			target = s
			break
		}
	}
	if target == "" || w.seen[target] {
		return
	}

	title := ""
	for _, key := range labelKeys {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			title = strings.TrimSpace(s)
			break
		}
	}
	if title == "" {
		title = humanizePath(target)
	}
	if title == "" {
		return
	}

	w.seen[target] = true
	link := rssos.ResolveURL(w.c.OriginURL, target)
	w.append(&rssos.Record{
		ID:          rssos.MakeIdentifier(link, w.c.OriginURL),
		Title:       truncateTitle(title),
		Link:        link,
		Summary:     rssos.Summarize(title+" — "+target, w.extractor.summaryLength),
		Body:        "<p>" + html.EscapeString(title) + "</p>",
		PublishedAt: w.now.Format(time.RFC3339),
	})
}

// visitText emits a record for a free-text node whose length falls in the
// bounded window and which mentions at least one work keyword, one record
// per distinct leading-substring key.
func (w *embeddedWalk) visitText(text string) {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) < textWindowMin || len(runes) > textWindowMax {
		return
	}

	lowered := strings.ToLower(text)
	matched := false
	for _, kw := range w.extractor.textKeywords {
		if strings.Contains(lowered, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return
	}

	key := text
	if len(runes) > textKeyLength {
		key = string(runes[:textKeyLength])
	}
	if w.seen[key] {
		return
	}
	w.seen[key] = true

	w.append(&rssos.Record{
		ID:          rssos.MakeIdentifier("text:"+key, w.c.OriginURL),
		Title:       truncateTitle(text),
		Link:        w.c.OriginURL,
		Summary:     rssos.Summarize(text, w.extractor.summaryLength),
		Body:        "<p>" + html.EscapeString(text) + "</p>",
		PublishedAt: w.now.Format(time.RFC3339),
	})
}

func (w *embeddedWalk) append(rec *rssos.Record) {
	if len(w.records) < w.extractor.embeddedCap {
		w.records = append(w.records, rec)
	}
}

// truncateTitle caps a synthesized title at maxTitleRunes with an ellipsis.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleRunes {
		return title
	}
	return string(runes[:maxTitleRunes]) + rssos.SummaryEllipsis
}

// humanizePath turns "/work/acme-rebrand" into "work acme rebrand".
func humanizePath(path string) string {
	cleaned := strings.Trim(path, "/")
	cleaned = strings.NewReplacer("/", " ", "-", " ", "_", " ").Replace(cleaned)
	return strings.Join(strings.Fields(cleaned), " ")
}
