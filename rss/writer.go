// Package rss serializes extracted records as an RSS 2.0 document built
// with etree.
package rss

import (
	"time"

	"github.com/beevik/etree"
	"github.com/chemark/rssos"
)

// contentNamespace is the RSS content module carrying full item bodies.
const contentNamespace = "http://purl.org/rss/1.0/modules/content/"

// Ensure Writer implements rssos.FeedWriter at compile time.
var _ rssos.FeedWriter = (*Writer)(nil)

// Writer renders records and site metadata as an RSS 2.0 document.
type Writer struct {
	generator string
}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{generator: "rssos"}
}

// Write renders the records as RSS 2.0. Record bodies travel in
// content:encoded CDATA sections, summaries in item descriptions.
func (w *Writer) Write(records []*rssos.Record, meta rssos.SiteMeta) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	rss.CreateAttr("xmlns:content", contentNamespace)

	channel := rss.CreateElement("channel")
	title := meta.Title
	if title == "" {
		title = meta.OriginURL
	}
	channel.CreateElement("title").SetText(title)
	channel.CreateElement("link").SetText(meta.OriginURL)
	channel.CreateElement("description").SetText(describeSite(meta))
	channel.CreateElement("generator").SetText(w.generator)

	for _, rec := range records {
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(rec.Title)
		item.CreateElement("link").SetText(rec.Link)

		guid := item.CreateElement("guid")
		guid.CreateAttr("isPermaLink", "false")
		guid.SetText(rec.ID)

		if rec.Summary != "" {
			item.CreateElement("description").SetText(rec.Summary)
		}
		if rec.Body != "" {
			encoded := item.CreateElement("content:encoded")
			encoded.CreateCData(rec.Body)
		}
		if rec.Author != "" {
			item.CreateElement("author").SetText(rec.Author)
		}
		if rec.Category != "" {
			item.CreateElement("category").SetText(rec.Category)
		}
		if pub := pubDate(rec.PublishedAt); pub != "" {
			item.CreateElement("pubDate").SetText(pub)
		}
		if rec.Image != "" {
			enclosure := item.CreateElement("enclosure")
			enclosure.CreateAttr("url", rec.Image)
			enclosure.CreateAttr("type", "image/*")
			enclosure.CreateAttr("length", "0")
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", rssos.Errorf(rssos.EINTERNAL, "serialize feed: %v", err)
	}
	return out, nil
}

// describeSite renders the channel description from the classification.
func describeSite(meta rssos.SiteMeta) string {
	desc := "Generated feed for " + meta.OriginURL
	if meta.Archetype != "" && meta.Archetype != rssos.ArchetypeUnknown {
		desc += " (" + string(meta.Archetype) + ")"
	}
	return desc
}

// pubDate converts an RFC 3339 timestamp to the RFC 1123 form RSS expects.
// Unparseable timestamps are passed through untouched.
func pubDate(ts string) string {
	if ts == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format(time.RFC1123Z)
}
