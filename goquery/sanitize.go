package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
	"github.com/microcosm-cc/bluemonday"
)

// boilerplateSelectors name regions stripped from record bodies: page
// chrome, comment threads, and ad slots have no place in a feed item.
const boilerplateSelectors = "script, style, footer, .footer, #comments, .comments, .comment, .comment-form, .ad, .ads, .advert, .advertisement, [class*='sponsor']"

// sanitizePolicy is the final markup filter applied after region stripping.
var sanitizePolicy = bluemonday.UGCPolicy()

// Sanitize cleans an HTML fragment for inclusion in a feed body: boilerplate
// regions are removed, relative image and anchor URLs are rewritten against
// the origin, and the result is run through a UGC sanitization policy.
func (e *Extractor) Sanitize(fragment, originURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(sanitizePolicy.Sanitize(fragment))
	}

	doc.Find(boilerplateSelectors).Remove()

	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && !isAbsolute(src) {
			sel.SetAttr("src", rssos.ResolveURL(originURL, src))
		}
	})
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && !isAbsolute(href) {
			sel.SetAttr("href", rssos.ResolveURL(originURL, href))
		}
	})

	body, err := doc.Find("body").Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(sanitizePolicy.Sanitize(body))
}

// isAbsolute reports whether a URL already carries a scheme.
func isAbsolute(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}
