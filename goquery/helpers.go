package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

// firstText returns the trimmed text of the first match for the selector
// within the node, empty when the selector is empty or misses.
func firstText(sel *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return strings.TrimSpace(sel.Find(selector).First().Text())
}

// firstHTML returns the inner HTML of the first match for the selector
// within the node, empty when the selector is empty or misses.
func firstHTML(sel *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	node := sel.Find(selector).First()
	if node.Length() == 0 {
		return ""
	}
	html, err := node.Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(html)
}

// firstImage returns the src of the first image matched by the selector.
func firstImage(sel *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	src, _ := sel.Find(selector).First().Attr("src")
	return src
}

// textOf strips markup from an HTML fragment and returns its trimmed text.
func textOf(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(doc.Text())
}

// parseDate parses a free-form date string.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &time.ParseError{Message: "empty date"}
	}
	return dateparse.ParseAny(s)
}
