package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chemark/rssos"
)

// ecommerceRules are the selector rules attached by the ecommerce detector.
var ecommerceRules = rssos.SelectorRules{
	rssos.RoleArticles: ".product, .product-card, .product-item, li.grid__item",
	rssos.RoleTitle:    ".product-title, .product__title, .product-name, h2, h3",
	rssos.RoleContent:  ".product-description, .description, p",
	rssos.RoleLink:     "a[href]",
	rssos.RolePrice:    ".price, .product-price, .money, .amount",
	rssos.RoleImage:    "img",
}

// pricePattern matches common currency-prefixed amounts in raw markup.
var pricePattern = regexp.MustCompile(`[$€£]\s?\d+[.,]?\d*`)

// DetectEcommerce scores a page as a storefront: platform markers, product
// structured data, price markup, and cart affordances.
func DetectEcommerce(doc *goquery.Document, rawHTML, originURL string) *rssos.Classification {
	var s score
	platform := rssos.PlatformUnknown

	if strings.Contains(rawHTML, "cdn.shopify.com") || strings.Contains(metaGenerator(doc), "shopify") {
		platform = rssos.PlatformShopify
		s.add(30, "platform:shopify")
	}

	if strings.Contains(rawHTML, "\"Product\"") && strings.Contains(rawHTML, "schema.org") {
		s.add(25, "jsonld:product")
	}

	if hasSelector(doc, ".product, .product-card, .add-to-cart, [data-product-id]") {
		s.add(20, "product-markup")
	}

	if pricePattern.MatchString(rawHTML) {
		s.add(15, "price-markers")
	}

	lowered := strings.ToLower(originURL)
	if strings.Contains(lowered, "shop") || strings.Contains(lowered, "store") {
		s.add(10, "url:shop")
	}

	if s.confidence == 0 {
		return nil
	}
	return s.result(originURL, rssos.ArchetypeEcommerce, platform, EcommerceRuleThreshold, ecommerceRules)
}
