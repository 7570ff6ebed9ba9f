// Package rssos turns arbitrary web pages into normalized article feeds.
// It classifies a page against known site archetypes (blog, news, portfolio,
// ecommerce, repository), picks extraction rules for the winning archetype,
// and pulls structured records out of the page's HTML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, gocache/).
package rssos
