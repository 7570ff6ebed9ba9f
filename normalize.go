package rssos

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// SummaryEllipsis is appended to summaries truncated by Summarize.
const SummaryEllipsis = "..."

// identifierPrefix namespaces record identifiers.
const identifierPrefix = "rssos-"

// trackingParams are query parameters stripped by NormalizeURL. They carry
// analytics state, not content identity.
var trackingParams = []string{
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
	"fbclid", "gclid", "ref",
}

// ResolveURL resolves a possibly-relative URL against an origin.
// Four cases: protocol-relative links get https, root-relative links join
// the origin, bare relative links join origin + "/", and absolute links pass
// through unchanged. An empty raw value resolves to the origin itself.
func ResolveURL(origin, raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return origin
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "/"):
		return strings.TrimRight(origin, "/") + raw
	default:
		return strings.TrimRight(origin, "/") + "/" + raw
	}
}

// Summarize collapses whitespace and trims the text, truncating to maxLength
// runes plus an ellipsis marker when the collapsed text is longer.
func Summarize(text string, maxLength int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	runes := []rune(collapsed)
	if len(runes) <= maxLength {
		return collapsed
	}
	return string(runes[:maxLength]) + SummaryEllipsis
}

// MakeIdentifier derives a deterministic, content-addressed identifier from
// a seed (usually the record's link or title) salted with the origin URL.
// Same inputs always produce the same identifier; distinct seeds for a fixed
// origin produce distinct identifiers in practice (SHA-256, truncated).
func MakeIdentifier(seed, originURL string) string {
	sum := sha256.Sum256([]byte(seed + originURL))
	return identifierPrefix + hex.EncodeToString(sum[:])[:16]
}

// NormalizeURL produces the canonical cache-key form of a URL: lower-cased,
// fragment stripped, tracking query parameters removed. Unparseable input is
// returned lower-cased and trimmed so it still yields a usable key.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}
	u.Fragment = ""
	q := u.Query()
	for _, p := range trackingParams {
		q.Del(p)
	}
	u.RawQuery = q.Encode()
	return strings.ToLower(u.String())
}
