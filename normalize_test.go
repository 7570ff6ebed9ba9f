package rssos_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/chemark/rssos"
	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		origin string
		raw    string
		want   string
	}{
		{"protocol relative", "https://a.com", "//cdn.b.com/x", "https://cdn.b.com/x"},
		{"root relative", "https://a.com", "/x", "https://a.com/x"},
		{"bare relative", "https://a.com", "x", "https://a.com/x"},
		{"absolute passthrough", "https://a.com", "https://c.com/y", "https://c.com/y"},
		{"http absolute passthrough", "https://a.com", "http://c.com/y", "http://c.com/y"},
		{"empty defaults to origin", "https://a.com", "", "https://a.com"},
		{"origin with trailing slash", "https://a.com/", "/x", "https://a.com/x"},
		{"bare relative with trailing slash origin", "https://a.com/", "x", "https://a.com/x"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rssos.ResolveURL(tt.origin, tt.raw))
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace without truncation", func(t *testing.T) {
		t.Parallel()
		got := rssos.Summarize("  hello \n\t world  ", 50)
		assert.Equal(t, "hello world", got)
	})

	t.Run("truncates long input with ellipsis", func(t *testing.T) {
		t.Parallel()
		got := rssos.Summarize(strings.Repeat("a ", 100), 20)
		assert.Equal(t, 20+len(rssos.SummaryEllipsis), utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, rssos.SummaryEllipsis))
	})

	t.Run("input exactly at limit is unchanged", func(t *testing.T) {
		t.Parallel()
		got := rssos.Summarize("abcde", 5)
		assert.Equal(t, "abcde", got)
	})
}

func TestMakeIdentifier(t *testing.T) {
	t.Parallel()

	t.Run("stable for equal inputs", func(t *testing.T) {
		t.Parallel()
		a := rssos.MakeIdentifier("https://a.com/post", "https://a.com")
		b := rssos.MakeIdentifier("https://a.com/post", "https://a.com")
		assert.Equal(t, a, b)
	})

	t.Run("distinct seeds produce distinct identifiers", func(t *testing.T) {
		t.Parallel()
		a := rssos.MakeIdentifier("https://a.com/post-1", "https://a.com")
		b := rssos.MakeIdentifier("https://a.com/post-2", "https://a.com")
		assert.NotEqual(t, a, b)
	})

	t.Run("namespaced fixed-width hex", func(t *testing.T) {
		t.Parallel()
		id := rssos.MakeIdentifier("seed", "https://a.com")
		assert.True(t, strings.HasPrefix(id, "rssos-"))
		assert.Len(t, strings.TrimPrefix(id, "rssos-"), 16)
	})
}

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"strips fragment", "https://a.com/page#section", "https://a.com/page"},
		{"strips tracking params", "https://a.com/page?utm_source=x&id=1", "https://a.com/page?id=1"},
		{"lower-cases", "https://A.com/Page", "https://a.com/page"},
		{"strips fbclid and gclid", "https://a.com/?fbclid=f&gclid=g", "https://a.com/"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rssos.NormalizeURL(tt.raw))
		})
	}
}
