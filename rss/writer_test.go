package rss_test

import (
	"testing"

	"github.com/chemark/rssos"
	"github.com/chemark/rssos/rss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []*rssos.Record {
	return []*rssos.Record{
		{
			ID:          "rssos-abcdef0123456789",
			Title:       "First post",
			Link:        "https://a.com/posts/one",
			Summary:     "A short teaser.",
			Body:        "<p>Full <b>body</b> here.</p>",
			PublishedAt: "2024-06-01T12:00:00Z",
			Author:      "Jan Kowalski",
			Category:    "go",
			Image:       "https://a.com/images/one.png",
		},
		{
			ID:    "rssos-fedcba9876543210",
			Title: "Second post",
			Link:  "https://a.com/posts/two",
		},
	}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	writer := rss.NewWriter()
	out, err := writer.Write(testRecords(), rssos.SiteMeta{
		OriginURL: "https://a.com",
		Archetype: rssos.ArchetypeBlog,
	})
	require.NoError(t, err)

	t.Run("document shell", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, out, `<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">`)
		assert.Contains(t, out, "<generator>rssos</generator>")
	})

	t.Run("channel metadata", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, out, "<title>https://a.com</title>")
		assert.Contains(t, out, "<link>https://a.com</link>")
		assert.Contains(t, out, "<description>Generated feed for https://a.com (blog)</description>")
	})

	t.Run("full item", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, out, "<title>First post</title>")
		assert.Contains(t, out, "<link>https://a.com/posts/one</link>")
		assert.Contains(t, out, `<guid isPermaLink="false">rssos-abcdef0123456789</guid>`)
		assert.Contains(t, out, "<description>A short teaser.</description>")
		assert.Contains(t, out, "<content:encoded><![CDATA[<p>Full <b>body</b> here.</p>]]></content:encoded>")
		assert.Contains(t, out, "<author>Jan Kowalski</author>")
		assert.Contains(t, out, "<category>go</category>")
		assert.Contains(t, out, "<pubDate>Sat, 01 Jun 2024 12:00:00 +0000</pubDate>")
		assert.Contains(t, out, `<enclosure url="https://a.com/images/one.png" type="image/*" length="0"/>`)
	})

	t.Run("sparse item omits empty elements", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, out, "<title>Second post</title>")
		assert.NotContains(t, out, "<author></author>")
		assert.NotContains(t, out, "<category></category>")
		assert.NotContains(t, out, "<pubDate></pubDate>")
	})
}

func TestWriter_WriteChannelTitle(t *testing.T) {
	t.Parallel()

	writer := rss.NewWriter()
	out, err := writer.Write(nil, rssos.SiteMeta{
		Title:     "Someone Writes",
		OriginURL: "https://a.com",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "<title>Someone Writes</title>")
}

func TestWriter_WriteUnknownArchetype(t *testing.T) {
	t.Parallel()

	writer := rss.NewWriter()
	out, err := writer.Write(nil, rssos.SiteMeta{
		OriginURL: "https://a.com",
		Archetype: rssos.ArchetypeUnknown,
	})
	require.NoError(t, err)

	assert.Contains(t, out, "<description>Generated feed for https://a.com</description>")
}

func TestWriter_WriteUnparseableDate(t *testing.T) {
	t.Parallel()

	writer := rss.NewWriter()
	out, err := writer.Write([]*rssos.Record{
		{ID: "rssos-1", Title: "x", Link: "https://a.com/x", PublishedAt: "yesterday-ish"},
	}, rssos.SiteMeta{OriginURL: "https://a.com"})
	require.NoError(t, err)

	assert.Contains(t, out, "<pubDate>yesterday-ish</pubDate>")
}
