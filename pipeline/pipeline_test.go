package pipeline_test

import (
	"context"
	"testing"

	"github.com/chemark/rssos"
	"github.com/chemark/rssos/mock"
	"github.com/chemark/rssos/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCaches() *rssos.Caches {
	return &rssos.Caches{
		Pages:           mock.NewCache(),
		Classifications: mock.NewCache(),
		Feeds:           mock.NewCache(),
		Failures:        mock.NewCache(),
	}
}

func testClassification(originURL string) *rssos.Classification {
	return &rssos.Classification{
		OriginURL: originURL,
		Archetype: rssos.ArchetypeBlog,
		Platform:  rssos.PlatformWordPress,
	}
}

func newTestPipeline(caches *rssos.Caches) (*pipeline.Pipeline, *callCounts) {
	counts := &callCounts{}
	p := &pipeline.Pipeline{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				counts.fetch++
				return "<html>page</html>", nil
			},
		},
		Classifier: &mock.Classifier{
			ClassifyFn: func(_ string, originURL string) *rssos.Classification {
				counts.classify++
				return testClassification(originURL)
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ context.Context, _ string, _ *rssos.Classification) ([]*rssos.Record, error) {
				counts.extract++
				return []*rssos.Record{{ID: "rssos-1", Title: "First", Link: "https://a.com/1"}}, nil
			},
		},
		Writer: &mock.FeedWriter{
			WriteFn: func(records []*rssos.Record, meta rssos.SiteMeta) (string, error) {
				counts.write++
				return "<rss>" + meta.OriginURL + "</rss>", nil
			},
		},
		Caches: caches,
	}
	return p, counts
}

type callCounts struct {
	fetch, classify, extract, write int
}

func TestPipeline_Build(t *testing.T) {
	t.Parallel()

	caches := testCaches()
	p, counts := newTestPipeline(caches)

	result, err := p.Build(context.Background(), "https://a.com")

	require.NoError(t, err)
	assert.Equal(t, "<rss>https://a.com</rss>", result.Feed)
	assert.Equal(t, rssos.ArchetypeBlog, result.Classification.Archetype)
	assert.Equal(t, 1, result.Records)
	assert.False(t, result.FromCache)

	assert.Equal(t, 1, counts.fetch)
	assert.Equal(t, 1, counts.classify)
	assert.Equal(t, 1, counts.extract)
	assert.Equal(t, 1, counts.write)

	key := rssos.NormalizeURL("https://a.com")
	assert.True(t, caches.Pages.Has(key))
	assert.True(t, caches.Classifications.Has(key))
	assert.True(t, caches.Feeds.Has(key))
	assert.False(t, caches.Failures.Has(key))
}

func TestPipeline_BuildFeedCacheHit(t *testing.T) {
	t.Parallel()

	caches := testCaches()
	caches.Feeds.Set(rssos.NormalizeURL("https://a.com"), "<rss>cached</rss>")
	p, counts := newTestPipeline(caches)

	result, err := p.Build(context.Background(), "https://a.com")

	require.NoError(t, err)
	assert.Equal(t, "<rss>cached</rss>", result.Feed)
	assert.True(t, result.FromCache)
	assert.Zero(t, counts.fetch)
	assert.Zero(t, counts.classify)
}

func TestPipeline_BuildCachedFailureShortCircuits(t *testing.T) {
	t.Parallel()

	caches := testCaches()
	caches.Failures.Set(rssos.NormalizeURL("https://a.com"), "fetch https://a.com: status 503")
	p, counts := newTestPipeline(caches)

	_, err := p.Build(context.Background(), "https://a.com")

	require.Error(t, err)
	assert.Equal(t, rssos.EUNAVAILABLE, rssos.ErrorCode(err))
	assert.Zero(t, counts.fetch)
}

func TestPipeline_BuildRecordsFailure(t *testing.T) {
	t.Parallel()

	caches := testCaches()
	p, counts := newTestPipeline(caches)
	p.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "", rssos.Errorf(rssos.EUNAVAILABLE, "fetch %s: connection refused", url)
		},
	}

	_, err := p.Build(context.Background(), "https://a.com")

	require.Error(t, err)
	assert.Equal(t, rssos.EUNAVAILABLE, rssos.ErrorCode(err))
	assert.Zero(t, counts.classify)
	assert.True(t, caches.Failures.Has(rssos.NormalizeURL("https://a.com")))

	// The cached failure now answers the retry without touching the network.
	_, err = p.Build(context.Background(), "https://a.com")
	require.Error(t, err)
	assert.Equal(t, rssos.EUNAVAILABLE, rssos.ErrorCode(err))
}

func TestPipeline_BuildReusesCachedPageAndClassification(t *testing.T) {
	t.Parallel()

	caches := testCaches()
	p, counts := newTestPipeline(caches)

	_, err := p.Build(context.Background(), "https://a.com")
	require.NoError(t, err)

	// Drop the feed so the second build runs the stages again.
	caches.Feeds.Delete(rssos.NormalizeURL("https://a.com"))

	_, err = p.Build(context.Background(), "https://a.com")
	require.NoError(t, err)

	assert.Equal(t, 1, counts.fetch)
	assert.Equal(t, 1, counts.classify)
	assert.Equal(t, 2, counts.extract)
}

func TestPipeline_BuildExtractorFailure(t *testing.T) {
	t.Parallel()

	caches := testCaches()
	p, _ := newTestPipeline(caches)
	p.Extractor = &mock.Extractor{
		ExtractFn: func(_ context.Context, _ string, _ *rssos.Classification) ([]*rssos.Record, error) {
			return nil, rssos.Errorf(rssos.EINTERNAL, "parse document")
		},
	}

	_, err := p.Build(context.Background(), "https://a.com")

	require.Error(t, err)
	assert.Equal(t, rssos.EINTERNAL, rssos.ErrorCode(err))
	assert.True(t, caches.Failures.Has(rssos.NormalizeURL("https://a.com")))
}

func TestPipeline_BuildNormalizesURLVariants(t *testing.T) {
	t.Parallel()

	caches := testCaches()
	p, counts := newTestPipeline(caches)

	_, err := p.Build(context.Background(), "https://a.com/blog")
	require.NoError(t, err)

	// Tracking params and fragments collapse onto the same cache entry.
	result, err := p.Build(context.Background(), "https://a.com/blog?utm_source=x#top")
	require.NoError(t, err)

	assert.True(t, result.FromCache)
	assert.Equal(t, 1, counts.fetch)
}

func TestPipeline_BuildWithoutCaches(t *testing.T) {
	t.Parallel()

	p, counts := newTestPipeline(nil)

	result, err := p.Build(context.Background(), "https://a.com")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Records)

	_, err = p.Build(context.Background(), "https://a.com")
	require.NoError(t, err)
	assert.Equal(t, 2, counts.fetch)
}

func TestPipeline_BuildPassesDeadline(t *testing.T) {
	t.Parallel()

	p, _ := newTestPipeline(nil)
	p.Fetcher = &mock.Fetcher{
		FetchFn: func(ctx context.Context, _ string) (string, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return "<html></html>", nil
		},
	}

	_, err := p.Build(context.Background(), "https://a.com")
	require.NoError(t, err)
}
