package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/chemark/rssos"
	main "github.com/chemark/rssos/cmd/rssos"
	"github.com/chemark/rssos/mock"
	"github.com/chemark/rssos/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NoArguments(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.Run(context.Background(), nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestFeedCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the generated feed", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pipeline: &pipeline.Pipeline{
				Fetcher: &mock.Fetcher{
					FetchFn: func(_ context.Context, _ string) (string, error) {
						return "<html></html>", nil
					},
				},
				Classifier: &mock.Classifier{
					ClassifyFn: func(_ string, originURL string) *rssos.Classification {
						return &rssos.Classification{OriginURL: originURL, Archetype: rssos.ArchetypeBlog}
					},
				},
				Extractor: &mock.Extractor{
					ExtractFn: func(_ context.Context, _ string, _ *rssos.Classification) ([]*rssos.Record, error) {
						return []*rssos.Record{{ID: "rssos-1", Title: "First"}}, nil
					},
				},
				Writer: &mock.FeedWriter{
					WriteFn: func(_ []*rssos.Record, _ rssos.SiteMeta) (string, error) {
						return "<rss>feed</rss>", nil
					},
				},
			},
		}

		cmd := &main.FeedCmd{URL: "https://a.com"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "<rss>feed</rss>")
		assert.Empty(t, stderr.String())
	})

	t.Run("reports fetch failures on stderr", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Pipeline: &pipeline.Pipeline{
				Fetcher: &mock.Fetcher{
					FetchFn: func(_ context.Context, url string) (string, error) {
						return "", rssos.Errorf(rssos.EUNAVAILABLE, "fetch %s: connection refused", url)
					},
				},
			},
		}

		cmd := &main.FeedCmd{URL: "https://a.com"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "connection refused")
		assert.Empty(t, stdout.String())
	})
}

func TestClassifyCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html></html>", nil
			},
		},
		Classifier: &mock.Classifier{
			ClassifyFn: func(_ string, originURL string) *rssos.Classification {
				return &rssos.Classification{
					OriginURL:       originURL,
					Archetype:       rssos.ArchetypeBlog,
					Platform:        rssos.PlatformWordPress,
					Confidence:      75,
					MatchedFeatures: []string{"generator:wordpress", "feed-link"},
				}
			},
		},
	}

	cmd := &main.ClassifyCmd{URL: "https://a.com"}
	err := cmd.Run(deps)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "archetype:  blog")
	assert.Contains(t, out, "platform:   wordpress")
	assert.Contains(t, out, "confidence: 75")
	assert.Contains(t, out, "matched: generator:wordpress")
}
