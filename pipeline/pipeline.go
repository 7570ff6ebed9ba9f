// Package pipeline coordinates the full page-to-feed flow: cached
// short-circuits, page fetch, classification, extraction, and feed
// serialization, all under one request deadline.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/chemark/rssos"
	"github.com/google/uuid"
)

// DefaultTimeout is the overall deadline wrapping fetch+classify+extract.
const DefaultTimeout = 30 * time.Second

// Pipeline wires the collaborators together. All fields except Caches and
// Logger are required.
type Pipeline struct {
	Fetcher    rssos.Fetcher
	Classifier rssos.Classifier
	Extractor  rssos.Extractor
	Writer     rssos.FeedWriter
	Caches     *rssos.Caches
	Logger     *slog.Logger
	Timeout    time.Duration
}

// Result holds the outcome of building a feed for one URL.
type Result struct {
	Feed           string
	Classification *rssos.Classification
	Records        int
	FromCache      bool
}

// Build turns the page at url into a serialized feed. Any cached stage
// short-circuits; failures are recorded in the negative store so repeated
// requests for a broken URL return quickly.
func (p *Pipeline) Build(ctx context.Context, url string) (*Result, error) {
	logger := p.logger().With("request_id", uuid.NewString(), "url", url)
	key := rssos.NormalizeURL(url)

	if p.Caches != nil {
		if feed, ok := p.Caches.Feeds.Get(key); ok {
			logger.Info("feed cache hit")
			return &Result{Feed: feed.(string), FromCache: true}, nil
		}
		if msg, ok := p.Caches.Failures.Get(key); ok {
			return nil, rssos.Errorf(rssos.EUNAVAILABLE, "previous failure cached: %v", msg)
		}
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	page, err := p.page(ctx, key, url)
	if err != nil {
		p.recordFailure(key, err)
		logger.Error("page fetch", "err", err)
		return nil, err
	}

	classification := p.classification(key, page, url)

	records, err := p.Extractor.Extract(ctx, page, classification)
	if err != nil {
		p.recordFailure(key, err)
		logger.Error("extract", "err", err)
		return nil, err
	}

	feed, err := p.Writer.Write(records, rssos.SiteMeta{
		OriginURL: url,
		Archetype: classification.Archetype,
		Platform:  classification.Platform,
	})
	if err != nil {
		p.recordFailure(key, err)
		logger.Error("serialize", "err", err)
		return nil, err
	}

	if p.Caches != nil {
		p.Caches.Feeds.Set(key, feed)
	}
	logger.Info("feed built",
		"archetype", string(classification.Archetype),
		"records", len(records),
	)
	return &Result{
		Feed:           feed,
		Classification: classification,
		Records:        len(records),
	}, nil
}

// page returns the raw HTML for the URL, from cache when possible.
func (p *Pipeline) page(ctx context.Context, key, url string) (string, error) {
	if p.Caches != nil {
		if cached, ok := p.Caches.Pages.Get(key); ok {
			return cached.(string), nil
		}
	}
	page, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if p.Caches != nil {
		p.Caches.Pages.Set(key, page)
	}
	return page, nil
}

// classification returns the page's classification, from cache when
// possible. Classifications are stable site properties, so they use the
// coarsest TTL of the four stores.
func (p *Pipeline) classification(key, page, url string) *rssos.Classification {
	if p.Caches != nil {
		if cached, ok := p.Caches.Classifications.Get(key); ok {
			if c, ok := cached.(*rssos.Classification); ok {
				return c
			}
		}
	}
	c := p.Classifier.Classify(page, url)
	if p.Caches != nil {
		p.Caches.Classifications.Set(key, c)
	}
	return c
}

func (p *Pipeline) recordFailure(key string, err error) {
	if p.Caches != nil {
		p.Caches.Failures.Set(key, rssos.ErrorMessage(err))
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
