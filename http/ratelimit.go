package http

import (
	"context"
	"net/url"
	"sync"

	"github.com/chemark/rssos"
	"golang.org/x/time/rate"
)

var _ rssos.Fetcher = (*RateLimitedFetcher)(nil)

// RateLimitedFetcher wraps a Fetcher with per-host token-bucket rate
// limiting. Enrichment issues several fetches against one site; the limiter
// bounds the load placed on it while leaving other hosts unaffected.
type RateLimitedFetcher struct {
	next rssos.Fetcher
	rps  float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimitedFetcher creates a rate-limiting decorator with the given
// per-host requests-per-second limit. Each host gets its own limiter with a
// burst of 1.
func NewRateLimitedFetcher(next rssos.Fetcher, rps float64) *RateLimitedFetcher {
	return &RateLimitedFetcher{
		next:     next,
		rps:      rps,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch waits for the host's rate limit, then delegates.
func (f *RateLimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}

	f.mu.Lock()
	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(f.rps), 1)
		f.limiters[host] = limiter
	}
	f.mu.Unlock()

	if err := limiter.Wait(ctx); err != nil {
		return "", rssos.Errorf(rssos.EUNAVAILABLE, "rate limit wait for %s: %v", rawURL, err)
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *RateLimitedFetcher) Close() error {
	return f.next.Close()
}
