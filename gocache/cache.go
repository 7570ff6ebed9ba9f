// Package gocache provides the bounded, TTL-expiring cache stores consumed
// by the pipeline, backed by patrickmn/go-cache.
package gocache

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/chemark/rssos"
	gocache "github.com/patrickmn/go-cache"
)

// Default TTLs for the four stores. Raw pages churn fastest;
// classifications are stable properties of a site and live longest.
const (
	DefaultPageTTL           = 10 * time.Minute
	DefaultClassificationTTL = 24 * time.Hour
	DefaultFeedTTL           = 1 * time.Hour
	DefaultFailureTTL        = 1 * time.Hour
)

// DefaultMaxEntries bounds each store's entry count.
const DefaultMaxEntries = 1000

// Ensure Store implements rssos.Cache at compile time.
var _ rssos.Cache = (*Store)(nil)

// Store is one bounded, TTL-expiring key-value store.
type Store struct {
	cache      *gocache.Cache
	maxEntries int
}

// NewStore creates a store with the given TTL and entry bound. Expired
// entries are purged in the background at twice the TTL.
func NewStore(ttl time.Duration, maxEntries int) *Store {
	return &Store{
		cache:      gocache.New(ttl, 2*ttl),
		maxEntries: maxEntries,
	}
}

// Get returns the cached value and whether the key was present and
// unexpired.
func (s *Store) Get(key string) (any, bool) {
	return s.cache.Get(digest(key))
}

// Set stores a value under the key. When the store is at its entry bound
// and the key is new, expired entries are flushed first; if the store is
// still full the write is dropped rather than growing unbounded.
func (s *Store) Set(key string, value any) {
	k := digest(key)
	if _, exists := s.cache.Get(k); !exists && s.cache.ItemCount() >= s.maxEntries {
		s.cache.DeleteExpired()
		if s.cache.ItemCount() >= s.maxEntries {
			return
		}
	}
	s.cache.SetDefault(k, value)
}

// Has reports whether the key is present and unexpired.
func (s *Store) Has(key string) bool {
	_, ok := s.cache.Get(digest(key))
	return ok
}

// Delete removes the key if present.
func (s *Store) Delete(key string) {
	s.cache.Delete(digest(key))
}

// digest maps an arbitrary key to a fixed-width xxhash hex form, so long
// URLs stay cheap to index.
func digest(key string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))
}

// NewCaches constructs the four pipeline stores with their default TTLs.
func NewCaches() *rssos.Caches {
	return &rssos.Caches{
		Pages:           NewStore(DefaultPageTTL, DefaultMaxEntries),
		Classifications: NewStore(DefaultClassificationTTL, DefaultMaxEntries),
		Feeds:           NewStore(DefaultFeedTTL, DefaultMaxEntries),
		Failures:        NewStore(DefaultFailureTTL, DefaultMaxEntries),
	}
}

// Key derives the store-internal key for a URL: the xxhash digest of its
// normalized form. Exposed for tests and debugging.
func Key(rawURL string) string {
	return digest(rssos.NormalizeURL(rawURL))
}
