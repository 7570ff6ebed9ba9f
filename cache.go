package rssos

// Cache is a narrow key-value contract over a bounded, time-expiring store.
// Keys are derived from normalized URLs (see NormalizeURL). The core never
// constructs caches itself; they are injected collaborators.
type Cache interface {
	// Get returns the cached value and whether the key was present and
	// unexpired.
	Get(key string) (any, bool)

	// Set stores a value under the key with the store's configured TTL.
	Set(key string, value any)

	// Has reports whether the key is present and unexpired.
	Has(key string) bool

	// Delete removes the key if present.
	Delete(key string)
}

// Caches bundles the four independent stores used by the pipeline. Each has
// its own TTL: raw pages expire fastest, classifications slowest.
type Caches struct {
	// Pages holds raw fetched HTML keyed by normalized URL.
	Pages Cache

	// Classifications holds *Classification values keyed by normalized URL.
	Classifications Cache

	// Feeds holds final serialized feed documents keyed by normalized URL.
	Feeds Cache

	// Failures is the negative-result store: it records URLs whose
	// processing failed so repeated requests short-circuit.
	Failures Cache
}
