package rssos

import "context"

// Fetcher retrieves raw HTML or data payloads from URLs.
// Implementations must set a descriptive client identifier header, honor the
// context deadline, and never retry internally.
type Fetcher interface {
	// Fetch performs a single GET and returns the response body.
	// Non-success status codes are reported as EUNAVAILABLE errors.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases client resources. Must be called when the Fetcher is
	// no longer needed.
	Close() error
}
