package unfurl

import "context"

// Fetcher retrieves raw document bytes from URLs. Fetching is an external
// collaborator of the extraction core: its failures (timeouts, non-2xx
// responses) are ordinary I/O errors, not part of the extraction error
// taxonomy.
type Fetcher interface {
	// Fetch retrieves the document bytes for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for batch fetching.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
