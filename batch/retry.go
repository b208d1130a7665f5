package batch

import (
	"context"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry attempts a fetch with backoff. It makes len(delays)+1 total
// attempts, sleeping delays[i] after attempt i fails. A canceled context
// stops retrying immediately.
func fetchWithRetry(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) ([]byte, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		body, err := fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt >= len(delays) {
			return nil, lastErr
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}
