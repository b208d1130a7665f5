package unfurl

import "context"

// PreviewCache stores extracted previews keyed by source URL so repeat
// unfurls of the same link skip the fetch+extract cycle.
type PreviewCache interface {
	// Get returns the cached preview for the URL. The bool result is false
	// on a miss (never cached, or the entry has expired).
	Get(ctx context.Context, url string) (*Preview, bool, error)

	// Put stores the preview for the URL, replacing any existing entry.
	Put(ctx context.Context, url string, p *Preview) error
}
