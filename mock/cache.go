package mock

import (
	"context"

	"github.com/fwojciec/unfurl"
)

var _ unfurl.PreviewCache = (*PreviewCache)(nil)

// PreviewCache is a mock implementation of unfurl.PreviewCache.
type PreviewCache struct {
	GetFn func(ctx context.Context, url string) (*unfurl.Preview, bool, error)
	PutFn func(ctx context.Context, url string, p *unfurl.Preview) error
}

func (c *PreviewCache) Get(ctx context.Context, url string) (*unfurl.Preview, bool, error) {
	return c.GetFn(ctx, url)
}

func (c *PreviewCache) Put(ctx context.Context, url string, p *unfurl.Preview) error {
	return c.PutFn(ctx, url, p)
}
