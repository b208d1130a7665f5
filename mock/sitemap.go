package mock

import (
	"context"

	"github.com/fwojciec/unfurl"
)

var _ unfurl.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of unfurl.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *unfurl.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *unfurl.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
