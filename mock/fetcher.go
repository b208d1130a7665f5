package mock

import (
	"context"

	"github.com/fwojciec/unfurl"
)

var _ unfurl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of unfurl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ unfurl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of unfurl.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
