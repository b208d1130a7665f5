// Package rod provides a browser-based implementation of unfurl.Fetcher
// using Chrome automation. SPA pages frequently inject their Open Graph tags
// client-side, so a plain HTTP fetch sees a head without metadata; rendering
// the page first recovers it.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/unfurl"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements unfurl.Fetcher at compile time.
var _ unfurl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using headless Chrome.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser     *rod.Browser
	launcher    *launcher.Launcher
	renderDelay time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRenderDelay adds a fixed wait after page load before the HTML is
// captured. Some pages populate meta tags asynchronously after load.
func WithRenderDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.renderDelay = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML bytes.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	if f.renderDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.renderDelay):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	return []byte(html), nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
