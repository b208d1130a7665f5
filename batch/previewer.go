package batch

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/unfurl"
	"github.com/fwojciec/unfurl/bloom"
	"github.com/fwojciec/unfurl/goquery"
	"golang.org/x/sync/errgroup"
)

// falsePositiveRate sizes the dedup filter; at this rate a batch of tens of
// thousands of URLs loses at most a handful to false positives.
const falsePositiveRate = 0.001

// Result holds the outcome of previewing a single URL.
type Result struct {
	URL     string
	Preview *unfurl.Preview
	Err     error
	Cached  bool
}

// Progress reports batch progress as URLs complete.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as URLs are processed. It may be called from
// multiple goroutines.
type ProgressFunc func(Progress)

// Previewer fetches and extracts previews for batches of URLs.
type Previewer struct {
	// Fetcher retrieves document bytes. Required.
	Fetcher unfurl.Fetcher

	// Registry selects the extractor per source URL. Required.
	Registry unfurl.ProfileRegistry

	// Cache, when set, is consulted before fetching and updated after a
	// successful extraction.
	Cache unfurl.PreviewCache

	// Limiter, when set, throttles requests per domain.
	Limiter unfurl.DomainLimiter

	// Enricher, when set, fills a missing title or description from the
	// raw document after extraction. Enrichment failures leave the
	// preview unchanged.
	Enricher unfurl.PreviewEnricher

	// Concurrency is the number of URLs processed in parallel.
	// Defaults to 3 when zero.
	Concurrency int

	// RetryDelays overrides the fetch retry backoff schedule.
	// Defaults to DefaultRetryDelays when nil.
	RetryDelays []time.Duration
}

// Preview fetches and extracts a single URL.
func (p *Previewer) Preview(ctx context.Context, rawURL string) (*unfurl.Preview, error) {
	preview, _, err := p.preview(ctx, rawURL)
	return preview, err
}

// preview resolves one URL; the bool result reports a cache hit.
func (p *Previewer) preview(ctx context.Context, rawURL string) (*unfurl.Preview, bool, error) {
	src, err := url.Parse(rawURL)
	if err != nil {
		return nil, false, unfurl.Errorf(unfurl.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	if p.Cache != nil {
		if cached, ok, err := p.Cache.Get(ctx, rawURL); err == nil && ok {
			return cached, true, nil
		}
	}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, src.Hostname()); err != nil {
			return nil, false, err
		}
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	body, err := fetchWithRetry(ctx, rawURL, p.Fetcher.Fetch, delays)
	if err != nil {
		return nil, false, err
	}

	doc, err := goquery.FromBytes(body)
	if err != nil {
		return nil, false, err
	}

	preview, err := p.Registry.For(src).Extract(doc)
	if err != nil {
		return nil, false, err
	}

	if p.Enricher != nil && (preview.Title == "" || preview.Description == "") {
		if enriched, err := p.Enricher.Enrich(body, preview); err == nil {
			preview = enriched
		}
	}

	if p.Cache != nil {
		_ = p.Cache.Put(ctx, rawURL, preview)
	}

	return preview, false, nil
}

// PreviewAll previews every URL concurrently. Duplicate URLs are dropped;
// results come back in input order, one per unique URL. Per-URL failures are
// recorded in the Result, not returned: only context cancellation fails the
// whole batch.
func (p *Previewer) PreviewAll(ctx context.Context, urls []string, progress ProgressFunc) ([]Result, error) {
	unique := dedupe(urls)
	results := make([]Result, len(unique))
	total := len(unique)

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, rawURL := range unique {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			preview, cached, err := p.preview(gctx, rawURL)
			results[i] = Result{
				URL:     rawURL,
				Preview: preview,
				Err:     err,
				Cached:  cached,
			}

			if progress != nil {
				progress(Progress{
					URL:       rawURL,
					Completed: int(completed.Add(1)),
					Total:     total,
					Err:       err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// dedupe drops repeated URLs, preserving first-occurrence order.
func dedupe(urls []string) []string {
	seen := bloom.NewFilter(uint(max(len(urls), 1)), falsePositiveRate)
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.AddIfNew(u) {
			out = append(out, u)
		}
	}
	return out
}
