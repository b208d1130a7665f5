// Package bloom provides URL deduplication for batch preview runs using
// Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for URL deduplication. A false positive drops
// a URL from a batch; a false negative never happens, so a URL is previewed
// at most once plus the configured error rate.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a URL to the filter.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might be in the filter.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// AddIfNew adds the URL and reports whether it was new. Returns false when
// the URL was (probably) already present.
func (f *Filter) AddIfNew(url string) bool {
	return !f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
