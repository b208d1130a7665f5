package bloom_test

import (
	"testing"

	"github.com/fwojciec/unfurl/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://example.com/a"))

	f.Add("https://example.com/a")

	assert.True(t, f.Test("https://example.com/a"))
	assert.False(t, f.Test("https://example.com/b"))
}

func TestFilter_AddIfNew(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.True(t, f.AddIfNew("https://example.com/a"))
	assert.False(t, f.AddIfNew("https://example.com/a"))
	assert.True(t, f.AddIfNew("https://example.com/b"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	for _, u := range []string{"a", "b", "c"} {
		f.Add(u)
	}

	assert.InDelta(t, 3, float64(f.EstimatedCount()), 1)
}
