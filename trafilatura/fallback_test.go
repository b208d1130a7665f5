package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/unfurl"
	"github.com/fwojciec/unfurl/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fallback implements unfurl.PreviewEnricher at compile time.
var _ unfurl.PreviewEnricher = (*trafilatura.Fallback)(nil)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Docs</title>
</head>
<body>
<nav>Navigation here</nav>
<article>
<h1>Getting Started</h1>
<p>This guide walks you through setting up the project from scratch.</p>
<p>Later sections cover configuration and deployment.</p>
</article>
<footer>Footer content</footer>
</body>
</html>`

func TestFallback_Enrich(t *testing.T) {
	t.Parallel()

	t.Run("fills missing title and description", func(t *testing.T) {
		t.Parallel()

		fb := trafilatura.NewFallback()
		enriched, err := fb.Enrich([]byte(articleHTML), &unfurl.Preview{})

		require.NoError(t, err)
		assert.NotEmpty(t, enriched.Title)
		assert.NotEmpty(t, enriched.Description)
	})

	t.Run("never overwrites resolved fields", func(t *testing.T) {
		t.Parallel()

		fb := trafilatura.NewFallback()
		enriched, err := fb.Enrich([]byte(articleHTML), &unfurl.Preview{
			Title:       "Declared Title",
			Description: "Declared description.",
		})

		require.NoError(t, err)
		assert.Equal(t, "Declared Title", enriched.Title)
		assert.Equal(t, "Declared description.", enriched.Description)
	})

	t.Run("fills only the missing field", func(t *testing.T) {
		t.Parallel()

		fb := trafilatura.NewFallback()
		enriched, err := fb.Enrich([]byte(articleHTML), &unfurl.Preview{
			Title: "Declared Title",
		})

		require.NoError(t, err)
		assert.Equal(t, "Declared Title", enriched.Title)
		assert.NotEmpty(t, enriched.Description)
	})

	t.Run("does not mutate the input preview", func(t *testing.T) {
		t.Parallel()

		fb := trafilatura.NewFallback()
		in := &unfurl.Preview{}
		enriched, err := fb.Enrich([]byte(articleHTML), in)

		require.NoError(t, err)
		assert.Empty(t, in.Title)
		assert.NotSame(t, in, enriched)
	})

	t.Run("nil preview is rejected", func(t *testing.T) {
		t.Parallel()

		fb := trafilatura.NewFallback()
		_, err := fb.Enrich([]byte(articleHTML), nil)

		require.Error(t, err)
		assert.Equal(t, unfurl.EINVALID, unfurl.ErrorCode(err))
	})

	t.Run("preserves non-text fields", func(t *testing.T) {
		t.Parallel()

		fb := trafilatura.NewFallback()
		enriched, err := fb.Enrich([]byte(articleHTML), &unfurl.Preview{
			Domain: "example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "example.com", enriched.Domain)
	})
}
