package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/unfurl"
	"github.com/fwojciec/unfurl/batch"
	main "github.com/fwojciec/unfurl/cmd/unfurl"
	"github.com/fwojciec/unfurl/extract"
	"github.com/fwojciec/unfurl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(t *testing.T, fetch func(ctx context.Context, url string) ([]byte, error)) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Previewer: &batch.Previewer{
			Fetcher:     &mock.Fetcher{FetchFn: fetch},
			Registry:    extract.NewRegistry(extract.NewEngine()),
			RetryDelays: []time.Duration{},
		},
	}
	return deps, &stdout, &stderr
}

func TestPreviewCmd_Run(t *testing.T) {
	t.Parallel()

	page := []byte(`<html><head>` +
		`<meta property="og:title" content="Example Page">` +
		`<meta property="og:description" content="An example.">` +
		`<meta property="og:url" content="https://example.com/page">` +
		`</head></html>`)

	t.Run("writes previews as text", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t, func(ctx context.Context, url string) ([]byte, error) {
			return page, nil
		})

		cmd := &main.PreviewCmd{URLs: []string{"https://example.com/page"}}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "https://example.com/page")
		assert.Contains(t, output, "title: Example Page")
		assert.Contains(t, output, "description: An example.")
		assert.Contains(t, output, "domain: example.com")
	})

	t.Run("writes previews as JSON", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t, func(ctx context.Context, url string) ([]byte, error) {
			return page, nil
		})

		cmd := &main.PreviewCmd{
			URLs: []string{"https://example.com/page"},
			JSON: true,
		}
		require.NoError(t, cmd.Run(deps))

		var records []map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "https://example.com/page", records[0]["url"])
		assert.Equal(t, "Example Page", records[0]["title"])
	})

	t.Run("reports per-URL failures and keeps going", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps(t, func(ctx context.Context, url string) ([]byte, error) {
			if url == "https://example.com/bad" {
				return nil, errors.New("boom")
			}
			return page, nil
		})

		cmd := &main.PreviewCmd{URLs: []string{
			"https://example.com/bad",
			"https://example.com/good",
		}}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "skip https://example.com/bad")
		output := stdout.String()
		assert.Contains(t, output, "error: boom")
		assert.Contains(t, output, "title: Example Page")
	})

	t.Run("previews sitemap URLs", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps(t, func(ctx context.Context, url string) ([]byte, error) {
			return page, nil
		})
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *unfurl.URLFilter) ([]string, error) {
				assert.Equal(t, "https://example.com", baseURL)
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		cmd := &main.PreviewCmd{
			URLs:    []string{"https://example.com"},
			Sitemap: true,
		}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "Found 2 URLs")
		assert.Contains(t, stdout.String(), "https://example.com/a")
		assert.Contains(t, stdout.String(), "https://example.com/b")
	})

	t.Run("sitemap discovery failure stops the run", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t, func(ctx context.Context, url string) ([]byte, error) {
			t.Error("fetch should not be called")
			return nil, nil
		})
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *unfurl.URLFilter) ([]string, error) {
				return nil, errors.New("no sitemap")
			},
		}

		cmd := &main.PreviewCmd{
			URLs:    []string{"https://example.com"},
			Sitemap: true,
		}
		assert.Error(t, cmd.Run(deps))
	})

	t.Run("empty sitemap is not an error", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps(t, func(ctx context.Context, url string) ([]byte, error) {
			t.Error("fetch should not be called")
			return nil, nil
		})
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *unfurl.URLFilter) ([]string, error) {
				return []string{}, nil
			},
		}

		cmd := &main.PreviewCmd{
			URLs:    []string{"https://example.com"},
			Sitemap: true,
		}
		require.NoError(t, cmd.Run(deps))

		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "No URLs found")
	})
}
