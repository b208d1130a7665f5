package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/unfurl"
)

// Ensure SitemapService implements unfurl.SitemapService.
var _ unfurl.SitemapService = (*SitemapService)(nil)

// SitemapService discovers URLs from website sitemaps via HTTP. It feeds
// batch preview runs that want one preview per published page.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all URLs from a site's sitemap.
// Returns an empty slice (not nil) if no sitemaps are found.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *unfurl.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, unfurl.Errorf(unfurl.EINVALID, "invalid base URL: %v", err)
	}

	sitemaps := s.sitemapLocations(ctx, base)
	if len(sitemaps) == 0 {
		return []string{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var urls []string

	var walk func(sitemapURL string) error
	walk = func(sitemapURL string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if seenSitemaps[sitemapURL] {
			return nil
		}
		seenSitemaps[sitemapURL] = true

		body, err := s.get(ctx, sitemapURL)
		if err != nil {
			return err
		}
		defer body.Close()

		doc := etree.NewDocument()
		if _, err := doc.ReadFrom(body); err != nil {
			return fmt.Errorf("parsing sitemap XML: %w", err)
		}
		root := doc.Root()
		if root == nil {
			return fmt.Errorf("empty sitemap XML")
		}

		// A sitemap index nests further sitemaps; a urlset lists pages.
		if root.Tag == "sitemapindex" {
			for _, loc := range locValues(root, "sitemap") {
				if err := walk(loc); err != nil {
					return err
				}
			}
			return nil
		}

		for _, loc := range locValues(root, "url") {
			if seenURLs[loc] || !filter.Match(loc) {
				continue
			}
			seenURLs[loc] = true
			urls = append(urls, loc)
		}
		return nil
	}

	for _, sitemapURL := range sitemaps {
		if err := walk(sitemapURL); err != nil {
			return nil, err
		}
	}

	if urls == nil {
		return []string{}, nil
	}
	return urls, nil
}

// locValues returns the trimmed <loc> text of every child element with the
// given tag.
func locValues(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// sitemapLocations finds sitemap URLs for the site: Sitemap directives in
// robots.txt first, then the conventional /sitemap.xml location.
func (s *SitemapService) sitemapLocations(ctx context.Context, base *url.URL) []string {
	root := *base
	root.Path = ""

	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps := s.sitemapsFromRobots(ctx, robotsURL.String()); len(sitemaps) > 0 {
		return sitemaps
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	if s.exists(ctx, fallback.String()) {
		return []string{fallback.String()}
	}
	return nil
}

// sitemapsFromRobots extracts Sitemap: directives from robots.txt.
// Any fetch or read failure is treated as "no directives".
func (s *SitemapService) sitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			continue
		}
		if v := strings.TrimSpace(line[len("sitemap:"):]); v != "" {
			sitemaps = append(sitemaps, v)
		}
	}
	if scanner.Err() != nil {
		return nil
	}
	return sitemaps
}

// get fetches a URL and returns the response body.
func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}

// exists checks if a URL answers 200 OK to a HEAD request.
func (s *SitemapService) exists(ctx context.Context, targetURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
