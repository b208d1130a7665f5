package extract

import (
	"net"
	"net/url"

	"github.com/fwojciec/unfurl"
)

// Ensure Engine implements unfurl.Extractor at compile time.
var _ unfurl.Extractor = (*Engine)(nil)

// Engine resolves each preview field through a fixed-order waterfall of
// sources, committing to the first present value. The order encodes a trust
// ranking: structured metadata > social-card metadata > semantic markup >
// raw document content. Engine is stateless and safe for concurrent use.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Extract builds a Preview from the document. Extraction never fails: any
// field that cannot be resolved is left at its zero value.
func (e *Engine) Extract(doc unfurl.Document) (*unfurl.Preview, error) {
	return &unfurl.Preview{
		Title:       e.title(doc),
		Description: e.description(doc),
		Domain:      e.domain(doc),
		ImageURL:    e.imageURL(doc),
	}, nil
}

// source is a single waterfall candidate.
type source func(unfurl.Document) (string, bool)

// firstOf returns the first present value from the sources, in order.
func firstOf(doc unfurl.Document, sources ...source) string {
	for _, s := range sources {
		if v, ok := s(doc); ok {
			return v
		}
	}
	return ""
}

func (e *Engine) title(doc unfurl.Document) string {
	return firstOf(doc,
		func(d unfurl.Document) (string, bool) { return openGraph(d, fieldTitle) },
		func(d unfurl.Document) (string, bool) { return twitter(d, fieldTitle) },
		func(d unfurl.Document) (string, bool) { return schema(d, fieldTitle) },
		func(d unfurl.Document) (string, bool) { return d.FirstText("title") },
		func(d unfurl.Document) (string, bool) { return d.FirstText("h1") },
		func(d unfurl.Document) (string, bool) { return d.FirstText("h2") },
	)
}

func (e *Engine) description(doc unfurl.Document) string {
	return firstOf(doc,
		func(d unfurl.Document) (string, bool) { return openGraph(d, fieldDescription) },
		func(d unfurl.Document) (string, bool) { return twitter(d, fieldDescription) },
		func(d unfurl.Document) (string, bool) { return schema(d, fieldDescription) },
		func(d unfurl.Document) (string, bool) { return d.Meta("description") },
		func(d unfurl.Document) (string, bool) { return d.FirstText("p") },
	)
}

// imageURL resolves the representative image. A candidate that is not an
// absolute URL is skipped and the waterfall continues; a malformed value
// never aborts extraction.
func (e *Engine) imageURL(doc unfurl.Document) *url.URL {
	sources := []source{
		func(d unfurl.Document) (string, bool) { return openGraph(d, fieldImage) },
		func(d unfurl.Document) (string, bool) { return d.Link("image_src") },
		func(d unfurl.Document) (string, bool) { return schema(d, fieldImage) },
		func(d unfurl.Document) (string, bool) { return twitter(d, fieldImage) },
	}
	for _, s := range sources {
		raw, ok := s(doc)
		if !ok {
			continue
		}
		if u := parseAbsoluteURL(raw); u != nil {
			return u
		}
	}
	return nil
}

// domain resolves the page's registrable domain from the canonical link or
// the og:url tag. Candidates without a parsable host fall through.
func (e *Engine) domain(doc unfurl.Document) string {
	sources := []source{
		func(d unfurl.Document) (string, bool) { return d.Link("canonical") },
		func(d unfurl.Document) (string, bool) { return openGraph(d, fieldURL) },
	}
	for _, s := range sources {
		raw, ok := s(doc)
		if !ok {
			continue
		}
		if host := domainFromString(raw); host != "" {
			return host
		}
	}
	return ""
}

// parseAbsoluteURL parses raw as an absolute URL (scheme and host required).
// Relative URLs are treated as unresolvable: the engine never resolves them
// against a base, matching the documented extraction semantics.
func parseAbsoluteURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	if !u.IsAbs() || u.Host == "" {
		return nil
	}
	return u
}

// domainFromString extracts the host component of raw, stripping scheme,
// port, path, and query. IP-only authorities have no registrable domain and
// yield "".
func domainFromString(raw string) string {
	u := parseAbsoluteURL(raw)
	if u == nil {
		return ""
	}
	host := u.Hostname()
	if net.ParseIP(host) != nil {
		return ""
	}
	return host
}
