package unfurl

import "net/url"

// Preview holds the metadata extracted from a single page. Every field is
// independently optional: a zero value (or nil ImageURL) means the document
// did not declare that piece of metadata. Absence is a valid terminal state,
// not an error.
type Preview struct {
	Title       string
	Description string
	Domain      string
	ImageURL    *url.URL
}

// ImageURLString returns the string form of ImageURL, or "" if no image
// was resolved.
func (p *Preview) ImageURLString() string {
	if p.ImageURL == nil {
		return ""
	}
	return p.ImageURL.String()
}

// Extractor produces a Preview from a parsed document.
// The document is never mutated or retained.
type Extractor interface {
	Extract(doc Document) (*Preview, error)
}

// PreviewEnricher fills empty fields of a preview from the raw document.
// Fields the extractor already resolved are never overwritten.
type PreviewEnricher interface {
	Enrich(rawHTML []byte, preview *Preview) (*Preview, error)
}
