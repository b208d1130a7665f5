// Package trafilatura enriches previews with article extraction. It is a
// last resort behind the metadata lookups: it only supplies a title or
// description when the page declared none.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/unfurl"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Fallback implements unfurl.PreviewEnricher at compile time.
var _ unfurl.PreviewEnricher = (*Fallback)(nil)

// maxDescriptionLen caps descriptions lifted from body text.
const maxDescriptionLen = 300

// Fallback fills missing preview fields from the main article content.
type Fallback struct{}

// NewFallback creates a new Fallback.
func NewFallback() *Fallback {
	return &Fallback{}
}

// Enrich returns a copy of preview with an empty Title or Description filled
// from article extraction over rawHTML. Fields that are already set are left
// untouched, and a preview with both fields set is returned as is.
func (f *Fallback) Enrich(rawHTML []byte, preview *unfurl.Preview) (*unfurl.Preview, error) {
	if preview == nil {
		return nil, unfurl.Errorf(unfurl.EINVALID, "preview is required")
	}
	if preview.Title != "" && preview.Description != "" {
		return preview, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	result, err := trafilatura.Extract(bytes.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	enriched := *preview
	if enriched.Title == "" {
		enriched.Title = strings.TrimSpace(result.Metadata.Title)
	}
	if enriched.Description == "" {
		desc := strings.TrimSpace(result.Metadata.Description)
		if desc == "" {
			desc = leadingText(result.ContentText)
		}
		enriched.Description = desc
	}
	return &enriched, nil
}

// leadingText returns the first non-empty line of extracted body text,
// truncated to maxDescriptionLen runes.
func leadingText(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > maxDescriptionLen {
			return string(runes[:maxDescriptionLen])
		}
		return line
	}
	return ""
}
