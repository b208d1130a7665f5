package extract

import (
	"net/url"

	"github.com/fwojciec/unfurl"
)

// Ensure Registry implements unfurl.ProfileRegistry at compile time.
var _ unfurl.ProfileRegistry = (*Registry)(nil)

// Registry holds an ordered collection of site profiles. For a given source
// URL, the first profile whose Fits returns true is selected; when none fits
// (or no URL is available) the generic fallback extractor is used.
//
// Adding a profile is a data change, not a type-hierarchy change: register
// any value implementing unfurl.Profile.
type Registry struct {
	fallback unfurl.Extractor
	profiles []unfurl.Profile
}

// NewRegistry creates a Registry with the given generic fallback extractor.
func NewRegistry(fallback unfurl.Extractor) *Registry {
	return &Registry{fallback: fallback}
}

// Register appends a profile. Registration order is priority order.
func (r *Registry) Register(p unfurl.Profile) {
	r.profiles = append(r.profiles, p)
}

// For returns the extractor for the source URL: the first fitting profile,
// or the generic fallback. A nil URL always selects the fallback.
func (r *Registry) For(u *url.URL) unfurl.Extractor {
	if u != nil {
		for _, p := range r.profiles {
			if p.Fits(u) {
				return p
			}
		}
	}
	return r.fallback
}

// List returns the names of all registered profiles in priority order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name())
	}
	return names
}
