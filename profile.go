package unfurl

import "net/url"

// Profile is a site-specific override of generic extraction. A profile pairs
// a URL predicate with an extractor that typically delegates to the generic
// engine and then post-processes the result (e.g., rewriting an image host).
// Profiles must not mutate the document; they may only transform the
// resulting Preview.
type Profile interface {
	Extractor

	// Fits reports whether this profile applies to the given source URL.
	Fits(u *url.URL) bool

	// Name returns the profile's identifier (e.g., "youtube").
	Name() string
}

// ProfileRegistry holds an ordered collection of profiles and selects at
// most one per extraction.
type ProfileRegistry interface {
	// Register appends a profile. Profiles are consulted in registration
	// order; the first whose Fits returns true wins.
	Register(p Profile)

	// For returns the extractor to use for the given source URL: the first
	// fitting profile, or the generic fallback when u is nil or no profile
	// fits. Never returns nil.
	For(u *url.URL) Extractor

	// List returns the names of all registered profiles in order.
	List() []string
}
