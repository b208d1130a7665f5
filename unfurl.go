// Package unfurl extracts link-preview metadata (title, description,
// representative image, domain) from HTML documents. It resolves each field
// through a prioritized waterfall of metadata conventions (Open Graph,
// Twitter Card, Schema.org microdata, bare HTML elements) and supports
// per-site override profiles for domains that need special handling.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package unfurl
