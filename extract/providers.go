// Package extract implements the generic metadata extraction engine and the
// profile registry for site-specific overrides.
package extract

import "github.com/fwojciec/unfurl"

// field identifies a canonical metadata field resolved by the engine.
type field int

const (
	fieldTitle field = iota
	fieldDescription
	fieldImage
	fieldURL
)

// Provider tag tables. Each convention is a static key translation from a
// canonical field to the attribute key that provider uses; behavior beyond
// the lookup lives in the query layer.
var (
	openGraphTags = map[field]string{
		fieldTitle:       "og:title",
		fieldDescription: "og:description",
		fieldImage:       "og:image",
		fieldURL:         "og:url",
	}

	twitterTags = map[field]string{
		fieldTitle:       "twitter:title",
		fieldDescription: "twitter:description",
		fieldImage:       "twitter:image",
	}

	// Schema.org microdata names its title field "name" and matches on the
	// itemprop attribute rather than name/property.
	schemaTags = map[field]string{
		fieldTitle:       "name",
		fieldDescription: "description",
		fieldImage:       "image",
	}
)

const schemaAttr = "itemprop"

// openGraph looks up an Open Graph meta tag for the field.
func openGraph(doc unfurl.Document, f field) (string, bool) {
	key, ok := openGraphTags[f]
	if !ok {
		return "", false
	}
	return doc.Meta(key)
}

// twitter looks up a Twitter Card meta tag for the field.
func twitter(doc unfurl.Document, f field) (string, bool) {
	key, ok := twitterTags[f]
	if !ok {
		return "", false
	}
	return doc.Meta(key)
}

// schema looks up a Schema.org microdata meta tag for the field.
func schema(doc unfurl.Document, f field) (string, bool) {
	key, ok := schemaTags[f]
	if !ok {
		return "", false
	}
	return doc.MetaByAttr(schemaAttr, key)
}
