package unfurl

// Document is a read-only view of a parsed HTML document. All lookups are
// pure, first-match-wins over document order, and perform no validation of
// attribute values - validation belongs to the extraction layer.
type Document interface {
	// Meta returns the content attribute of the first <meta> element whose
	// name or property attribute equals key. The second result is false if
	// no element matches or the matching element has no content attribute.
	Meta(key string) (string, bool)

	// MetaByAttr is the generalized form of Meta: it matches <meta> elements
	// on an arbitrary attribute (e.g., "itemprop" for Schema.org microdata).
	MetaByAttr(attr, key string) (string, bool)

	// Link returns the href attribute of the first <link> element whose rel
	// attribute equals rel.
	Link(rel string) (string, bool)

	// FirstText returns the inner text of the first element matching the
	// tag selector in document order.
	FirstText(selector string) (string, bool)
}
