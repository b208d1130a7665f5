// Package goquery implements unfurl.Document on top of PuerkitoBio/goquery.
package goquery

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/unfurl"
)

// Ensure Document implements unfurl.Document at compile time.
var _ unfurl.Document = (*Document)(nil)

// Document wraps a parsed goquery document with the query primitives the
// extraction engine needs. It never mutates the underlying tree and holds no
// state beyond it, so concurrent reads are safe.
type Document struct {
	doc *goquery.Document
}

// FromBytes parses a raw byte buffer into a Document. The buffer must be
// valid UTF-8; this is the only hard failure in the construction path and
// returns an EINVALID error.
func FromBytes(b []byte) (*Document, error) {
	if !utf8.Valid(b) {
		return nil, unfurl.Errorf(unfurl.EINVALID, "document is not valid UTF-8")
	}
	return FromReader(bytes.NewReader(b))
}

// FromString parses an HTML string into a Document.
func FromString(s string) (*Document, error) {
	return FromReader(strings.NewReader(s))
}

// FromReader parses HTML from r into a Document.
func FromReader(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, unfurl.Errorf(unfurl.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Meta returns the content attribute of the first <meta> element whose name
// or property attribute equals key. Both attributes are checked in a single
// document-order scan so first-match-wins holds across conventions that use
// either spelling.
func (d *Document) Meta(key string) (string, bool) {
	return d.findMeta(func(sel *goquery.Selection) bool {
		if v, ok := sel.Attr("name"); ok && v == key {
			return true
		}
		if v, ok := sel.Attr("property"); ok && v == key {
			return true
		}
		return false
	})
}

// MetaByAttr returns the content attribute of the first <meta> element whose
// attr attribute equals key. Matching is exact and case-sensitive.
func (d *Document) MetaByAttr(attr, key string) (string, bool) {
	return d.findMeta(func(sel *goquery.Selection) bool {
		v, ok := sel.Attr(attr)
		return ok && v == key
	})
}

// findMeta scans <meta> elements in document order and returns the content
// attribute of the first element accepted by match. The scan stops at the
// first match even when that element lacks a content attribute - later
// duplicate declarations never take over.
func (d *Document) findMeta(match func(*goquery.Selection) bool) (string, bool) {
	var content string
	var found bool
	d.doc.Find("meta").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !match(sel) {
			return true
		}
		content, found = sel.Attr("content")
		return false
	})
	return content, found
}

// Link returns the href attribute of the first <link> element whose rel
// attribute equals rel.
func (d *Document) Link(rel string) (string, bool) {
	var href string
	var found bool
	d.doc.Find("link").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if v, ok := sel.Attr("rel"); !ok || v != rel {
			return true
		}
		href, found = sel.Attr("href")
		return false
	})
	return href, found
}

// FirstText returns the inner text of the first element matching the
// selector in document order.
func (d *Document) FirstText(selector string) (string, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return sel.Text(), true
}
