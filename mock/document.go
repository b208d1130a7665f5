// Package mock provides mock implementations of unfurl interfaces for testing.
package mock

import "github.com/fwojciec/unfurl"

var _ unfurl.Document = (*Document)(nil)

// Document is a mock implementation of unfurl.Document.
type Document struct {
	MetaFn       func(key string) (string, bool)
	MetaByAttrFn func(attr, key string) (string, bool)
	LinkFn       func(rel string) (string, bool)
	FirstTextFn  func(selector string) (string, bool)
}

func (d *Document) Meta(key string) (string, bool) {
	return d.MetaFn(key)
}

func (d *Document) MetaByAttr(attr, key string) (string, bool) {
	return d.MetaByAttrFn(attr, key)
}

func (d *Document) Link(rel string) (string, bool) {
	return d.LinkFn(rel)
}

func (d *Document) FirstText(selector string) (string, bool) {
	return d.FirstTextFn(selector)
}
