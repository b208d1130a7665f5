package mock

import "github.com/fwojciec/unfurl"

var _ unfurl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of unfurl.Extractor.
type Extractor struct {
	ExtractFn func(doc unfurl.Document) (*unfurl.Preview, error)
}

func (e *Extractor) Extract(doc unfurl.Document) (*unfurl.Preview, error) {
	return e.ExtractFn(doc)
}
