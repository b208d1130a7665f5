package mock

import "github.com/fwojciec/unfurl"

var _ unfurl.PreviewEnricher = (*PreviewEnricher)(nil)

// PreviewEnricher is a mock implementation of unfurl.PreviewEnricher.
type PreviewEnricher struct {
	EnrichFn func(rawHTML []byte, p *unfurl.Preview) (*unfurl.Preview, error)
}

func (e *PreviewEnricher) Enrich(rawHTML []byte, p *unfurl.Preview) (*unfurl.Preview, error) {
	return e.EnrichFn(rawHTML, p)
}
