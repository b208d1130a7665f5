package mock

import (
	"net/url"

	"github.com/fwojciec/unfurl"
)

var _ unfurl.Profile = (*Profile)(nil)

// Profile is a mock implementation of unfurl.Profile.
type Profile struct {
	ExtractFn func(doc unfurl.Document) (*unfurl.Preview, error)
	FitsFn    func(u *url.URL) bool
	NameFn    func() string
}

func (p *Profile) Extract(doc unfurl.Document) (*unfurl.Preview, error) {
	return p.ExtractFn(doc)
}

func (p *Profile) Fits(u *url.URL) bool {
	return p.FitsFn(u)
}

func (p *Profile) Name() string {
	return p.NameFn()
}
