package mock

import (
	"net/url"

	"github.com/fwojciec/unfurl"
)

var _ unfurl.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of unfurl.ProfileRegistry.
type ProfileRegistry struct {
	RegisterFn func(p unfurl.Profile)
	ForFn      func(u *url.URL) unfurl.Extractor
	ListFn     func() []string
}

func (r *ProfileRegistry) Register(p unfurl.Profile) {
	r.RegisterFn(p)
}

func (r *ProfileRegistry) For(u *url.URL) unfurl.Extractor {
	return r.ForFn(u)
}

func (r *ProfileRegistry) List() []string {
	return r.ListFn()
}
