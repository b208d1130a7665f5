package extract

import (
	"net/url"
	"strings"

	"github.com/fwojciec/unfurl"
)

// youtubeImageHost is YouTube's dedicated thumbnail storage domain. Player
// pages reference thumbnails under their own origin, but the stable public
// location is the i.ytimg.com CDN with the same path.
const youtubeImageHost = "i.ytimg.com"

// Ensure YouTubeProfile implements unfurl.Profile at compile time.
var _ unfurl.Profile = (*YouTubeProfile)(nil)

// YouTubeProfile overrides generic extraction for YouTube video pages: it
// runs the wrapped engine, then points the resolved image URL at the
// thumbnail storage domain while preserving the path exactly.
type YouTubeProfile struct {
	engine unfurl.Extractor
}

// NewYouTubeProfile creates a YouTubeProfile delegating to the given engine.
func NewYouTubeProfile(engine unfurl.Extractor) *YouTubeProfile {
	return &YouTubeProfile{engine: engine}
}

// Name returns the profile's identifier.
func (p *YouTubeProfile) Name() string {
	return "youtube"
}

// Fits reports whether the URL points at a YouTube property.
func (p *YouTubeProfile) Fits(u *url.URL) bool {
	host := u.Hostname()
	return strings.Contains(host, "youtube.com") || strings.Contains(host, "youtu.be")
}

// Extract runs the generic engine and rewrites the image host. All other
// fields pass through untouched.
func (p *YouTubeProfile) Extract(doc unfurl.Document) (*unfurl.Preview, error) {
	preview, err := p.engine.Extract(doc)
	if err != nil {
		return nil, err
	}

	if preview.ImageURL != nil {
		preview.ImageURL = &url.URL{
			Scheme: "https",
			Host:   youtubeImageHost,
			Path:   preview.ImageURL.Path,
		}
	}

	return preview, nil
}
