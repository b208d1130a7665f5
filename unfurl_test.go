package unfurl_test

import (
	"errors"
	"net/url"
	"regexp"
	"testing"

	"github.com/fwojciec/unfurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := unfurl.Errorf(unfurl.EINVALID, "document is not valid %s", "UTF-8")

	assert.Equal(t, unfurl.EINVALID, unfurl.ErrorCode(err))
	assert.Equal(t, "document is not valid UTF-8", unfurl.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, unfurl.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unfurl.EINTERNAL, unfurl.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, unfurl.ErrorMessage(nil))
}

func TestPreview_ImageURLString(t *testing.T) {
	t.Parallel()

	t.Run("nil image URL yields empty string", func(t *testing.T) {
		t.Parallel()

		p := &unfurl.Preview{}
		assert.Empty(t, p.ImageURLString())
	})

	t.Run("returns string form of the URL", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse("https://example.com/img.png?v=1")
		require.NoError(t, err)

		p := &unfurl.Preview{ImageURL: u}
		assert.Equal(t, "https://example.com/img.png?v=1", p.ImageURLString())
	})
}

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter matches everything", func(t *testing.T) {
		t.Parallel()

		var f *unfurl.URLFilter
		assert.True(t, f.Match("https://example.com/anything"))
	})

	t.Run("include patterns restrict matches", func(t *testing.T) {
		t.Parallel()

		f := &unfurl.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/blog/`)},
		}
		assert.True(t, f.Match("https://example.com/blog/post"))
		assert.False(t, f.Match("https://example.com/docs/page"))
	})

	t.Run("exclude is applied after include", func(t *testing.T) {
		t.Parallel()

		f := &unfurl.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/blog/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/blog/drafts/`)},
		}
		assert.True(t, f.Match("https://example.com/blog/post"))
		assert.False(t, f.Match("https://example.com/blog/drafts/wip"))
	})
}
