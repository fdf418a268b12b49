package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripRemovesImageEmbed(t *testing.T) {
	got := StripBase64Images("before ![](data:image/png;base64,AAA) after")
	assert.Equal(t, "before  after", got)
}

func TestStripRemovesEmbedWithTitleCaseInsensitive(t *testing.T) {
	got := StripBase64Images("![Alt](DATA:IMAGE/PNG;BASE64,AAAB 'title')")
	assert.Equal(t, "", got)
}

func TestStripEmbedTitleVariants(t *testing.T) {
	cases := []string{
		`![a](data:image/jpeg;base64,QUJD "double quoted")`,
		`![a](data:image/jpg;base64,QUJD 'single quoted')`,
		`![a](data:image/webp;base64,QUJD (parenthesized))`,
	}
	for _, in := range cases {
		assert.Equal(t, "", StripBase64Images(in), "input %q", in)
	}
}

func TestStripBareParenthetical(t *testing.T) {
	got := StripBase64Images("link(data:image/gif;base64,CCC)")
	assert.Equal(t, "link()", got)
}

func TestStripRecognizedMimeSet(t *testing.T) {
	for _, mime := range []string{"png", "jpeg", "jpg", "gif", "webp", "svg+xml"} {
		in := "x(data:image/" + mime + ";base64,AAA)y"
		assert.Equal(t, "x()y", StripBase64Images(in), "mime %s", mime)
	}
	// Unrecognized MIME types pass through untouched.
	in := "x(data:image/tiff;base64,AAA)y"
	assert.Equal(t, in, StripBase64Images(in))
}

func TestStripPassthrough(t *testing.T) {
	cases := []string{
		"![x](https://example.com/img.png)",
		"plain text mentioning base64 without parentheses",
		"inline `code` and **bold** stay put",
	}
	for _, in := range cases {
		assert.Equal(t, in, StripBase64Images(in), "input %q", in)
	}
}
