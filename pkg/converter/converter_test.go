package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughFormatter stands in for the external Markdown formatter so
// dispatch and cleanup behavior can be asserted deterministically.
type passthroughFormatter struct{}

func (passthroughFormatter) Format(md string) (string, error) {
	return md, nil
}

type failingFormatter struct {
	err error
}

func (f failingFormatter) Format(md string) (string, error) {
	return "", f.err
}

func TestConvertUnsupportedExtension(t *testing.T) {
	c := New()

	_, err := c.Convert([]byte("irrelevant"), ".txt")
	require.Error(t, err)

	var uerr *UnsupportedFileExtensionError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ".txt", uerr.Extension)
	assert.Equal(t, []string{".docx", ".pdf"}, uerr.Supported)
	assert.Contains(t, err.Error(), ".pdf")
	assert.Contains(t, err.Error(), ".docx")
}

func TestConvertMatchesExtensionExactly(t *testing.T) {
	c := New()

	_, err := c.Convert([]byte("irrelevant"), ".PDF")

	var uerr *UnsupportedFileExtensionError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ".PDF", uerr.Extension)
}

func TestConvertDispatchesRegisteredRoute(t *testing.T) {
	c := New(
		converterRoute(".txt", "hi\n\n\n\n\nend"),
		WithFormatter(passthroughFormatter{}),
	)

	out, err := c.Convert([]byte("ignored"), ".txt")
	require.NoError(t, err)
	assert.Equal(t, "hi\n\nend\n", out)
}

func TestConvertPropagatesRouteError(t *testing.T) {
	sentinel := errors.New("corrupt stream")
	c := New(WithRoute(".txt", func(data []byte) (string, error) {
		return "", sentinel
	}))

	_, err := c.Convert(nil, ".txt")
	require.ErrorIs(t, err, sentinel)
}

func TestConvertPropagatesFormatterError(t *testing.T) {
	sentinel := errors.New("formatter broke")
	c := New(
		converterRoute(".txt", "raw"),
		WithFormatter(failingFormatter{err: sentinel}),
	)

	_, err := c.Convert(nil, ".txt")
	require.ErrorIs(t, err, sentinel)
}

func TestWithStrategyReplacesDefaultEntirely(t *testing.T) {
	c := New(
		converterRoute(".txt", "hi there\n\n\nhi"),
		WithFormatter(passthroughFormatter{}),
		WithStrategy(Strategy{{Pattern: "hi", Replacement: "bye"}}),
	)

	out, err := c.Convert(nil, ".txt")
	require.NoError(t, err)
	// The custom rule ran; the default newline collapsing did not.
	assert.Equal(t, "bye there\n\n\nbye\n", out)
}

func TestWithRouteOverridesBuiltin(t *testing.T) {
	c := New(
		converterRoute(".pdf", "override"),
		WithFormatter(passthroughFormatter{}),
	)

	out, err := c.Convert([]byte("not a real pdf"), ".pdf")
	require.NoError(t, err)
	assert.Equal(t, "override\n", out)
}

func converterRoute(ext, raw string) Option {
	return WithRoute(ext, func(data []byte) (string, error) {
		return raw, nil
	})
}
