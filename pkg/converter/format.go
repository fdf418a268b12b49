package converter

import (
	"bytes"

	"github.com/Kunde21/markdownfmt/v3/markdown"
	"github.com/yuin/goldmark"
)

// Formatter normalizes Markdown text according to standard conventions:
// spacing, heading styles, list markers. Implementations are treated as
// black boxes; the converter never second-guesses their output.
type Formatter interface {
	Format(md string) (string, error)
}

// markdownFormatter parses text with goldmark and renders it back through
// the markdownfmt renderer. Idempotent on already-normalized input. The
// goldmark instance holds no per-call state and is shared across calls.
type markdownFormatter struct {
	md goldmark.Markdown
}

// NewMarkdownFormatter returns the default Formatter.
func NewMarkdownFormatter() Formatter {
	return &markdownFormatter{
		md: goldmark.New(goldmark.WithRenderer(markdown.NewRenderer())),
	}
}

func (f *markdownFormatter) Format(text string) (string, error) {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
