package extract

import (
	"bytes"
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/nguyenthenguyen/docx"
)

// Office converts office-document byte streams to raw Markdown. The input
// is a bare byte stream with no filename, so callers must pass an explicit
// extension hint. The handle holds no per-call state and is safe to share
// across goroutines.
type Office struct {
	html *md.Converter
}

// NewOffice creates a reusable office-document converter.
func NewOffice() *Office {
	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.Table())
	return &Office{html: conv}
}

// Convert interprets data according to the extension hint and returns raw
// Markdown. Unknown hints fail; they never fall back to plain text.
func (o *Office) Convert(data []byte, ext string) (string, error) {
	switch ext {
	case ".docx":
		return o.convertDocx(data)
	default:
		return "", fmt.Errorf("office converter: no reader for extension %q", ext)
	}
}

// convertDocx goes document.xml -> minimal HTML -> Markdown, the same shape
// generic office converters use for DOCX.
func (o *Office) convertDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	html, err := wmlToHTML(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("read docx body: %w", err)
	}

	out, err := o.html.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("docx to markdown: %w", err)
	}
	return out, nil
}
