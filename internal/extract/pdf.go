// Package extract adapts external document-parsing engines to a single
// capability: bytes in, raw Markdown out. No parsing happens here beyond
// what the engines expose.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/gen2brain/go-fitz"
)

// PDFOptions control what the page-to-Markdown extraction suppresses.
type PDFOptions struct {
	// IgnoreGraphics drops embedded images and vector figures.
	IgnoreGraphics bool
	// IgnoreCode flattens code constructs to plain text instead of
	// emitting fenced blocks.
	IgnoreCode bool
	// IgnoreAlpha drops text spans rendered fully transparent.
	IgnoreAlpha bool
}

// MuPDF keeps invisible spans in the HTML export even though they never
// show on the page.
var alphaSpan = regexp.MustCompile(`(?is)<span[^>]*(?:opacity\s*:\s*0(?:\.0+)?\s*[;"']|color\s*:\s*transparent)[^>]*>.*?</span>`)

// PDFToMarkdown opens the byte stream as a PDF via MuPDF, renders each page
// to HTML, and converts the HTML to Markdown. The document handle is closed
// on every exit path. Engine errors propagate to the caller.
func PDFToMarkdown(data []byte, opts PDFOptions) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	conv := newPageConverter(opts)

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		html, err := doc.HTML(i, true)
		if err != nil {
			return "", fmt.Errorf("render page %d: %w", i+1, err)
		}
		if opts.IgnoreAlpha {
			html = alphaSpan.ReplaceAllString(html, "")
		}
		page, err := conv.ConvertString(html)
		if err != nil {
			return "", fmt.Errorf("convert page %d: %w", i+1, err)
		}
		b.WriteString(page)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

func newPageConverter(opts PDFOptions) *md.Converter {
	conv := md.NewConverter("", true, nil)
	if opts.IgnoreGraphics {
		conv.Remove("img", "picture", "figure", "svg")
	}
	if opts.IgnoreCode {
		conv.AddRules(md.Rule{
			Filter: []string{"pre", "code"},
			Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
				return &content
			},
		})
	}
	return conv
}
