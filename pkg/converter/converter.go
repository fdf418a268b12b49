// Package converter turns binary documents (PDF, DOCX) into cleaned
// Markdown. Actual parsing is delegated to external extraction engines;
// this package owns extension dispatch, base64 image-embed stripping, and
// an ordered set of substring cleanup rules.
package converter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docmd/docmd/internal/extract"
	"github.com/docmd/docmd/pkg/logger"
)

// ConvertFunc extracts raw, unformatted Markdown from document bytes.
type ConvertFunc func(data []byte) (string, error)

// UnsupportedFileExtensionError reports a dispatch miss. It carries the
// offending token and the registered set so callers can surface both.
type UnsupportedFileExtensionError struct {
	Extension string
	Supported []string
}

func (e *UnsupportedFileExtensionError) Error() string {
	return fmt.Sprintf("unsupported file extension %q (supported: %s)",
		e.Extension, strings.Join(e.Supported, ", "))
}

// Converter maps file-extension tokens to conversion routines and cleans
// their output. Safe for concurrent use: it holds no per-call state, only
// the immutable strategy and shared engine handles.
type Converter struct {
	routes    map[string]ConvertFunc
	strategy  Strategy
	formatter Formatter
	office    *extract.Office
	pdfOpts   extract.PDFOptions
	log       logger.Logger
}

// Option configures a Converter at construction time.
type Option func(*Converter)

// WithStrategy replaces the default replacement strategy entirely.
func WithStrategy(s Strategy) Option {
	return func(c *Converter) {
		c.strategy = s
	}
}

// WithFormatter replaces the default Markdown formatter.
func WithFormatter(f Formatter) Option {
	return func(c *Converter) {
		c.formatter = f
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logger.Logger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

// WithPDFOptions overrides what the PDF extraction engine suppresses.
func WithPDFOptions(opts extract.PDFOptions) Option {
	return func(c *Converter) {
		c.pdfOpts = opts
	}
}

// WithRoute registers or overrides the conversion routine for an extension
// token. Tokens are matched exactly and case-sensitively.
func WithRoute(ext string, fn ConvertFunc) Option {
	return func(c *Converter) {
		c.routes[ext] = fn
	}
}

// New creates a Converter with routes for .pdf and .docx, the default
// replacement strategy, and the default Markdown formatter.
func New(opts ...Option) *Converter {
	c := &Converter{
		strategy:  DefaultStrategy(),
		formatter: NewMarkdownFormatter(),
		office:    extract.NewOffice(),
		pdfOpts: extract.PDFOptions{
			IgnoreGraphics: true,
			IgnoreCode:     true,
			IgnoreAlpha:    true,
		},
		log: logger.NewNop(),
	}
	c.routes = map[string]ConvertFunc{
		".pdf":  c.ConvertPDF,
		".docx": c.ConvertDOCX,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert dispatches on the extension token, invokes the matching routine,
// and runs its raw output through the formatting pipeline. Extraction
// failures propagate to the caller; documents cannot be partially salvaged
// at this layer.
func (c *Converter) Convert(data []byte, ext string) (string, error) {
	fn, ok := c.routes[ext]
	if !ok {
		return "", &UnsupportedFileExtensionError{
			Extension: ext,
			Supported: c.Supported(),
		}
	}

	c.log.Debug("converting document",
		logger.String("extension", ext),
		logger.Int("bytes", len(data)),
	)

	raw, err := fn(data)
	if err != nil {
		return "", err
	}
	return c.Format(raw)
}

// Supported returns the registered extension tokens, sorted.
func (c *Converter) Supported() []string {
	exts := make([]string, 0, len(c.routes))
	for ext := range c.routes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ConvertPDF extracts raw Markdown from PDF bytes. Callers wanting
// normalized output must run the result through Format, or use Convert.
func (c *Converter) ConvertPDF(data []byte) (string, error) {
	raw, err := extract.PDFToMarkdown(data, c.pdfOpts)
	if err != nil {
		return "", fmt.Errorf("pdf extraction: %w", err)
	}
	return raw, nil
}

// ConvertDOCX extracts raw Markdown from DOCX bytes. The generic office
// converter inlines images as base64 data URIs, so its output passes
// through the base64 stripper before being returned.
func (c *Converter) ConvertDOCX(data []byte) (string, error) {
	raw, err := c.office.Convert(data, ".docx")
	if err != nil {
		return "", fmt.Errorf("docx extraction: %w", err)
	}
	return StripBase64Images(raw), nil
}

// Format runs raw Markdown through the external formatter, applies the
// replacement strategy, and returns the result stripped of surrounding
// whitespace and terminated by exactly one newline. Re-running Format on
// its own output does not change it.
func (c *Converter) Format(raw string) (string, error) {
	out, err := c.formatter.Format(raw)
	if err != nil {
		return "", fmt.Errorf("markdown format: %w", err)
	}
	out = c.strategy.Apply(out)
	return strings.TrimSpace(out) + "\n", nil
}
