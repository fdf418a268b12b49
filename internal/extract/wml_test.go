package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`

func TestWMLToHTMLParagraphsAndHeadings(t *testing.T) {
	content := wmlHeader + `<w:body>` +
		`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Title</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Hello</w:t></w:r><w:r><w:br/></w:r><w:r><w:t>World</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	html, err := wmlToHTML(content)
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<p>Hello<br/>World</p>")
}

func TestWMLToHTMLListItems(t *testing.T) {
	content := wmlHeader + `<w:body>` +
		`<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/></w:numPr></w:pPr><w:r><w:t>item</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	html, err := wmlToHTML(content)
	require.NoError(t, err)
	assert.Contains(t, html, "<li>item</li>")
}

func TestWMLToHTMLTables(t *testing.T) {
	content := wmlHeader + `<w:body>` +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
		`</w:body></w:document>`

	html, err := wmlToHTML(content)
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<p>cell</p>")
	assert.Contains(t, html, "</table>")
}

func TestWMLToHTMLEscapesText(t *testing.T) {
	content := wmlHeader + `<w:body>` +
		`<w:p><w:r><w:t>a &amp; b &lt;tag&gt;</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	html, err := wmlToHTML(content)
	require.NoError(t, err)
	assert.Contains(t, html, "a &amp; b &lt;tag&gt;")
}

func TestWMLToHTMLSkipsEmptyParagraphs(t *testing.T) {
	content := wmlHeader + `<w:body>` +
		`<w:p></w:p><w:p><w:r><w:t>  </w:t></w:r></w:p>` +
		`</w:body></w:document>`

	html, err := wmlToHTML(content)
	require.NoError(t, err)
	assert.NotContains(t, html, "<p>")
}

func TestStyleTag(t *testing.T) {
	cases := map[string]string{
		"Heading1": "h1",
		"Heading3": "h3",
		"Heading6": "h6",
		"Heading9": "h6", // Word numbers past six; clamp
		"Title":    "h1",
		"Normal":   "p",
		"":         "p",
	}
	for style, want := range cases {
		assert.Equal(t, want, styleTag(style), "style %q", style)
	}
}

func TestOfficeRejectsUnknownExtensionHint(t *testing.T) {
	o := NewOffice()

	_, err := o.Convert([]byte("irrelevant"), ".xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".xlsx")
}
