package extract

import (
	"encoding/xml"
	"html"
	"io"
	"strings"
)

// wmlToHTML walks a WordprocessingML body and emits minimal HTML for the
// downstream HTML-to-Markdown converter. Only constructs with a Markdown
// counterpart survive: headings (via pStyle), paragraphs, list items, tabs,
// line breaks, and table cells. Everything else is dropped.
func wmlToHTML(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	dec.Strict = false

	var (
		out    strings.Builder
		para   strings.Builder
		tag    string
		isItem bool
		inText bool
		open   bool
	)

	flush := func() {
		if !open {
			return
		}
		open = false
		text := para.String()
		para.Reset()
		if strings.TrimSpace(strings.ReplaceAll(text, "<br/>", "")) == "" {
			return
		}
		if isItem {
			out.WriteString("<ul><li>" + text + "</li></ul>\n")
			return
		}
		out.WriteString("<" + tag + ">" + text + "</" + tag + ">\n")
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				flush()
				open, tag, isItem = true, "p", false
			case "pStyle":
				if open {
					tag = styleTag(attrVal(t, "val"))
				}
			case "numPr":
				if open {
					isItem = true
				}
			case "t":
				inText = true
			case "tab":
				if open {
					para.WriteString("\t")
				}
			case "br", "cr":
				if open {
					para.WriteString("<br/>")
				}
			case "tbl":
				flush()
				out.WriteString("<table>")
			case "tr":
				out.WriteString("<tr>")
			case "tc":
				out.WriteString("<td>")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				flush()
			case "t":
				inText = false
			case "tbl":
				out.WriteString("</table>\n")
			case "tr":
				out.WriteString("</tr>")
			case "tc":
				flush()
				out.WriteString("</td>")
			}
		case xml.CharData:
			if inText && open {
				para.WriteString(html.EscapeString(string(t)))
			}
		}
	}
	flush()
	return out.String(), nil
}

// styleTag maps a paragraph style to an HTML wrapper. Word numbers headings
// past six; those clamp to h6.
func styleTag(val string) string {
	switch {
	case val == "Title":
		return "h1"
	case strings.HasPrefix(val, "Heading"):
		n := val[len("Heading"):]
		if len(n) == 1 && n[0] >= '1' && n[0] <= '6' {
			return "h" + n
		}
		return "h6"
	default:
		return "p"
	}
}

func attrVal(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
