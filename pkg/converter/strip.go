package converter

import (
	"regexp"
)

// Document converters commonly inline images as base64 data URIs, which
// bloats the Markdown with payloads that are useless as text. Both patterns
// are case-insensitive on the data-URI tokens and recognize a fixed MIME set.
var (
	// A complete Markdown image construct with a base64 payload, optionally
	// followed by a quoted or parenthesized title.
	base64ImageEmbed = regexp.MustCompile(`(?i)!\[[^\]]*\]\(\s*data:image/(?:png|jpe?g|gif|webp|svg\+xml);base64,[^)\s]*(?:\s+(?:"[^"]*"|'[^']*'|\([^)]*\)))?\s*\)`)

	// A bare parenthesized base64 image URL with no image marker in front.
	// Catches malformed constructs the embed pattern did not fully consume.
	base64BareParen = regexp.MustCompile(`(?i)\(\s*data:image/(?:png|jpe?g|gif|webp|svg\+xml);base64,[^)]*\)`)
)

// StripBase64Images removes inline base64 image embeds from Markdown text.
// Whole image constructs are deleted outright; leftover bare parentheticals
// are reduced to an empty "()". Ordinary image URLs pass through unchanged.
func StripBase64Images(md string) string {
	md = base64ImageEmbed.ReplaceAllString(md, "")
	md = base64BareParen.ReplaceAllString(md, "()")
	return md
}
