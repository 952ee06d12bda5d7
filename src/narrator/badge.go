package narrator

import (
	"fmt"
	"html"
	"strings"

	"github.com/sofmeright/badgekit/src/badge"
)

// Format selects how assets are rendered.
type Format string

// Supported formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat maps a user-supplied name to a Format. "md" is accepted as an
// alias for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected markdown or html)", s)
}

// Module wraps asset in the module for this format.
func (f Format) Module(asset badge.Asset) Module {
	if f == FormatHTML {
		return PictureModule{Asset: asset}
	}
	return MarkdownModule{Asset: asset}
}

var altEscaper = strings.NewReplacer("[", `\[`, "]", `\]`)

// MarkdownModule renders an asset as a markdown image, wrapped in a link
// when the asset has an href. Only the primary Src is used.
type MarkdownModule struct {
	Asset badge.Asset
}

// Render produces the inline markdown for this badge.
func (m MarkdownModule) Render() string {
	alt := altEscaper.Replace(m.Asset.Alt)
	if m.Asset.Href != "" {
		return fmt.Sprintf("[![%s](%s)](%s)", alt, m.Asset.Src, m.Asset.Href)
	}
	return fmt.Sprintf("![%s](%s)", alt, m.Asset.Src)
}

// PictureModule renders an asset as an HTML <picture> that follows the
// reader's color scheme, falling back to the primary Src.
type PictureModule struct {
	Asset badge.Asset
}

// Render produces the inline HTML for this badge.
func (p PictureModule) Render() string {
	a := p.Asset
	var b strings.Builder
	if a.Href != "" {
		fmt.Fprintf(&b, `<a href="%s">`, html.EscapeString(a.Href))
	}
	b.WriteString("<picture>")
	fmt.Fprintf(&b, `<source media="(prefers-color-scheme: dark)" srcset="%s">`, html.EscapeString(a.SrcDark))
	fmt.Fprintf(&b, `<source media="(prefers-color-scheme: light)" srcset="%s">`, html.EscapeString(a.SrcLight))
	fmt.Fprintf(&b, `<img src="%s" alt="%s">`, html.EscapeString(a.Src), html.EscapeString(a.Alt))
	b.WriteString("</picture>")
	if a.Href != "" {
		b.WriteString("</a>")
	}
	return b.String()
}
