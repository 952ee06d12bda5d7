// Package variant provides the ready-made badge flavors: static text, GitHub
// license, npm downloads and tech-stack entries. Each one derives its own
// defaults and path, then hands everything else to badge.BuildAsset.
package variant

import (
	"github.com/sofmeright/badgekit/src/badge"
)

// Kind names a variant. It is also the value recorded in
// badge.ErrorContext.Variant for errors a variant raises.
type Kind string

// Known variants.
const (
	KindStatic        Kind = "static"
	KindGithubLicense Kind = "github-license"
	KindNpmDownloads  Kind = "npm-downloads"
	KindTechStack     Kind = "tech-stack"
)

// Kinds returns every known variant.
func Kinds() []Kind {
	return []Kind{KindStatic, KindGithubLicense, KindNpmDownloads, KindTechStack}
}

// Known reports whether k is one of Kinds.
func (k Kind) Known() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Common holds the options shared by every variant.
type Common struct {
	badge.Overrides

	Alt        *string // nil or "" = variant default
	Href       *string // nil or "" = variant default
	Logo       *string
	Style      *badge.Style
	BaseTheme  badge.ThemeKey
	ExtraQuery map[string]string
	Context    *badge.ErrorContext
}

func (c Common) assetOptions(path, alt, href string, label, message, logo *string) badge.AssetOptions {
	return badge.AssetOptions{
		ShieldOptions: badge.ShieldOptions{
			Overrides:  c.Overrides,
			Path:       path,
			Style:      c.Style,
			Label:      label,
			Message:    message,
			Logo:       logo,
			ExtraQuery: c.ExtraQuery,
		},
		Alt:       alt,
		Href:      href,
		BaseTheme: c.BaseTheme,
	}
}

// provided returns *p when it is set and non-empty, otherwise fallback.
func provided(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}

// orDefault returns p when set (even to ""), otherwise a pointer to fallback.
func orDefault(p *string, fallback string) *string {
	if p != nil {
		return p
	}
	return &fallback
}

// trimmed returns the trimmed value of p, or "" when p is nil.
func trimmed(p *string) string {
	if p == nil {
		return ""
	}
	return badge.TrimSpace(*p)
}

// withContext attaches ctx to a context-less *badge.Error.
func withContext(err error, ctx *badge.ErrorContext) error {
	be, ok := err.(*badge.Error)
	if !ok || be.Context != nil {
		return err
	}
	tagged := *be
	tagged.Context = ctx
	return &tagged
}
