package badge

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ShieldOptions describes one badge independent of theme.
type ShieldOptions struct {
	Overrides

	Path    string  // service route, e.g. "npm/dy/react"
	Style   *Style  // nil = DefaultStyle
	Label   *string // nil = not sent; "" is sent as an empty label
	Message *string // nil = not sent
	Logo    *string // nil or "" = no logo and no logoColor

	// ExtraQuery is applied after the computed parameters and replaces any
	// of them with the same key. Keys are applied in sorted order.
	ExtraQuery map[string]string
}

// ComposeOptions selects the theme for a single URL.
type ComposeOptions struct {
	ShieldOptions
	Theme ThemeKey // "" = DefaultTheme
}

// AssetOptions describes a complete asset. Alt and Href are passed through
// verbatim.
type AssetOptions struct {
	ShieldOptions
	Alt       string
	Href      string
	BaseTheme ThemeKey // theme used for Src; "" = DefaultTheme
}

// ComposeShieldsURL builds one fully qualified badge URL.
func ComposeShieldsURL(opts ComposeOptions) (string, error) {
	resolved, err := ResolveConfig(&opts.Overrides)
	if err != nil {
		return "", err
	}
	return composeWithResolved(opts.ShieldOptions, opts.Style, opts.Theme, resolved)
}

// BuildShieldsURLs builds the dark and light URLs of one badge from a single
// resolved configuration, so they differ only in their theme colors.
func BuildShieldsURLs(opts ShieldOptions) (ShieldURLs, error) {
	resolved, style, err := resolveShared(opts)
	if err != nil {
		return ShieldURLs{}, err
	}
	return buildPair(opts, style, resolved)
}

// BuildAsset builds both themed URLs plus the primary Src selected by
// BaseTheme. A BaseTheme other than dark or light is composed separately.
func BuildAsset(opts AssetOptions) (Asset, error) {
	resolved, style, err := resolveShared(opts.ShieldOptions)
	if err != nil {
		return Asset{}, err
	}

	urls, err := buildPair(opts.ShieldOptions, style, resolved)
	if err != nil {
		return Asset{}, err
	}

	baseTheme, err := ResolveTheme(opts.BaseTheme, resolved.ThemePresets)
	if err != nil {
		return Asset{}, err
	}

	var src string
	switch baseTheme {
	case ThemeDark:
		src = urls.SrcDark
	case ThemeLight:
		src = urls.SrcLight
	default:
		if src, err = composeWithResolved(opts.ShieldOptions, &style, baseTheme, resolved); err != nil {
			return Asset{}, err
		}
	}

	return Asset{
		Alt:      opts.Alt,
		Href:     opts.Href,
		Src:      src,
		SrcDark:  urls.SrcDark,
		SrcLight: urls.SrcLight,
	}, nil
}

func resolveShared(opts ShieldOptions) (ResolvedConfig, Style, error) {
	resolved, err := ResolveConfig(&opts.Overrides)
	if err != nil {
		return ResolvedConfig{}, "", err
	}
	style, err := ResolveStyle(opts.Style)
	if err != nil {
		return ResolvedConfig{}, "", err
	}
	return resolved, style, nil
}

func buildPair(opts ShieldOptions, style Style, resolved ResolvedConfig) (ShieldURLs, error) {
	dark, err := composeWithResolved(opts, &style, ThemeDark, resolved)
	if err != nil {
		return ShieldURLs{}, err
	}
	light, err := composeWithResolved(opts, &style, ThemeLight, resolved)
	if err != nil {
		return ShieldURLs{}, err
	}
	return ShieldURLs{SrcDark: dark, SrcLight: light}, nil
}

func composeWithResolved(opts ShieldOptions, style *Style, theme ThemeKey, resolved ResolvedConfig) (string, error) {
	s, err := ResolveStyle(style)
	if err != nil {
		return "", err
	}
	key, err := ResolveTheme(theme, resolved.ThemePresets)
	if err != nil {
		return "", err
	}
	preset, ok := resolved.ThemePresets[key]
	if !ok {
		return "", NewError(StatusConfigurationError,
			fmt.Sprintf("Theme '%s' does not have a matching preset configured.", key), nil)
	}

	path, err := normalizePath(opts.Path)
	if err != nil {
		return "", err
	}

	var q query
	q.set("style", string(s))
	q.set("color", preset.Color)
	q.set("labelColor", preset.LabelColor)
	if opts.Label != nil {
		q.set("label", *opts.Label)
	}
	if opts.Message != nil {
		q.set("message", *opts.Message)
	}
	if opts.Logo != nil && *opts.Logo != "" {
		q.set("logo", *opts.Logo)
		q.set("logoColor", preset.LogoColor)
	}

	keys := make([]string, 0, len(opts.ExtraQuery))
	for k := range opts.ExtraQuery {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.set(k, opts.ExtraQuery[k])
	}

	return resolved.BaseURL + "/" + path + "?" + q.encode(), nil
}

// normalizePath trims path and strips leading slashes; the result must not
// be empty.
func normalizePath(path string) (string, error) {
	return check(strings.TrimLeft(TrimSpace(path), "/"), ruleBadgePath, StatusInvalidInput, nil)
}

// query is an insertion-ordered parameter list. set replaces the value of an
// existing key in place and appends new keys.
type query struct {
	keys   []string
	values map[string]string
}

func (q *query) set(key, value string) {
	if q.values == nil {
		q.values = make(map[string]string)
	}
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
}

// formFixup turns url.QueryEscape output into the form encoding browsers
// produce: '*' literal and '~' escaped.
var formFixup = strings.NewReplacer("%2A", "*", "~", "%7E")

func formEscape(s string) string {
	return formFixup.Replace(url.QueryEscape(s))
}

func (q *query) encode() string {
	parts := make([]string, len(q.keys))
	for i, k := range q.keys {
		parts[i] = formEscape(k) + "=" + formEscape(q.values[k])
	}
	return strings.Join(parts, "&")
}
