// Package badge builds shields.io-style badge URLs and the asset records
// used to embed them in documentation.
//
// The package is a set of pure functions over caller options plus an
// immutable default configuration. Nothing here performs I/O and no call
// path writes to shared state, so every exported function is safe for
// concurrent use.
package badge

// Style is a rendering style understood by the badge service.
type Style string

// Supported badge styles.
const (
	StyleFlat        Style = "flat"
	StyleFlatSquare  Style = "flat-square"
	StylePlastic     Style = "plastic"
	StyleForTheBadge Style = "for-the-badge"
	StyleSocial      Style = "social"
)

// SupportedStyles returns every style the service accepts, in display order.
func SupportedStyles() []Style {
	return []Style{StyleFlat, StyleFlatSquare, StylePlastic, StyleForTheBadge, StyleSocial}
}

// Supported reports whether s is one of SupportedStyles.
func (s Style) Supported() bool {
	for _, known := range SupportedStyles() {
		if s == known {
			return true
		}
	}
	return false
}

// ThemeKey names an entry in a ThemePresetMap. "dark" and "light" always
// exist after resolution; any other non-empty key is a caller-defined theme.
type ThemeKey string

// Built-in theme keys.
const (
	ThemeDark  ThemeKey = "dark"
	ThemeLight ThemeKey = "light"
)

// Known reports whether k is one of the built-in theme keys.
func (k ThemeKey) Known() bool {
	return k == ThemeDark || k == ThemeLight
}

// ThemePreset is the color bundle applied to one themed rendering.
// Values are hex colors without '#' or named shields.io colors.
type ThemePreset struct {
	Color      string `json:"color" yaml:"color" toml:"color"`                  // message background
	LabelColor string `json:"labelColor" yaml:"label_color" toml:"label_color"` // label background
	LogoColor  string `json:"logoColor" yaml:"logo_color" toml:"logo_color"`    // logo tint
}

// IsZero reports whether no color is set.
func (p ThemePreset) IsZero() bool {
	return p == ThemePreset{}
}

// ThemePresetMap maps theme keys to presets.
type ThemePresetMap map[ThemeKey]ThemePreset

// Clone returns an independent copy of m.
func (m ThemePresetMap) Clone() ThemePresetMap {
	out := make(ThemePresetMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Config is the process-wide default configuration.
type Config struct {
	BaseURL      string
	ThemePresets ThemePresetMap
	DefaultStyle Style
	DefaultTheme ThemeKey
}

// Overrides is a per-call partial override of Config.
//
// A nil BaseURL leaves the default in place. ThemePresets entries are laid
// over the defaults: a non-nil preset replaces or adds its key, a nil preset
// removes the key.
type Overrides struct {
	BaseURL      *string
	ThemePresets map[ThemeKey]*ThemePreset
}

// ResolvedConfig is the configuration materialized for a single call.
type ResolvedConfig struct {
	BaseURL      string
	ThemePresets ThemePresetMap
}

// Asset is the embeddable result of one badge build.
type Asset struct {
	Alt      string `json:"alt"`
	Href     string `json:"href"`
	Src      string `json:"src"`
	SrcDark  string `json:"srcDark"`
	SrcLight string `json:"srcLight"`
}

// ShieldURLs holds the dark and light renderings of one badge.
type ShieldURLs struct {
	SrcDark  string
	SrcLight string
}

// Ptr returns a pointer to v. Handy for the optional option fields.
func Ptr[T any](v T) *T {
	return &v
}
