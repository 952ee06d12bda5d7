package badge

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the badge service used when no override is given.
const DefaultBaseURL = "https://img.shields.io"

// Defaults for style and primary theme.
const (
	DefaultStyle = StyleFlat
	DefaultTheme = ThemeDark
)

var (
	defaultDarkPreset = ThemePreset{
		Color:      "111111",
		LabelColor: "050505",
		LogoColor:  "f5f5f5",
	}
	defaultLightPreset = ThemePreset{
		Color:      "f5f5f5",
		LabelColor: "e5e5e5",
		LogoColor:  "111111",
	}
)

// DefaultThemePresets returns a fresh copy of the built-in dark and light
// presets.
func DefaultThemePresets() ThemePresetMap {
	return ThemePresetMap{
		ThemeDark:  defaultDarkPreset,
		ThemeLight: defaultLightPreset,
	}
}

// DefaultConfig returns a fresh copy of the default configuration. Callers
// may modify the result freely; the defaults themselves never change.
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		ThemePresets: DefaultThemePresets(),
		DefaultStyle: DefaultStyle,
		DefaultTheme: DefaultTheme,
	}
}

// MergeThemePresets lays overrides over the default presets. A non-nil
// entry replaces or adds its key and a nil entry removes it. The result must
// still hold non-empty dark and light presets.
func MergeThemePresets(overrides map[ThemeKey]*ThemePreset) (ThemePresetMap, error) {
	merged := DefaultThemePresets()
	if overrides == nil {
		return merged, nil
	}

	for key, preset := range overrides {
		if preset == nil {
			delete(merged, key)
			continue
		}
		merged[key] = *preset
	}

	for _, required := range []ThemeKey{ThemeDark, ThemeLight} {
		if p, ok := merged[required]; !ok || p.IsZero() {
			return nil, NewError(StatusConfigurationError,
				"Theme presets must include both 'dark' and 'light' entries.", nil)
		}
	}
	return merged, nil
}

// ResolveBaseURL returns the override with one trailing slash removed, or
// DefaultBaseURL when the override is absent or ends up empty.
func ResolveBaseURL(override *string) string {
	if override == nil || *override == "" {
		return DefaultBaseURL
	}
	if trimmed := strings.TrimSuffix(*override, "/"); trimmed != "" {
		return trimmed
	}
	return DefaultBaseURL
}

// ResolveStyle returns the requested style, DefaultStyle when absent, or an
// INVALID_INPUT error for a style the service does not support.
func ResolveStyle(style *Style) (Style, error) {
	resolved := DefaultStyle
	if style != nil {
		resolved = *style
	}

	r := rule{
		tag:     "oneof=" + joinStyles(SupportedStyles(), " "),
		message: fmt.Sprintf("Unsupported badge style '%s'.", resolved),
	}
	if _, err := check(string(resolved), r, StatusInvalidInput, nil); err != nil {
		return "", err
	}
	return resolved, nil
}

// ResolveTheme returns DefaultTheme when theme is empty, otherwise theme
// itself provided presets defines it.
func ResolveTheme(theme ThemeKey, presets ThemePresetMap) (ThemeKey, error) {
	if theme == "" {
		return DefaultTheme, nil
	}
	if _, ok := presets[theme]; !ok {
		return "", NewError(StatusConfigurationError,
			fmt.Sprintf("Unknown theme '%s' requested.", theme), nil)
	}
	return theme, nil
}

// ResolveConfig materializes the base URL and theme presets for one call.
// Style and theme are resolved later against the call's own request.
func ResolveConfig(overrides *Overrides) (ResolvedConfig, error) {
	var o Overrides
	if overrides != nil {
		o = *overrides
	}

	presets, err := MergeThemePresets(o.ThemePresets)
	if err != nil {
		return ResolvedConfig{}, err
	}
	return ResolvedConfig{
		BaseURL:      ResolveBaseURL(o.BaseURL),
		ThemePresets: presets,
	}, nil
}

func joinStyles(styles []Style, sep string) string {
	parts := make([]string, len(styles))
	for i, s := range styles {
		parts[i] = string(s)
	}
	return strings.Join(parts, sep)
}
