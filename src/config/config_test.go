package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/variant"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), ".badgekit.yml"))
	require.NoError(t, err)
	require.Equal(t, &Config{}, cfg)
	o := cfg.Overrides()
	require.Nil(t, o.BaseURL)
	require.Nil(t, o.ThemePresets)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, ".badgekit.yml", `
base_url: https://shields.example.com/
style: flat-square
theme: light
themes:
  brand: {color: ff5500, label_color: "222222", logo_color: ffffff}
  dark: null
badges:
  - id: license
    kind: github-license
    repository: foo/bar
  - break
  - kind: npm-downloads
    package: "@astrojs/starlight"
    label: ""
    query:
      cacheSeconds: "3600"
  - kind: tech-stack
    name: Go
    theme: brand
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "https://shields.example.com/", *cfg.BaseURL)
	require.Equal(t, badge.StyleFlatSquare, *cfg.Style)
	require.Equal(t, badge.ThemeLight, cfg.Theme)

	require.Len(t, cfg.Themes, 2)
	require.Equal(t, &badge.ThemePreset{Color: "ff5500", LabelColor: "222222", LogoColor: "ffffff"}, cfg.Themes["brand"])
	dark, ok := cfg.Themes["dark"]
	require.True(t, ok, "null preset must keep its key")
	require.Nil(t, dark)

	require.Len(t, cfg.Badges, 4)
	require.Equal(t, "license", cfg.Badges[0].RowID(0))
	require.Equal(t, variant.KindGithubLicense, cfg.Badges[0].VariantKind())
	require.True(t, cfg.Badges[1].IsBreak())
	require.Equal(t, "badges[2]", cfg.Badges[2].RowID(2))
	require.NotNil(t, cfg.Badges[2].Label)
	require.Empty(t, *cfg.Badges[2].Label)
	require.Nil(t, cfg.Badges[2].Message)
	require.Equal(t, map[string]string{"cacheSeconds": "3600"}, cfg.Badges[2].Query)
	require.Equal(t, badge.ThemeKey("brand"), cfg.Badges[3].Theme)

	o := cfg.Overrides()
	require.Equal(t, cfg.BaseURL, o.BaseURL)
	require.Contains(t, o.ThemePresets, badge.ThemeDark)
	require.Nil(t, o.ThemePresets[badge.ThemeDark])
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, ".badgekit.toml", `
style = "for-the-badge"

[themes.brand]
color = "ff5500"
label_color = "222222"

[[badges]]
kind = "static"
label = "tests"
message = "passing"

[[badges]]
kind = "npm-downloads"
package = "react"
period = "year"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Nil(t, cfg.BaseURL)
	require.Equal(t, badge.StyleForTheBadge, *cfg.Style)
	require.Equal(t, "ff5500", cfg.Themes["brand"].Color)
	require.Len(t, cfg.Badges, 2)
	require.Equal(t, "tests", *cfg.Badges[0].Label)
	require.Equal(t, "react", cfg.Badges[1].Package)

	_, err = Validate(cfg)
	require.NoError(t, err)
}

func TestLoadParseErrors(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "bad.yml", "badges: [\n"},
		{"yaml-shorthand", "bad.yml", "badges:\n  - newline\n"},
		{"toml", "bad.toml", "badges = [\n"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeFile(t, tc.file, tc.content))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.file)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name     string
		cfg      Config
		errs     []string
		warnings []string
	}{
		{
			name: "valid",
			cfg: Config{
				Themes: map[string]*badge.ThemePreset{"brand": {Color: "ff5500"}},
				Badges: []BadgeItem{
					{Kind: "static", Label: badge.Ptr("tests")},
					{Kind: "github-license"},
					{Kind: "break"},
					{Kind: "npm-downloads", Package: "react", Theme: "brand"},
					{Kind: "tech-stack", Name: "Go"},
				},
			},
		},
		{
			name: "missing-identifiers",
			cfg: Config{Badges: []BadgeItem{
				{Kind: "static", Label: badge.Ptr("  ")},
				{Kind: "npm-downloads"},
				{Kind: "tech-stack"},
				{},
			}},
			errs: []string{
				"badges[0]: label is required for static badges",
				"badges[1]: package is required for npm-downloads badges",
				"badges[2]: name is required for tech-stack badges",
				"badges[3]: kind is required",
			},
		},
		{
			name: "unknown-values",
			cfg: Config{
				BaseURL: badge.Ptr("shields.example.com"),
				Style:   badge.Ptr(badge.Style("round")),
				Theme:   "sepia",
				Badges: []BadgeItem{
					{Kind: "docs"},
					{Kind: "npm-downloads", Package: "react", Period: "month"},
					{Kind: "tech-stack", Name: "Go", Theme: "neon", Style: badge.Ptr(badge.Style("3d"))},
				},
			},
			errs: []string{
				`base_url: "shields.example.com" is not an http(s) URL`,
				`style: unsupported style "round"`,
				`theme: unknown theme "sepia"`,
				`badges[0]: unknown badge kind "docs"`,
				`badges[1]: unsupported period "month" (supported: year)`,
				`badges[2]: unsupported style "3d"`,
				`badges[2]: unknown theme "neon"`,
			},
		},
		{
			name: "duplicate-ids",
			cfg: Config{Badges: []BadgeItem{
				{ID: "a", Kind: "tech-stack", Name: "Go"},
				{ID: "a", Kind: "tech-stack", Name: "Rust"},
			}},
			errs: []string{`badges[1]: duplicate badge id "a"`},
		},
		{
			name: "removed-required-theme",
			cfg: Config{Themes: map[string]*badge.ThemePreset{
				"light": nil,
				"bare":  {LabelColor: "000000"},
			}},
			errs: []string{
				"themes.bare: color is required",
				"themes: Theme presets must include both 'dark' and 'light' entries.",
			},
		},
		{
			name: "ignored-fields",
			cfg: Config{Badges: []BadgeItem{
				{Kind: "tech-stack", Name: "Go", Package: "react", Period: "year"},
			}},
			warnings: []string{
				`badges[0]: package is ignored for kind "tech-stack"`,
				`badges[0]: period is ignored for kind "tech-stack"`,
			},
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			warnings, err := Validate(&tc.cfg)
			require.Equal(t, tc.warnings, warnings)
			if len(tc.errs) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.errs {
				require.Contains(t, err.Error(), want)
			}
		})
	}
}
