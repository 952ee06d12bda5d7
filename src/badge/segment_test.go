package badge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatStaticSegment(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed", "a-b_c d", "a--b__c%20d"},
		{"trimmed", "  tests  ", "tests"},
		{"tab", "a\tb", "a%20b"},
		{"double-dash", "--", "----"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"unicode", "héllo wörld", "héllo%20wörld"},
		{"bom-trimmed", "\ufefftests\ufeff", "tests"},
		{"nbsp-escaped", "a\u00a0b\u3000c", "a%20b%20c"},
		{"next-line-kept", "\ufeffa\u0085b\ufeff", "a\u0085b"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := FormatStaticSegment(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestBuildStaticPath(t *testing.T) {
	t.Parallel()
	got, err := BuildStaticPath("tests", Ptr("passing"), nil)
	require.NoError(t, err)
	require.Equal(t, "badge/tests-passing-111111", got)

	got, err = BuildStaticPath("build", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "badge/build-%20-111111", got)

	got, err = BuildStaticPath("build", Ptr("   "), nil)
	require.NoError(t, err)
	require.Equal(t, "badge/build-%20-111111", got)

	// The color follows the dark preset even when overridden.
	got, err = BuildStaticPath("go", Ptr("1.25"), &Overrides{
		ThemePresets: map[ThemeKey]*ThemePreset{ThemeDark: {Color: "00add8", LabelColor: "000000", LogoColor: "ffffff"}},
	})
	require.NoError(t, err)
	require.Equal(t, "badge/go-1.25-00add8", got)

	// A broken override falls back to the default dark color.
	got, err = BuildStaticPath("go", nil, &Overrides{
		ThemePresets: map[ThemeKey]*ThemePreset{ThemeDark: nil},
	})
	require.NoError(t, err)
	require.Equal(t, "badge/go-%20-111111", got)
}

func TestBuildSingleSegmentPath(t *testing.T) {
	t.Parallel()
	got, err := BuildSingleSegmentPath("made with go", nil)
	require.NoError(t, err)
	require.Equal(t, "badge/made%20with%20go-111111", got)
}

func TestNormalizePackageName(t *testing.T) {
	t.Parallel()
	got, err := NormalizePackageName("  react ")
	require.NoError(t, err)
	require.Equal(t, "react", got)

	_, err = NormalizePackageName("   ")
	require.Error(t, err)
	require.True(t, IsStatus(err, StatusInvalidInput))
}

func TestEncodePackagePath(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name     string
		input    string
		mustErr  bool
		expected string
	}{
		{"plain", "react", false, "react"},
		{"scoped", "@scope/name", false, "%40scope/name"},
		{"scoped-deep", "@types/node/extra", false, "%40types/node/extra"},
		{"scoped-escaped", "@my scope/na+me", false, "%40my%20scope/na%2Bme"},
		{"unscoped-path", "lodash/fp", false, "lodash/fp"},
		{"component-chars", "a:b@c", false, "a%3Ab%40c"},
		{"keeps-sub-delims", "it's(ok)!*~", false, "it's(ok)!*~"},
		{"scope-only", "@scope", true, ""},
		{"scope-trailing-slash", "@scope/", true, ""},
		{"missing-scope", "@/name", true, ""},
		{"empty", " ", true, ""},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := EncodePackagePath(tc.input, nil)
			if tc.mustErr {
				require.Error(t, err)
				require.True(t, IsStatus(err, StatusInvalidInput))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestEncodePackagePathQuotesOriginalName(t *testing.T) {
	t.Parallel()
	ctx := &ErrorContext{Variant: "npm-downloads"}
	_, err := EncodePackagePath(" @scope ", ctx)
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	require.Equal(t, "Scoped package ' @scope ' must include both scope and name.", be.Message)
	require.Same(t, ctx, be.Context)
}

func TestParseGithubRepository(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name     string
		input    string
		mustErr  bool
		expected GithubRepository
	}{
		{"short", "foo/bar", false, GithubRepository{"foo", "bar"}},
		{"url-git", "https://github.com/foo/bar.git", false, GithubRepository{"foo", "bar"}},
		{"url-deep", "https://github.com/foo/bar/tree/main", false, GithubRepository{"foo", "bar"}},
		{"leading-slash", "/foo/bar", false, GithubRepository{"foo", "bar"}},
		{"short-git", " foo/bar.git ", false, GithubRepository{"foo", "bar"}},
		{"ssh-url", "ssh://git@github.com/foo/bar.git", false, GithubRepository{"foo", "bar"}},
		{"unparsable-url", "foo/bar%zz://", false, GithubRepository{"foo", "bar%zz:"}},
		{"blank", " ", true, GithubRepository{}},
		{"owner-only", "foo", true, GithubRepository{}},
		{"empty-name", "foo/", true, GithubRepository{}},
		{"url-no-path", "https://github.com", true, GithubRepository{}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseGithubRepository(tc.input, nil)
			if tc.mustErr {
				require.Error(t, err)
				require.True(t, IsStatus(err, StatusInvalidInput))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
			require.Equal(t, tc.expected.Owner+"/"+tc.expected.Name, got.String())
		})
	}
}

func TestBuildDocsAlt(t *testing.T) {
	t.Parallel()
	require.Equal(t, "View the docs at docs.astro.build", BuildDocsAlt("https://docs.astro.build/en/"))
	require.Equal(t, "View the documentation", BuildDocsAlt("#"))
	require.Equal(t, "View the documentation", BuildDocsAlt("/docs/intro"))
	require.Equal(t, "View the documentation", BuildDocsAlt("http://[::1"))
	require.Equal(t, "View the documentation", BuildDocsAlt("//example.com/docs"))
	require.Equal(t, "View the docs at docs.astro.build", BuildDocsAlt("HTTPS://Docs.Astro.BUILD/x"))
}

func TestBuildTechHrefFallback(t *testing.T) {
	t.Parallel()
	require.Equal(t, "https://www.google.com/search?q=Astro%20docs", BuildTechHrefFallback("Astro"))
	require.Equal(t, "https://www.google.com/search?q=C%2B%2B%20docs", BuildTechHrefFallback("C++"))
}

func TestTrimSpace(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii", " \t\n\v\f\rx\r\n", "x"},
		{"separators", "\u2028\u2029x\u202f\u205f", "x"},
		{"en-quad-to-hair", "\u2000\u200ax\u2005", "x"},
		{"bom", "\ufeffx", "x"},
		{"next-line", "\u0085x\u0085", "\u0085x\u0085"},
		{"zero-width-space", "\u200bx", "\u200bx"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, TrimSpace(tc.input))
		})
	}
}
