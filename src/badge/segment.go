package badge

import (
	"fmt"
	"net/url"
	"strings"
)

// emptyMessageSegment stands in for a missing message in a static path.
const emptyMessageSegment = "%20"

// FormatStaticSegment trims value and escapes it for use as one segment of a
// static badge path, where '-' and '_' separate segments: '-' becomes "--",
// '_' becomes "__" and every whitespace character becomes "%20".
// Empty input is accepted and yields an empty segment.
func FormatStaticSegment(value string) (string, error) {
	trimmed, err := check(TrimSpace(value), ruleAny, StatusInvalidInput, nil)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		switch {
		case r == '-':
			b.WriteString("--")
		case r == '_':
			b.WriteString("__")
		case IsSpace(r):
			b.WriteString("%20")
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// BuildStaticPath returns "badge/<label>-<message>-<color>". The color always
// comes from the dark preset so both themed URLs share one path. A missing or
// blank message is rendered as an empty "%20" segment.
func BuildStaticPath(label string, message *string, overrides *Overrides) (string, error) {
	color := darkColor(overrides)

	safeLabel, err := FormatStaticSegment(label)
	if err != nil {
		return "", err
	}

	safeMessage := emptyMessageSegment
	if message != nil {
		if trimmed := TrimSpace(*message); trimmed != "" {
			if safeMessage, err = FormatStaticSegment(trimmed); err != nil {
				return "", err
			}
		}
	}
	return fmt.Sprintf("badge/%s-%s-%s", safeLabel, safeMessage, color), nil
}

// BuildSingleSegmentPath returns "badge/<text>-<color>" using the dark
// preset color.
func BuildSingleSegmentPath(text string, overrides *Overrides) (string, error) {
	color := darkColor(overrides)
	segment, err := FormatStaticSegment(text)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("badge/%s-%s", segment, color), nil
}

// darkColor returns the dark preset color after applying overrides. An
// override set that fails to merge falls back to the default dark color;
// the composition step reports the configuration problem.
func darkColor(overrides *Overrides) string {
	resolved, err := ResolveConfig(overrides)
	if err != nil {
		return defaultDarkPreset.Color
	}
	return resolved.ThemePresets[ThemeDark].Color
}

// NormalizePackageName trims name and rejects an empty result.
func NormalizePackageName(name string) (string, error) {
	return check(TrimSpace(name), rulePackageName, StatusInvalidInput, nil)
}

// EncodePackagePath percent-encodes a package name for use in a badge path.
// Scoped names ("@scope/name") must carry both parts and are rendered as
// "%40scope/name"; every other name has each '/' segment encoded.
func EncodePackagePath(name string, ctx *ErrorContext) (string, error) {
	normalized, err := check(TrimSpace(name), rulePackageName, StatusInvalidInput, ctx)
	if err != nil {
		return "", err
	}

	if strings.HasPrefix(normalized, "@") {
		scoped := rule{
			tag:     "npmscope",
			message: fmt.Sprintf("Scoped package '%s' must include both scope and name.", name),
		}
		if _, err := check(normalized, scoped, StatusInvalidInput, ctx); err != nil {
			return "", err
		}
		segments := strings.Split(normalized[1:], "/")
		return "%40" + encodeSegments(segments), nil
	}

	return encodeSegments(strings.Split(normalized, "/")), nil
}

func encodeSegments(segments []string) string {
	encoded := make([]string, len(segments))
	for i, s := range segments {
		encoded[i] = encodeURIComponent(s)
	}
	return strings.Join(encoded, "/")
}

// uriComponentFixup turns url.QueryEscape output into encodeURIComponent
// output: spaces as %20 and the sub-delimiters !'()* left literal.
var uriComponentFixup = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(s string) string {
	return uriComponentFixup.Replace(url.QueryEscape(s))
}

// GithubRepository identifies a GitHub repository.
type GithubRepository struct {
	Owner string
	Name  string
}

func (r GithubRepository) String() string {
	return r.Owner + "/" + r.Name
}

// ParseGithubRepository accepts "owner/name", "owner/name.git" or any URL
// whose path starts with owner and name, such as
// "https://github.com/owner/name.git".
func ParseGithubRepository(input string, ctx *ErrorContext) (GithubRepository, error) {
	raw, err := check(TrimSpace(input), ruleRepositoryInput, StatusInvalidInput, ctx)
	if err != nil {
		return GithubRepository{}, err
	}

	path := raw
	if strings.Contains(raw, "://") {
		if p, ok := urlPath(raw); ok {
			path = p
		}
	}

	path = strings.TrimLeft(path, "/")
	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")

	unparsable := rule{
		tag:     "required",
		message: fmt.Sprintf("Could not parse GitHub repository from '%s'.", input),
	}
	owner, name := parts[0], ""
	if len(parts) > 1 {
		name = parts[1]
	}
	if _, err := check(owner, unparsable, StatusInvalidInput, ctx); err != nil {
		return GithubRepository{}, err
	}
	if _, err := check(name, unparsable, StatusInvalidInput, ctx); err != nil {
		return GithubRepository{}, err
	}
	return GithubRepository{Owner: owner, Name: name}, nil
}

// urlPath returns the escaped path of raw when it parses as a URL.
func urlPath(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	return u.EscapedPath(), true
}

// urlHost returns the lowercased host name of href when it is an absolute
// URL with a host. Scheme-relative and relative references have none.
func urlHost(href string) (string, bool) {
	u, err := url.Parse(href)
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		return "", false
	}
	return strings.ToLower(u.Hostname()), true
}

// BuildDocsAlt describes a documentation link by its host.
func BuildDocsAlt(href string) string {
	if host, ok := urlHost(href); ok {
		return "View the docs at " + host
	}
	return "View the documentation"
}

// BuildTechHrefFallback returns a web search for the technology's docs.
func BuildTechHrefFallback(name string) string {
	return "https://www.google.com/search?q=" + encodeURIComponent(name+" docs")
}
