package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/variant"
)

var validate = validator.New()

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	// ── Base URL ──────────────────────────────────────────────────────────

	if cfg.BaseURL != nil && *cfg.BaseURL != "" {
		if validate.Var(*cfg.BaseURL, "http_url") != nil {
			errs = append(errs, fmt.Sprintf("base_url: %q is not an http(s) URL", *cfg.BaseURL))
		}
	}

	// ── Defaults ──────────────────────────────────────────────────────────

	if cfg.Style != nil && !cfg.Style.Supported() {
		errs = append(errs, fmt.Sprintf("style: unsupported style %q (supported: %s)", *cfg.Style, styleList()))
	}

	// ── Themes ────────────────────────────────────────────────────────────

	for _, name := range sortedKeys(cfg.Themes) {
		preset := cfg.Themes[name]
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "themes: theme name must not be empty")
			continue
		}
		if preset != nil && preset.Color == "" {
			errs = append(errs, fmt.Sprintf("themes.%s: color is required", name))
		}
	}

	o := cfg.Overrides()
	presets, perr := badge.MergeThemePresets(o.ThemePresets)
	if perr != nil {
		var be *badge.Error
		if errors.As(perr, &be) {
			errs = append(errs, "themes: "+be.Message)
		} else {
			errs = append(errs, "themes: "+perr.Error())
		}
	}
	knownTheme := func(k badge.ThemeKey) bool {
		if presets == nil {
			return k.Known()
		}
		_, ok := presets[k]
		return ok
	}

	if cfg.Theme != "" && !knownTheme(cfg.Theme) {
		errs = append(errs, fmt.Sprintf("theme: unknown theme %q", cfg.Theme))
	}

	// ── Badges ────────────────────────────────────────────────────────────

	ids := make(map[string]bool)
	for i, item := range cfg.Badges {
		ipath := fmt.Sprintf("badges[%d]", i)

		if item.ID != "" {
			if ids[item.ID] {
				errs = append(errs, fmt.Sprintf("%s: duplicate badge id %q", ipath, item.ID))
			}
			ids[item.ID] = true
		}

		if item.Style != nil && !item.Style.Supported() {
			errs = append(errs, fmt.Sprintf("%s: unsupported style %q (supported: %s)", ipath, *item.Style, styleList()))
		}
		if item.Theme != "" && !knownTheme(item.Theme) {
			errs = append(errs, fmt.Sprintf("%s: unknown theme %q", ipath, item.Theme))
		}
		for key := range item.Query {
			if strings.TrimSpace(key) == "" {
				errs = append(errs, fmt.Sprintf("%s.query: empty key", ipath))
			}
		}

		ierrs, iwarns := validateItem(item, ipath)
		errs = append(errs, ierrs...)
		warnings = append(warnings, iwarns...)
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return warnings, nil
}

// validateItem checks the kind-specific fields of one badge item.
func validateItem(item BadgeItem, ipath string) (errs, warnings []string) {
	unused := func(field, value string) {
		if value != "" {
			warnings = append(warnings, fmt.Sprintf("%s: %s is ignored for kind %q", ipath, field, item.Kind))
		}
	}

	switch item.Kind {
	case "":
		errs = append(errs, fmt.Sprintf("%s: kind is required", ipath))
	case KindBreak:
		return errs, warnings
	case string(variant.KindStatic):
		if item.Label == nil || strings.TrimSpace(*item.Label) == "" {
			errs = append(errs, fmt.Sprintf("%s: label is required for static badges", ipath))
		}
		unused("repository", item.Repository)
		unused("package", item.Package)
		unused("name", item.Name)
	case string(variant.KindGithubLicense):
		unused("package", item.Package)
		unused("name", item.Name)
	case string(variant.KindNpmDownloads):
		if strings.TrimSpace(item.Package) == "" {
			errs = append(errs, fmt.Sprintf("%s: package is required for npm-downloads badges", ipath))
		}
		if item.Period != "" && !variant.Period(item.Period).Known() {
			errs = append(errs, fmt.Sprintf("%s: unsupported period %q (supported: %s)", ipath, item.Period, periodList()))
		}
		unused("repository", item.Repository)
		unused("name", item.Name)
	case string(variant.KindTechStack):
		if strings.TrimSpace(item.Name) == "" {
			errs = append(errs, fmt.Sprintf("%s: name is required for tech-stack badges", ipath))
		}
		unused("repository", item.Repository)
		unused("package", item.Package)
	default:
		errs = append(errs, fmt.Sprintf("%s: unknown badge kind %q (supported: %s)", ipath, item.Kind, kindList()))
	}

	if item.Kind != string(variant.KindNpmDownloads) {
		unused("period", item.Period)
	}
	return errs, warnings
}

func kindList() string {
	kinds := make([]string, 0, len(variant.Kinds())+1)
	for _, k := range variant.Kinds() {
		kinds = append(kinds, string(k))
	}
	kinds = append(kinds, KindBreak)
	return strings.Join(kinds, ", ")
}

func styleList() string {
	styles := make([]string, 0, len(badge.SupportedStyles()))
	for _, s := range badge.SupportedStyles() {
		styles = append(styles, string(s))
	}
	return strings.Join(styles, ", ")
}

func periodList() string {
	periods := make([]string, 0, len(variant.Periods()))
	for _, p := range variant.Periods() {
		periods = append(periods, string(p))
	}
	return strings.Join(periods, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
