package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/narrator"
	"github.com/sofmeright/badgekit/src/variant"
)

var (
	bgStyle   string
	bgTheme   string
	bgLogo    string
	bgAlt     string
	bgHref    string
	bgBaseURL string
	bgQuery   []string
	bgFormat  string
	bgRowID   string
)

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Build a single badge",
	Long: `Build one badge from flags and print it.

Config-level base_url, style, theme and themes apply unless overridden by
flags. Output is the asset as JSON (default), a markdown image link, or an
HTML <picture> that follows the reader's color scheme.`,
}

func init() {
	pf := badgeCmd.PersistentFlags()
	pf.StringVar(&bgStyle, "style", "", "badge style: "+styleNames())
	pf.StringVar(&bgTheme, "theme", "", "base theme used for src (default: config theme, then dark)")
	pf.StringVar(&bgLogo, "logo", "", "simple-icons logo slug")
	pf.StringVar(&bgAlt, "alt", "", "alt text (default: derived from the badge)")
	pf.StringVar(&bgHref, "href", "", "link target (default: derived from the badge)")
	pf.StringVar(&bgBaseURL, "base-url", "", "badge service base URL (default: config base_url, then "+badge.DefaultBaseURL+")")
	pf.StringArrayVar(&bgQuery, "query", nil, "extra query parameter as key=value (repeatable)")
	pf.StringVar(&bgFormat, "format", "json", "output format: json, markdown or html")
	pf.StringVar(&bgRowID, "row-id", "", "row id reported in errors")

	rootCmd.AddCommand(badgeCmd)
}

// commonFromFlags merges config-level defaults with the shared badge flags.
// Only flags the user set count as overrides.
func commonFromFlags(cmd *cobra.Command) (variant.Common, error) {
	common := variant.Common{
		Overrides: cfg.Overrides(),
		Style:     cfg.Style,
		BaseTheme: cfg.Theme,
	}

	flags := cmd.Flags()
	if flags.Changed("style") {
		common.Style = badge.Ptr(badge.Style(bgStyle))
	}
	if flags.Changed("theme") {
		common.BaseTheme = badge.ThemeKey(bgTheme)
	}
	if flags.Changed("logo") {
		common.Logo = badge.Ptr(bgLogo)
	}
	if flags.Changed("alt") {
		common.Alt = badge.Ptr(bgAlt)
	}
	if flags.Changed("href") {
		common.Href = badge.Ptr(bgHref)
	}
	if flags.Changed("base-url") {
		common.BaseURL = badge.Ptr(bgBaseURL)
	}
	if bgRowID != "" {
		common.Context = &badge.ErrorContext{RowID: bgRowID}
	}

	query, err := parseQuery(bgQuery)
	if err != nil {
		return variant.Common{}, err
	}
	common.ExtraQuery = query
	return common, nil
}

// parseQuery parses repeated key=value pairs.
func parseQuery(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	query := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --query %q (expected key=value)", pair)
		}
		query[key] = value
	}
	return query, nil
}

// printAsset writes asset to w in the requested format.
func printAsset(w io.Writer, asset badge.Asset, format string) error {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return printJSON(w, asset)
	}
	f, err := narrator.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("%w (or json)", err)
	}
	_, err = fmt.Fprintln(w, f.Module(asset).Render())
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func styleNames() string {
	names := make([]string, 0, len(badge.SupportedStyles()))
	for _, s := range badge.SupportedStyles() {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
