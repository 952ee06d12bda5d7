package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/variant"
)

// KindBreak is the item kind that ends the current row of badges.
const KindBreak = "break"

// BadgeItem defines a single badge. Which identifying field is required
// depends on Kind.
type BadgeItem struct {
	ID   string `yaml:"id" toml:"id"`     // optional; reported as the error row
	Kind string `yaml:"kind" toml:"kind"` // static, github-license, npm-downloads, tech-stack or break

	Repository string `yaml:"repository" toml:"repository"` // github-license; empty = origin remote
	Package    string `yaml:"package" toml:"package"`       // npm-downloads
	Period     string `yaml:"period" toml:"period"`         // npm-downloads; empty = year
	Name       string `yaml:"name" toml:"name"`             // tech-stack

	Label   *string `yaml:"label" toml:"label"`
	Message *string `yaml:"message" toml:"message"`
	Logo    *string `yaml:"logo" toml:"logo"`
	Alt     *string `yaml:"alt" toml:"alt"`
	Href    *string `yaml:"href" toml:"href"`

	Style *badge.Style      `yaml:"style" toml:"style"` // nil = Config.Style
	Theme badge.ThemeKey    `yaml:"theme" toml:"theme"` // "" = Config.Theme
	Query map[string]string `yaml:"query" toml:"query"`
}

// UnmarshalYAML accepts the shorthand scalar "break" as well as the full
// mapping form.
func (b *BadgeItem) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		switch strings.ToLower(strings.TrimSpace(value.Value)) {
		case KindBreak:
			*b = BadgeItem{Kind: KindBreak}
			return nil
		default:
			return fmt.Errorf("line %d: unknown badge shorthand %q (expected \"break\")", value.Line, value.Value)
		}
	}

	type plain BadgeItem
	return value.Decode((*plain)(b))
}

// IsBreak returns true if this item ends the current row.
func (b BadgeItem) IsBreak() bool {
	return b.Kind == KindBreak
}

// VariantKind returns the item's kind as a variant.Kind.
func (b BadgeItem) VariantKind() variant.Kind {
	return variant.Kind(b.Kind)
}

// RowID returns the item's id, or its position in the badges list.
func (b BadgeItem) RowID(index int) string {
	if b.ID != "" {
		return b.ID
	}
	return fmt.Sprintf("badges[%d]", index)
}
