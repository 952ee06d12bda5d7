package variant

import (
	"github.com/sofmeright/badgekit/src/badge"
)

// TechStackOptions configures a tech-stack badge.
type TechStackOptions struct {
	Common

	Name    string  // technology name; required
	Label   *string // nil = "stack"; an explicit "" is kept
	Message *string // nil = Name
}

// TechStack builds a "stack | <name>" badge for a project's technology list.
func TechStack(opts TechStackOptions) (badge.Asset, error) {
	ctx := badge.ApplyVariantContext(opts.Context, string(KindTechStack))

	name := badge.TrimSpace(opts.Name)
	if name == "" {
		return badge.Asset{}, badge.NewError(badge.StatusInvalidInput,
			"Each tech stack badge requires a technology name.", ctx)
	}

	label := orDefault(opts.Label, "stack")
	message := orDefault(opts.Message, name)

	path, err := badge.BuildStaticPath(*label, message, &badge.Overrides{ThemePresets: opts.ThemePresets})
	if err != nil {
		return badge.Asset{}, withContext(err, ctx)
	}

	alt := provided(opts.Alt, name+" in the tech stack")
	href := provided(opts.Href, badge.BuildTechHrefFallback(name))

	asset, err := badge.BuildAsset(opts.assetOptions(path, alt, href, label, message, opts.Logo))
	if err != nil {
		return badge.Asset{}, withContext(err, ctx)
	}
	return asset, nil
}
