package narrator

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/config"
	"github.com/sofmeright/badgekit/src/variant"
)

// BuildItem builds the asset for one configured badge. Config-level base
// URL, theme presets, style and theme apply unless the item sets its own.
// Errors carry the item's row id (its id, or "badges[<index>]").
func BuildItem(cfg *config.Config, index int, item config.BadgeItem) (badge.Asset, error) {
	ctx := &badge.ErrorContext{RowID: item.RowID(index)}

	common := variant.Common{
		Overrides:  cfg.Overrides(),
		Alt:        item.Alt,
		Href:       item.Href,
		Logo:       item.Logo,
		Style:      cfg.Style,
		BaseTheme:  cfg.Theme,
		ExtraQuery: item.Query,
		Context:    ctx,
	}
	if item.Style != nil {
		common.Style = item.Style
	}
	if item.Theme != "" {
		common.BaseTheme = item.Theme
	}

	switch item.VariantKind() {
	case variant.KindStatic:
		var label string
		if item.Label != nil {
			label = *item.Label
		}
		return variant.Static(variant.StaticOptions{
			Common:  common,
			Label:   label,
			Message: item.Message,
		})
	case variant.KindGithubLicense:
		return variant.GithubLicense(variant.GithubLicenseOptions{
			Common:     common,
			Repository: item.Repository,
			Label:      item.Label,
			Message:    item.Message,
		})
	case variant.KindNpmDownloads:
		return variant.NpmDownloads(variant.NpmDownloadsOptions{
			Common:      common,
			PackageName: item.Package,
			Period:      variant.Period(item.Period),
			Label:       item.Label,
			Message:     item.Message,
		})
	case variant.KindTechStack:
		return variant.TechStack(variant.TechStackOptions{
			Common:  common,
			Name:    item.Name,
			Label:   item.Label,
			Message: item.Message,
		})
	}

	ctx.Variant = item.Kind
	return badge.Asset{}, badge.NewError(badge.StatusUnsupportedVariant,
		fmt.Sprintf("Unsupported badge kind '%s'.", item.Kind), ctx)
}

// Modules builds every configured badge and wraps it for format. Break
// items become BreakModules. Items are built concurrently; all failures are
// returned joined, in configuration order.
func Modules(cfg *config.Config, format Format) ([]Module, error) {
	modules := make([]Module, len(cfg.Badges))
	errs := make([]error, len(cfg.Badges))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, item := range cfg.Badges {
		if item.IsBreak() {
			modules[i] = BreakModule{}
			continue
		}
		i, item := i, item
		g.Go(func() error {
			asset, err := BuildItem(cfg, i, item)
			if err != nil {
				errs[i] = err
				return nil
			}
			modules[i] = format.Module(asset)
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return modules, nil
}

// Render builds and composes every configured badge.
func Render(cfg *config.Config, format Format) (string, error) {
	modules, err := Modules(cfg, format)
	if err != nil {
		return "", err
	}
	return Compose(modules), nil
}
