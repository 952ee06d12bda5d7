package variant

import (
	"github.com/sofmeright/badgekit/src/badge"
)

// StaticOptions configures a static text badge.
type StaticOptions struct {
	Common

	Label   string  // required
	Message *string // optional right-hand text
}

// Static builds a badge showing fixed label and message text.
func Static(opts StaticOptions) (badge.Asset, error) {
	ctx := badge.ApplyVariantContext(opts.Context, string(KindStatic))

	label := badge.TrimSpace(opts.Label)
	if label == "" {
		return badge.Asset{}, badge.NewError(badge.StatusInvalidInput,
			"A static badge requires a non-empty label.", ctx)
	}

	message := trimmed(opts.Message)
	path, err := badge.BuildStaticPath(label, &message, &badge.Overrides{ThemePresets: opts.ThemePresets})
	if err != nil {
		return badge.Asset{}, withContext(err, ctx)
	}

	alt := label + " badge"
	if message != "" {
		alt = label + ": " + message
	}
	alt = provided(opts.Alt, alt)

	href := "#"
	if h := trimmed(opts.Href); h != "" {
		href = h
	}

	var msg *string
	if message != "" {
		msg = &message
	}

	asset, err := badge.BuildAsset(opts.assetOptions(path, alt, href, &label, msg, opts.Logo))
	if err != nil {
		return badge.Asset{}, withContext(err, ctx)
	}
	return asset, nil
}
