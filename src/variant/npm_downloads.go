package variant

import (
	"fmt"
	"strings"

	packageurl "github.com/package-url/packageurl-go"

	"github.com/sofmeright/badgekit/src/badge"
)

// Period selects the download window of an npm downloads badge.
type Period string

// PeriodYear is the only window currently offered.
const PeriodYear Period = "year"

type periodSpec struct {
	path      string // service route prefix
	adjective string // used in the default alt text
}

var periods = map[Period]periodSpec{
	PeriodYear: {path: "npm/dy", adjective: "Yearly"},
}

// Periods returns the supported download windows.
func Periods() []Period {
	return []Period{PeriodYear}
}

// Known reports whether p is a supported window.
func (p Period) Known() bool {
	_, ok := periods[p]
	return ok
}

// NpmDownloadsOptions configures an npm downloads badge.
type NpmDownloadsOptions struct {
	Common

	// PackageName is an npm package name ("react", "@scope/name") or an npm
	// package URL ("pkg:npm/%40scope/name@1.0.0"). Required.
	PackageName string
	Period      Period // "" = PeriodYear
	Label       *string
	Message     *string
}

// NpmDownloads builds a badge showing how often an npm package is
// downloaded.
func NpmDownloads(opts NpmDownloadsOptions) (badge.Asset, error) {
	ctx := badge.ApplyVariantContext(opts.Context, string(KindNpmDownloads))

	name, err := packageName(opts.PackageName, ctx)
	if err != nil {
		return badge.Asset{}, err
	}

	period := opts.Period
	if period == "" {
		period = PeriodYear
	}
	spec, ok := periods[period]
	if !ok {
		return badge.Asset{}, badge.NewError(badge.StatusUnsupportedVariant,
			fmt.Sprintf("Unsupported npm downloads period '%s'.", period), ctx)
	}

	encoded, err := badge.EncodePackagePath(name, ctx)
	if err != nil {
		return badge.Asset{}, err
	}

	path := spec.path + "/" + encoded
	alt := provided(opts.Alt, fmt.Sprintf("%s npm downloads for the %s library", spec.adjective, name))
	href := provided(opts.Href, "https://www.npmjs.com/package/"+name)

	asset, err := badge.BuildAsset(opts.assetOptions(path, alt, href, opts.Label, opts.Message, opts.Logo))
	if err != nil {
		return badge.Asset{}, withContext(err, ctx)
	}
	return asset, nil
}

// packageName normalizes a package name, unwrapping npm package URLs.
func packageName(raw string, ctx *badge.ErrorContext) (string, error) {
	name, err := badge.NormalizePackageName(raw)
	if err != nil {
		return "", withContext(err, ctx)
	}
	if !strings.HasPrefix(name, "pkg:") {
		return name, nil
	}

	purl, err := packageurl.FromString(name)
	if err != nil {
		return "", badge.NewError(badge.StatusInvalidInput,
			fmt.Sprintf("Invalid package URL '%s'.", name), ctx)
	}
	if purl.Type != packageurl.TypeNPM {
		return "", badge.NewError(badge.StatusInvalidInput,
			fmt.Sprintf("Package URL '%s' is not an npm package.", name), ctx)
	}
	if purl.Namespace != "" {
		return purl.Namespace + "/" + purl.Name, nil
	}
	return purl.Name, nil
}
