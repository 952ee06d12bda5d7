package variant

import (
	"fmt"

	"github.com/sofmeright/badgekit/src/badge"
)

// GithubLicenseOptions configures a GitHub license badge.
type GithubLicenseOptions struct {
	Common

	Repository string  // "owner/name" or a repository URL; required
	Label      *string // nil = "license"
	Message    *string
}

// GithubLicense builds a badge showing the license GitHub detects for a
// repository.
func GithubLicense(opts GithubLicenseOptions) (badge.Asset, error) {
	ctx := badge.ApplyVariantContext(opts.Context, string(KindGithubLicense))

	reference := badge.TrimSpace(opts.Repository)
	if reference == "" {
		return badge.Asset{}, badge.NewError(badge.StatusInvalidInput,
			"A repository identifier is required to build a GitHub license badge.", ctx)
	}

	repo, err := badge.ParseGithubRepository(reference, ctx)
	if err != nil {
		return badge.Asset{}, err
	}

	path := fmt.Sprintf("github/license/%s/%s", repo.Owner, repo.Name)
	alt := provided(opts.Alt, "License information for "+repo.String())
	href := provided(opts.Href, fmt.Sprintf("https://github.com/%s/%s/blob/HEAD/LICENSE", repo.Owner, repo.Name))

	asset, err := badge.BuildAsset(opts.assetOptions(path, alt, href,
		orDefault(opts.Label, "license"), opts.Message, orDefault(opts.Logo, "github")))
	if err != nil {
		return badge.Asset{}, withContext(err, ctx)
	}
	return asset, nil
}
