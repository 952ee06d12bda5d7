package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/variant"
)

var (
	npPackage string
	npPeriod  string
	npLabel   string
)

var badgeNpmCmd = &cobra.Command{
	Use:     "npm",
	Aliases: []string{"npm-downloads"},
	Short:   "Build an npm downloads badge",
	Long: `Build a badge showing how often an npm package is downloaded.

--package accepts a package name ("react", "@scope/name") or an npm package
URL ("pkg:npm/%40scope/name@1.0.0").`,
	RunE: runBadgeNpm,
}

func init() {
	badgeNpmCmd.Flags().StringVar(&npPackage, "package", "", "npm package name or purl (required)")
	badgeNpmCmd.Flags().StringVar(&npPeriod, "period", string(variant.PeriodYear), "download window")
	badgeNpmCmd.Flags().StringVar(&npLabel, "label", "", "label text (default: service label)")

	badgeCmd.AddCommand(badgeNpmCmd)
}

func runBadgeNpm(cmd *cobra.Command, args []string) error {
	common, err := commonFromFlags(cmd)
	if err != nil {
		return err
	}

	opts := variant.NpmDownloadsOptions{
		Common:      common,
		PackageName: npPackage,
		Period:      variant.Period(npPeriod),
	}
	if cmd.Flags().Changed("label") {
		opts.Label = badge.Ptr(npLabel)
	}

	asset, err := variant.NpmDownloads(opts)
	if err != nil {
		return err
	}
	return printAsset(cmd.OutOrStdout(), asset, bgFormat)
}
