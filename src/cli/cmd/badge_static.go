package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/gitver"
	"github.com/sofmeright/badgekit/src/variant"
)

var (
	bsLabel       string
	bsMessage     string
	bsFromGitTag  bool
	bsPrereleases bool
)

var badgeStaticCmd = &cobra.Command{
	Use:   "static",
	Short: "Build a static text badge",
	Long: `Build a badge showing fixed label and message text.

With --from-git-tag the message is the highest semver tag of the current
repository and the label defaults to "version".`,
	RunE: runBadgeStatic,
}

func init() {
	badgeStaticCmd.Flags().StringVar(&bsLabel, "label", "", "left-hand text (required unless --from-git-tag)")
	badgeStaticCmd.Flags().StringVar(&bsMessage, "message", "", "right-hand text")
	badgeStaticCmd.Flags().BoolVar(&bsFromGitTag, "from-git-tag", false, "use the latest semver tag as the message")
	badgeStaticCmd.Flags().BoolVar(&bsPrereleases, "prerelease", false, "consider prerelease tags with --from-git-tag")

	badgeCmd.AddCommand(badgeStaticCmd)
}

func runBadgeStatic(cmd *cobra.Command, args []string) error {
	common, err := commonFromFlags(cmd)
	if err != nil {
		return err
	}

	opts := variant.StaticOptions{Common: common, Label: bsLabel}
	if cmd.Flags().Changed("message") {
		opts.Message = badge.Ptr(bsMessage)
	}

	if bsFromGitTag {
		rootDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		v, err := gitver.LatestVersion(rootDir, bsPrereleases)
		if err != nil {
			return fmt.Errorf("detecting version: %w", err)
		}
		if v.IsPrerelease() {
			logrus.Warnf("latest tag %s is a prerelease", v.Tag)
		}
		logrus.Debugf("using tag %s (version %s) as message", v.Tag, v.String())
		opts.Message = badge.Ptr(v.Tag)
		if !cmd.Flags().Changed("label") {
			opts.Label = "version"
		}
	}

	asset, err := variant.Static(opts)
	if err != nil {
		return err
	}
	return printAsset(cmd.OutOrStdout(), asset, bgFormat)
}
