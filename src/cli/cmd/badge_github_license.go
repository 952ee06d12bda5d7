package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/gitver"
	"github.com/sofmeright/badgekit/src/variant"
)

var (
	glRepository string
	glLabel      string
)

var badgeGithubLicenseCmd = &cobra.Command{
	Use:     "github-license",
	Aliases: []string{"license"},
	Short:   "Build a GitHub license badge",
	Long: `Build a badge showing the license GitHub detects for a repository.

--repository accepts "owner/name" or any repository URL. Without it the
origin remote of the current git repository is used.`,
	RunE: runBadgeGithubLicense,
}

func init() {
	badgeGithubLicenseCmd.Flags().StringVar(&glRepository, "repository", "", "owner/name or repository URL (default: origin remote)")
	badgeGithubLicenseCmd.Flags().StringVar(&glLabel, "label", "", `label text (default: "license")`)

	badgeCmd.AddCommand(badgeGithubLicenseCmd)
}

func runBadgeGithubLicense(cmd *cobra.Command, args []string) error {
	common, err := commonFromFlags(cmd)
	if err != nil {
		return err
	}

	repository := glRepository
	if strings.TrimSpace(repository) == "" {
		rootDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		repository, err = gitver.DetectRepository(rootDir)
		if err != nil {
			return fmt.Errorf("detecting repository (pass --repository): %w", err)
		}
	}

	opts := variant.GithubLicenseOptions{Common: common, Repository: repository}
	if cmd.Flags().Changed("label") {
		opts.Label = badge.Ptr(glLabel)
	}

	asset, err := variant.GithubLicense(opts)
	if err != nil {
		return err
	}
	return printAsset(cmd.OutOrStdout(), asset, bgFormat)
}
