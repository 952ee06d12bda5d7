package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/variant"
)

var (
	tsName    string
	tsLabel   string
	tsMessage string
)

var badgeTechCmd = &cobra.Command{
	Use:     "tech",
	Aliases: []string{"tech-stack"},
	Short:   "Build a tech stack badge",
	RunE:    runBadgeTech,
}

func init() {
	badgeTechCmd.Flags().StringVar(&tsName, "name", "", "technology name (required)")
	badgeTechCmd.Flags().StringVar(&tsLabel, "label", "", `label text (default: "stack")`)
	badgeTechCmd.Flags().StringVar(&tsMessage, "message", "", "message text (default: --name)")

	badgeCmd.AddCommand(badgeTechCmd)
}

func runBadgeTech(cmd *cobra.Command, args []string) error {
	common, err := commonFromFlags(cmd)
	if err != nil {
		return err
	}

	opts := variant.TechStackOptions{Common: common, Name: tsName}
	if cmd.Flags().Changed("label") {
		opts.Label = badge.Ptr(tsLabel)
	}
	if cmd.Flags().Changed("message") {
		opts.Message = badge.Ptr(tsMessage)
	}

	asset, err := variant.TechStack(opts)
	if err != nil {
		return err
	}
	return printAsset(cmd.OutOrStdout(), asset, bgFormat)
}
