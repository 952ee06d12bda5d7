package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/badgekit/src/version"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			return printJSON(cmd.OutOrStdout(), version.Get())
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print build metadata as JSON")

	rootCmd.AddCommand(versionCmd)
}
