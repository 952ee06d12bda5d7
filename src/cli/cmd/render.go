package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sofmeright/badgekit/src/config"
	"github.com/sofmeright/badgekit/src/gitver"
	"github.com/sofmeright/badgekit/src/narrator"
	"github.com/sofmeright/badgekit/src/variant"
)

var (
	rdFormat  string
	rdFile    string
	rdSection string
	rdDryRun  bool
	rdCheck   bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render all configured badges",
	Long: `Build every badge in the config and print the composed rows.

With --file the rows are written into the managed section of that file:

	<!-- badgekit:badges -->
	...
	<!-- /badgekit:badges -->

An existing section is replaced in place; otherwise one is appended.
--check leaves the file alone and fails when the section is missing or
differs from the freshly rendered rows, for use in CI.
GitHub license badges without a repository use the origin remote.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&rdFormat, "format", "markdown", "output format: markdown or html")
	renderCmd.Flags().StringVar(&rdFile, "file", "", "inject into this file instead of printing")
	renderCmd.Flags().StringVar(&rdSection, "section", "badges", "managed section name")
	renderCmd.Flags().BoolVar(&rdDryRun, "dry-run", false, "preview changes without writing files")
	renderCmd.Flags().BoolVar(&rdCheck, "check", false, "fail if the section in --file is not up to date")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if len(cfg.Badges) == 0 {
		return fmt.Errorf("no badges configured")
	}

	if rdCheck && rdFile == "" {
		return fmt.Errorf("--check requires --file")
	}

	format, err := narrator.ParseFormat(rdFormat)
	if err != nil {
		return err
	}

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	composed, err := narrator.Render(withDetectedRepository(cfg, rootDir), format)
	if err != nil {
		return err
	}

	if rdFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), composed)
		return nil
	}
	if rdCheck {
		return checkFile(cmd, rdFile, rdSection, composed)
	}
	return injectFile(cmd, rdFile, rdSection, composed)
}

// withDetectedRepository fills empty github-license repositories from the
// origin remote. The caller's config is not modified.
func withDetectedRepository(c *config.Config, rootDir string) *config.Config {
	missing := func(item config.BadgeItem) bool {
		return item.VariantKind() == variant.KindGithubLicense && strings.TrimSpace(item.Repository) == ""
	}
	if !slices.ContainsFunc(c.Badges, missing) {
		return c
	}

	repository, err := gitver.DetectRepository(rootDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  warning: repository detection failed: %v\n", err)
		return c
	}
	logrus.Debugf("using %s for github-license badges without a repository", repository)

	out := *c
	out.Badges = slices.Clone(c.Badges)
	for i := range out.Badges {
		if missing(out.Badges[i]) {
			out.Badges[i].Repository = repository
		}
	}
	return &out
}

// readDoc returns the contents of path, or "" when it does not exist yet.
func readDoc(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("render: reading %s: %w", path, err)
	}
	return string(raw), nil
}

// checkFile compares the managed section of path with composed.
func checkFile(cmd *cobra.Command, path, section, composed string) error {
	content, err := readDoc(path)
	if err != nil {
		return err
	}

	current, found := narrator.SectionContent(content, section)
	switch {
	case !found:
		return fmt.Errorf("render: %s has no %s section", path, section)
	case current != composed:
		return fmt.Errorf("render: section %s in %s is out of date (run render --file %s)", section, path, path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  render %s (up to date)\n", path)
	return nil
}

func injectFile(cmd *cobra.Command, path, section, composed string) error {
	content, err := readDoc(path)
	if err != nil {
		return err
	}

	exists := narrator.HasSection(content, section)
	updated, _ := narrator.Inject(content, section, composed)
	logrus.Debugf("section %s exists: %t", section, exists)

	out := cmd.OutOrStdout()
	if updated == content {
		fmt.Fprintf(out, "  render %s (unchanged)\n", path)
		return nil
	}
	if rdDryRun {
		if exists {
			fmt.Fprintf(out, "  render %s (changed)\n", path)
		} else {
			fmt.Fprintf(out, "  render %s (section %s missing, would append)\n", path, section)
		}
		fmt.Fprintln(out, updated)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	fmt.Fprintf(out, "  render %s (updated)\n", path)
	return nil
}
