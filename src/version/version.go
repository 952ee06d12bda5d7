// Package version carries build metadata injected via -ldflags.
package version

import "fmt"

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info is the build metadata as a value.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
}

// Get returns the current build metadata.
func Get() Info {
	return Info{Version: Version, Commit: Commit, BuildDate: BuildDate}
}

// String returns a human-readable version string.
func String() string {
	return Get().String()
}

func (i Info) String() string {
	return fmt.Sprintf("badgekit %s (%s, %s)", i.Version, i.Commit, i.BuildDate)
}
