// Package gitver reads badge inputs from the local git repository: the
// GitHub repository behind the origin remote and the highest semantic
// version tag. Everything is read through go-git, no git binary is needed.
package gitver

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sirupsen/logrus"
)

// ErrNoVersionTags is returned when no tag parses as a semantic version.
var ErrNoVersionTags = errors.New("no semver tags found")

// VersionInfo is a version tag resolved from git.
type VersionInfo struct {
	Tag     string          // tag name as written: "v1.2.3"
	Version *semver.Version // parsed version
}

// String returns the version without any "v" prefix: "1.2.3".
func (v VersionInfo) String() string {
	return v.Version.String()
}

// IsPrerelease reports whether the tag carries a prerelease suffix.
func (v VersionInfo) IsPrerelease() bool {
	return v.Version.Prerelease() != ""
}

// LatestVersion returns the highest semver tag in the repository containing
// rootDir. Tags that are not semantic versions are skipped. Prerelease tags
// only count when includePrerelease is set.
func LatestVersion(rootDir string, includePrerelease bool) (*VersionInfo, error) {
	repo, err := open(rootDir)
	if err != nil {
		return nil, err
	}

	tags, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var latest *VersionInfo
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		v, err := semver.NewVersion(name)
		if err != nil {
			logrus.Debugf("skipping non-semver tag %s", name)
			return nil
		}
		candidate := &VersionInfo{Tag: name, Version: v}
		if candidate.IsPrerelease() && !includePrerelease {
			logrus.Debugf("skipping prerelease tag %s", name)
			return nil
		}
		if latest == nil || v.GreaterThan(latest.Version) {
			latest = candidate
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading tags: %w", err)
	}
	if latest == nil {
		return nil, ErrNoVersionTags
	}
	logrus.Debugf("latest version tag: %s (%s)", latest.Tag, latest)
	return latest, nil
}

// open opens the repository containing dir, searching parent directories.
func open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", dir, err)
	}
	return repo, nil
}
