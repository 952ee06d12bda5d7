package gitver

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// DetectRepository returns the origin remote of the repository containing
// rootDir as an https URL, ready for badge.ParseGithubRepository.
func DetectRepository(rootDir string) (string, error) {
	return DetectRemote(rootDir, "origin")
}

// DetectRemote returns the first URL of the named remote as an https URL.
func DetectRemote(rootDir, name string) (string, error) {
	repo, err := open(rootDir)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("reading remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no url", name)
	}

	https := RemoteToHTTPS(urls[0])
	logrus.Debugf("remote %s: %s -> %s", name, urls[0], https)
	return https, nil
}

// RemoteToHTTPS converts a git remote URL to https form.
// SSH remotes (git@host:org/repo.git, ssh://git@host:22/org/repo.git)
// become https://host/org/repo. HTTPS remotes pass through with .git
// stripped. Anything else is returned unchanged.
func RemoteToHTTPS(remote string) string {
	remote = strings.TrimSuffix(strings.TrimSpace(remote), ".git")

	if strings.HasPrefix(remote, "https://") || strings.HasPrefix(remote, "http://") {
		return remote
	}

	// URL form with another scheme: ssh://, git://
	if u, err := url.Parse(remote); err == nil && u.Scheme != "" && u.Host != "" {
		return "https://" + u.Hostname() + u.Path
	}

	// scp-like form: git@host:org/repo
	if idx := strings.Index(remote, "@"); idx != -1 {
		rest := strings.Replace(remote[idx+1:], ":", "/", 1)
		return "https://" + rest
	}

	return remote
}
