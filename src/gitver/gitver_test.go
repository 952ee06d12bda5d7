package gitver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with a single commit and returns its path
// and the commit hash.
func initRepo(t *testing.T, remote string) (string, plumbing.Hash) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	if remote != "" {
		_, err = repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{remote}})
		require.NoError(t, err)
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Unix(1700000000, 0)},
	})
	require.NoError(t, err)
	return dir, hash
}

func tag(t *testing.T, dir string, hash plumbing.Hash, names ...string) {
	t.Helper()
	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	for _, name := range names {
		_, err := repo.CreateTag(name, hash, nil)
		require.NoError(t, err)
	}
}

func TestLatestVersion(t *testing.T) {
	t.Parallel()
	dir, hash := initRepo(t, "")
	tag(t, dir, hash, "v1.2.0", "v1.10.0", "v1.9.9", "v2.0.0-rc.1", "nightly")

	v, err := LatestVersion(dir, false)
	require.NoError(t, err)
	require.Equal(t, "v1.10.0", v.Tag)
	require.Equal(t, "1.10.0", v.String())
	require.False(t, v.IsPrerelease())

	v, err = LatestVersion(dir, true)
	require.NoError(t, err)
	require.Equal(t, "v2.0.0-rc.1", v.Tag)
	require.True(t, v.IsPrerelease())
}

func TestLatestVersionNoTags(t *testing.T) {
	t.Parallel()
	dir, hash := initRepo(t, "")
	tag(t, dir, hash, "latest")

	_, err := LatestVersion(dir, false)
	require.True(t, errors.Is(err, ErrNoVersionTags))
}

func TestLatestVersionNotARepo(t *testing.T) {
	t.Parallel()
	_, err := LatestVersion(t.TempDir(), false)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNoVersionTags))
}

func TestDetectRepository(t *testing.T) {
	t.Parallel()
	dir, _ := initRepo(t, "git@github.com:withastro/astro.git")

	sub := filepath.Join(dir, "docs", "src")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	for _, d := range []string{dir, sub} {
		got, err := DetectRepository(d)
		require.NoError(t, err)
		require.Equal(t, "https://github.com/withastro/astro", got)
	}
}

func TestDetectRepositoryNoRemote(t *testing.T) {
	t.Parallel()
	dir, _ := initRepo(t, "")
	_, err := DetectRepository(dir)
	require.Error(t, err)
	require.True(t, errors.Is(err, git.ErrRemoteNotFound))
}

func TestRemoteToHTTPS(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name   string
		remote string
		want   string
	}{
		{"https", "https://github.com/foo/bar.git", "https://github.com/foo/bar"},
		{"https-no-suffix", "https://github.com/foo/bar", "https://github.com/foo/bar"},
		{"scp", "git@github.com:foo/bar.git", "https://github.com/foo/bar"},
		{"ssh-url", "ssh://git@github.com/foo/bar.git", "https://github.com/foo/bar"},
		{"ssh-url-port", "ssh://git@github.com:22/foo/bar.git", "https://github.com/foo/bar"},
		{"git-protocol", "git://github.com/foo/bar.git", "https://github.com/foo/bar"},
		{"whitespace", "  git@github.com:foo/bar.git\n", "https://github.com/foo/bar"},
		{"local-path", "/srv/git/bar.git", "/srv/git/bar"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, RemoteToHTTPS(tc.remote))
		})
	}
}
