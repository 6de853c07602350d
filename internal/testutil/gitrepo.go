// Package testutil provides helpers for tests that exercise a real git binary.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RequireGit skips the calling test when git is not present on PATH.
func RequireGit(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("git")
	if err != nil {
		t.Skip("skipping: git binary not available")
	}
	return path
}

// ScratchRepo is a throwaway git repository under a temp dir. The temp dir
// is removed by the testing framework's cleanup.
type ScratchRepo struct {
	t   *testing.T
	Dir string
}

// NewScratchRepo initialises a repository with one commit on "main".
// Identity and default-branch settings are pinned so tests do not depend on
// the host's git config.
func NewScratchRepo(t *testing.T) *ScratchRepo {
	t.Helper()
	RequireGit(t)
	repo := &ScratchRepo{t: t, Dir: t.TempDir()}
	repo.Git("init", "--initial-branch=main")
	repo.Git("config", "user.name", "test")
	repo.Git("config", "user.email", "test@example.invalid")
	repo.WriteFile("README.md", "scratch\n")
	repo.Git("add", ".")
	repo.Commit("initial commit")
	return repo
}

// Git runs a git subcommand inside the repository and returns its trimmed
// output. The test fails on a non-zero exit.
func (r *ScratchRepo) Git(args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(),
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_AUTHOR_DATE=2024-01-01T00:00:00Z",
		"GIT_COMMITTER_DATE=2024-01-01T00:00:00Z",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// WriteFile creates or replaces a file relative to the repository root.
func (r *ScratchRepo) WriteFile(name, contents string) {
	r.t.Helper()
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		r.t.Fatalf("write %s: %v", name, err)
	}
}

// Commit records staged changes with a fixed author and committer date.
func (r *ScratchRepo) Commit(message string) {
	r.t.Helper()
	r.Git("commit", "--allow-empty", "-m", message)
}

// CreateBranch adds a branch pointing at HEAD without switching to it.
func (r *ScratchRepo) CreateBranch(name string) {
	r.t.Helper()
	r.Git("branch", name)
}

// CurrentBranch returns the short name of the checked-out branch.
func (r *ScratchRepo) CurrentBranch() string {
	r.t.Helper()
	return r.Git("symbolic-ref", "--short", "HEAD")
}

// Branches lists local branch names in for-each-ref order.
func (r *ScratchRepo) Branches() []string {
	r.t.Helper()
	out := r.Git("for-each-ref", "--format=%(refname:short)", "refs/heads")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
