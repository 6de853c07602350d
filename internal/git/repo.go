package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository bundles the discovered repository root with the runner used
// for all plumbing calls.
type Repository struct {
	root   string
	repo   *gogit.Repository
	runner Runner
}

// Discover locates the repository enclosing dir (walking up like git does)
// and returns a handle rooted at its worktree. Returns ErrNotARepository
// when dir is not inside a working tree.
func Discover(dir string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotARepository, dir)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		// Bare repositories have refs but no worktree to switch.
		return nil, fmt.Errorf("%w: %s is bare", ErrNotARepository, dir)
	}
	root := worktree.Filesystem.Root()
	return &Repository{
		root:   root,
		repo:   repo,
		runner: NewCommandRunner(root),
	}, nil
}

// NewRepository wires a handle around an explicit runner, for tests.
func NewRepository(root string, runner Runner) *Repository {
	return &Repository{root: root, runner: runner}
}

// Root returns the worktree root directory.
func (r *Repository) Root() string {
	return r.root
}

// Runner exposes the underlying command runner.
func (r *Repository) Runner() Runner {
	return r.runner
}

// CurrentBranch returns the short name of the checked-out branch, or
// ErrDetachedHead when HEAD is not on a branch.
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	if r.repo != nil {
		head, err := r.repo.Head()
		if err != nil {
			if err == plumbing.ErrReferenceNotFound {
				// Unborn HEAD in a fresh repository still names a branch.
				return r.symbolicHead(ctx)
			}
			return "", err
		}
		if !head.Name().IsBranch() {
			return "", ErrDetachedHead
		}
		return head.Name().Short(), nil
	}
	return r.symbolicHead(ctx)
}

func (r *Repository) symbolicHead(ctx context.Context) (string, error) {
	out, ok, err := r.runner.Try(ctx, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	if !ok || out == "" {
		return "", ErrDetachedHead
	}
	return out, nil
}

// IsWorktreeClean reports whether the index and worktree carry no changes
// that would block a branch switch. Untracked and ignored files do not
// count.
func (r *Repository) IsWorktreeClean(ctx context.Context) (bool, error) {
	lines, err := Lines(ctx, r.runner, "status", "--porcelain=1", "--untracked-files=no", "--ignored=no")
	if err != nil {
		return false, err
	}
	return len(lines) == 0, nil
}

// RefExists reports whether the fully qualified refname resolves.
func (r *Repository) RefExists(ctx context.Context, refname string) (bool, error) {
	return Succeeds(ctx, r.runner, "show-ref", "--quiet", refname)
}

// Upstream returns the short upstream name of branch ("origin/foo"), or
// ok=false when no upstream is configured.
func (r *Repository) Upstream(ctx context.Context, branch string) (string, bool, error) {
	return r.runner.Try(ctx, "rev-parse", "--quiet", "--abbrev-ref", "--verify", branch+"@{upstream}")
}
