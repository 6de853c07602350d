package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/git-pick/internal/git"
	"github.com/atomicstack/git-pick/internal/testutil"
)

func TestDiscoverFromSubdirectory(t *testing.T) {
	repo := testutil.NewScratchRepo(t)
	repo.WriteFile("pkg/doc.txt", "nested\n")
	repo.Git("add", ".")
	repo.Commit("add nested file")

	handle, err := git.Discover(repo.Dir + "/pkg")
	require.NoError(t, err)
	assert.Equal(t, repo.Dir, handle.Root())
}

func TestDiscoverOutsideRepository(t *testing.T) {
	testutil.RequireGit(t)
	_, err := git.Discover(t.TempDir())
	assert.ErrorIs(t, err, git.ErrNotARepository)
}

func TestListRefsAgainstRealRepository(t *testing.T) {
	repo := testutil.NewScratchRepo(t)
	repo.CreateBranch("feature/login")
	repo.CreateBranch("feature/auth")

	handle, err := git.Discover(repo.Dir)
	require.NoError(t, err)

	refs, err := handle.ListRefs(context.Background(), git.ScopeLocal)
	require.NoError(t, err)
	require.Len(t, refs, 3)

	names := make(map[string]git.Ref, len(refs))
	for _, ref := range refs {
		names[ref.Name] = ref
	}
	require.Contains(t, names, "main")
	require.Contains(t, names, "feature/login")
	require.Contains(t, names, "feature/auth")
	assert.True(t, names["main"].IsCurrent)
	assert.False(t, names["feature/login"].IsCurrent)
	assert.Equal(t, "initial commit", names["feature/auth"].Subject)
}

func TestCheckoutDeleteRenameRoundTrip(t *testing.T) {
	repo := testutil.NewScratchRepo(t)
	repo.CreateBranch("feature/login")
	repo.CreateBranch("scratch")
	ctx := context.Background()

	handle, err := git.Discover(repo.Dir)
	require.NoError(t, err)

	require.NoError(t, handle.Checkout(ctx, "feature/login"))
	assert.Equal(t, "feature/login", repo.CurrentBranch())

	err = handle.Delete(ctx, "feature/login", false)
	assert.ErrorIs(t, err, git.ErrProtectedRef)

	require.NoError(t, handle.Delete(ctx, "scratch", false))
	assert.NotContains(t, repo.Branches(), "scratch")

	require.NoError(t, handle.Rename(ctx, "feature/login", "feature/signin"))
	assert.Equal(t, "feature/signin", repo.CurrentBranch())
}

func TestIsWorktreeCleanAgainstRealRepository(t *testing.T) {
	repo := testutil.NewScratchRepo(t)
	handle, err := git.Discover(repo.Dir)
	require.NoError(t, err)
	ctx := context.Background()

	clean, err := handle.IsWorktreeClean(ctx)
	require.NoError(t, err)
	assert.True(t, clean)

	repo.WriteFile("README.md", "changed\n")
	clean, err = handle.IsWorktreeClean(ctx)
	require.NoError(t, err)
	assert.False(t, clean)
}
