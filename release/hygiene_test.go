package release

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git_release_tool/git"
)

func TestCleanBranchesProtectsMainEvenWhenGoneAndMerged(t *testing.T) {
	repo := newFakeRepo()
	repo.branches = []git.Branch{
		{Name: "main", Tracking: git.TrackingGone, IsMerged: true},
	}

	outcomes, err := CleanBranches(repo, nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
	assert.Empty(t, repo.safeDeleted)
	assert.Empty(t, repo.forceDeleted)
}

func TestCleanBranchesForceDeletesGoneUnmerged(t *testing.T) {
	repo := newFakeRepo()
	repo.branches = []git.Branch{
		{Name: "feature/stale", Tracking: git.TrackingGone, IsMerged: false},
	}

	outcomes, err := CleanBranches(repo, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Forced)
	assert.NoError(t, outcomes[0].Err)
	assert.Equal(t, []string{"feature/stale"}, repo.forceDeleted)
	assert.Empty(t, repo.safeDeleted)
}

func TestCleanBranchesSafeDeletesMergedTracked(t *testing.T) {
	repo := newFakeRepo()
	repo.branches = []git.Branch{
		{Name: "feature/done", Tracking: git.TrackingTracked, IsMerged: true},
	}

	outcomes, err := CleanBranches(repo, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Forced)
	assert.Equal(t, []string{"feature/done"}, repo.safeDeleted)
	assert.Empty(t, repo.forceDeleted)
}

func TestCleanBranchesProtectsCurrentBranch(t *testing.T) {
	repo := newFakeRepo()
	repo.branches = []git.Branch{
		{Name: "feature/wip", IsCurrent: true, Tracking: git.TrackingGone, IsMerged: true},
	}

	outcomes, err := CleanBranches(repo, nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestCleanBranchesHonorsConfiguredProtection(t *testing.T) {
	repo := newFakeRepo()
	repo.branches = []git.Branch{
		{Name: "develop", Tracking: git.TrackingTracked, IsMerged: true},
	}

	outcomes, err := CleanBranches(repo, []string{"develop"})
	require.NoError(t, err)
	assert.Empty(t, outcomes)
	assert.Empty(t, repo.safeDeleted)
}

func TestCleanBranchesFetchFailureIsFatal(t *testing.T) {
	repo := newFakeRepo()
	repo.fetchPruneErr = errors.New("remote unreachable")
	repo.branches = []git.Branch{
		{Name: "feature/done", Tracking: git.TrackingTracked, IsMerged: true},
	}

	_, err := CleanBranches(repo, nil)
	assert.ErrorIs(t, err, ErrRemoteOperationFailed)
	assert.Empty(t, repo.safeDeleted, "no deletion may run on stale tracking data")
}

func TestCleanBranchesIsolatesPerBranchFailures(t *testing.T) {
	repo := newFakeRepo()
	repo.branches = []git.Branch{
		{Name: "feature/a", Tracking: git.TrackingTracked, IsMerged: true},
		{Name: "feature/b", Tracking: git.TrackingTracked, IsMerged: true},
		{Name: "feature/c", Tracking: git.TrackingGone, IsMerged: false},
	}
	repo.safeDeleteErr = map[string]error{
		"feature/a": errors.New("branch not fully merged"),
	}

	outcomes, err := CleanBranches(repo, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	var failed []string
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			var delErr *BranchDeletionError
			require.ErrorAs(t, outcome.Err, &delErr)
			failed = append(failed, delErr.Branch)
		}
	}
	assert.Equal(t, []string{"feature/a"}, failed)
	assert.Equal(t, []string{"feature/b"}, repo.safeDeleted)
	assert.Equal(t, []string{"feature/c"}, repo.forceDeleted)
}

func TestCleanBranchesDeletesEachBranchOnce(t *testing.T) {
	repo := newFakeRepo()
	// Merged and gone: the safe delete in the merged pass succeeds, so
	// the gone pass must not attempt it again.
	repo.branches = []git.Branch{
		{Name: "feature/landed", Tracking: git.TrackingGone, IsMerged: true},
	}

	outcomes, err := CleanBranches(repo, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, []string{"feature/landed"}, repo.safeDeleted)
	assert.Empty(t, repo.forceDeleted)
}
