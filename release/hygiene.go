package release

import (
	"fmt"

	"git_release_tool/git"
)

// alwaysProtected are the branch names exempt from automated deletion in
// every run, in addition to the current branch and any configured names.
var alwaysProtected = []string{"main", "master"}

// BranchOutcome is the result of one deletion attempt. Err is nil when
// the branch was deleted.
type BranchOutcome struct {
	Branch string
	Forced bool
	Err    error
}

// CleanBranches removes stale local branches: merged branches are safely
// deleted, branches whose upstream vanished on the remote are forcibly
// deleted. A fetch with pruning always runs first so classification
// never works from stale tracking metadata.
//
// Deletions are independent; one failure never aborts the batch. Every
// attempt is reported in the returned slice. The protected set (current
// branch, main, master, configured extras) is evaluated fresh on every
// run because branch deletion is irreversible.
func CleanBranches(repo git.Gateway, extraProtected []string) ([]BranchOutcome, error) {
	if err := repo.FetchAndPruneRemoteBranches(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteOperationFailed, err)
	}

	branches, err := repo.ListLocalBranches()
	if err != nil {
		return nil, fmt.Errorf("failed to classify branches: %v", err)
	}

	protected := make(map[string]bool)
	for _, name := range alwaysProtected {
		protected[name] = true
	}
	for _, name := range extraProtected {
		protected[name] = true
	}
	for _, branch := range branches {
		if branch.IsCurrent {
			protected[branch.Name] = true
		}
	}

	var outcomes []BranchOutcome
	deleted := make(map[string]bool)

	// Merged-branch pass: safe deletes. A safe delete failing because
	// the branch turned unmerged since classification is logged, not
	// fatal.
	for _, branch := range branches {
		if !branch.IsMerged || protected[branch.Name] {
			continue
		}
		outcome := BranchOutcome{Branch: branch.Name}
		if err := repo.DeleteBranchSafe(branch.Name); err != nil {
			outcome.Err = &BranchDeletionError{Branch: branch.Name, Cause: err}
		} else {
			deleted[branch.Name] = true
		}
		outcomes = append(outcomes, outcome)
	}

	// Gone-tracking pass: the upstream no longer exists, so these are
	// deleted unconditionally even if unmerged. The merge check is not a
	// reliable substitute for tracking state here.
	for _, branch := range branches {
		if branch.Tracking != git.TrackingGone || protected[branch.Name] || deleted[branch.Name] {
			continue
		}
		outcome := BranchOutcome{Branch: branch.Name, Forced: true}
		if err := repo.DeleteBranchForced(branch.Name); err != nil {
			outcome.Err = &BranchDeletionError{Branch: branch.Name, Cause: err}
		} else {
			deleted[branch.Name] = true
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}
