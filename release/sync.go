package release

import (
	"fmt"

	"git_release_tool/git"
)

// SyncOutcome is the tri-state result of a sync run.
type SyncOutcome int

const (
	SyncSuccess SyncOutcome = iota
	SyncPartialSuccess
	SyncFailure
)

func (o SyncOutcome) String() string {
	switch o {
	case SyncSuccess:
		return "success"
	case SyncPartialSuccess:
		return "partial success"
	default:
		return "failure"
	}
}

// SyncResult reports both sync phases. Warnings never escalate the
// outcome to SyncFailure; Err is set only on a fatal phase B failure.
type SyncResult struct {
	Outcome  SyncOutcome
	Warnings []string
	Err      error
}

// Sync pulls the current branch and force-synchronizes tags from the
// remote, pruning tags that vanished remotely.
//
// Phase A (branch pull) failures are warnings: tag reconciliation is
// independent and is still attempted. Phase B treats remote tags as the
// source of truth; the force-fetch failing is fatal, the prune pass
// failing afterwards is a warning.
func Sync(repo git.Gateway) SyncResult {
	var result SyncResult

	branch, err := repo.CurrentBranchName()
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("skipping branch pull: %v", err))
	} else if err := repo.PullBranch(branch); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("failed to pull branch %s: %v", branch, err))
	}

	if err := repo.ForceFetchTags(); err != nil {
		result.Outcome = SyncFailure
		result.Err = fmt.Errorf("%w: %v", ErrRemoteOperationFailed, err)
		return result
	}

	if err := repo.PruneLocalTagsNotOnRemote(); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%v: %v", ErrPruneIncomplete, err))
	}

	if len(result.Warnings) > 0 {
		result.Outcome = SyncPartialSuccess
	} else {
		result.Outcome = SyncSuccess
	}
	return result
}
