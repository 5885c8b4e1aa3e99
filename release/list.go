package release

import (
	"fmt"

	"git_release_tool/git"
)

// ListBranches returns remote-tracking branches sorted by commit date
// descending, most recent first. Pure read: each call re-queries live
// state, nothing is cached between calls.
func ListBranches(repo git.Gateway) ([]git.RemoteBranch, error) {
	branches, err := repo.ListRemoteBranchesByCommitDate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteOperationFailed, err)
	}
	return branches, nil
}
