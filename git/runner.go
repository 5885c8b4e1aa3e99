package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner is the exec-backed Gateway implementation. It drives the git
// binary against a single working copy; it assumes exclusive access to
// that working copy for the duration of one operation.
type Runner struct {
	Path   string
	Remote string
}

// NewRunner creates a Runner for the repository at path, pushing to and
// fetching from the named remote.
func NewRunner(path string, remote string) (*Runner, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %v", err)
	}
	return &Runner{Path: absPath, Remote: remote}, nil
}

// run executes a git command in the repository and returns its combined
// output with surrounding whitespace trimmed.
func (r *Runner) run(args ...string) (string, error) {
	cmdArgs := append([]string{"-C", r.Path}, args...)
	cmd := exec.Command("git", cmdArgs...)
	output, err := cmd.CombinedOutput()
	outStr := strings.TrimSpace(string(output))
	if err != nil {
		if outStr != "" {
			return outStr, fmt.Errorf("%v\n%s", err, outStr)
		}
		return outStr, err
	}
	return outStr, nil
}

// IsInsideRepository reports whether the working tree is under version
// control.
func (r *Runner) IsInsideRepository() bool {
	out, err := r.run("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// HeadCommit resolves HEAD to a commit id. It fails when the repository
// has no commits yet.
func (r *Runner) HeadCommit() (string, error) {
	out, err := r.run("rev-parse", "--verify", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %v", err)
	}
	return out, nil
}

// LatestTagByCreationTime returns the tag with the maximum creation date
// across the entire tag namespace, regardless of format. It returns nil
// when no tags exist.
func (r *Runner) LatestTagByCreationTime() (*TagRef, error) {
	out, err := r.run("for-each-ref", "refs/tags",
		"--sort=-creatordate", "--count=1",
		"--format=%(refname:short)%09%(creatordate:iso-strict)")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %v", err)
	}
	if out == "" {
		return nil, nil
	}
	return parseTagRefLine(out)
}

// TagExists checks whether a tag with exactly the given name exists.
func (r *Runner) TagExists(name string) (bool, error) {
	cmd := exec.Command("git", "-C", r.Path, "show-ref", "--verify", "--quiet", "refs/tags/"+name)
	err := cmd.Run()
	if err != nil {
		// Exit code 1 means the tag doesn't exist, which is not an
		// error for our purposes
		if exitError, ok := err.(*exec.ExitError); ok && exitError.ExitCode() == 1 {
			return false, nil
		}
		return false, fmt.Errorf("failed to check tag %s: %v", name, err)
	}
	return true, nil
}

// CreateTag creates a lightweight tag at the given commit. Exactly one
// new ref is created on success; no existing refs are touched.
func (r *Runner) CreateTag(name, atCommit string) error {
	if _, err := r.run("tag", name, atCommit); err != nil {
		return fmt.Errorf("failed to create tag %s: %v", name, err)
	}
	return nil
}

// PushTag pushes a single tag to the remote.
func (r *Runner) PushTag(name string) error {
	if _, err := r.run("push", r.Remote, name); err != nil {
		return fmt.Errorf("failed to push tag %s: %v", name, err)
	}
	return nil
}

// PushAllTags pushes every local tag to the remote.
func (r *Runner) PushAllTags() error {
	if _, err := r.run("push", r.Remote, "--tags"); err != nil {
		return fmt.Errorf("failed to push tags: %v", err)
	}
	return nil
}

// CurrentBranchName returns the checked-out branch name. It fails on a
// detached HEAD.
func (r *Runner) CurrentBranchName() (string, error) {
	out, err := r.run("symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve current branch (detached HEAD?): %v", err)
	}
	return out, nil
}

// PullBranch pulls updates for the named branch from the remote.
func (r *Runner) PullBranch(name string) error {
	if _, err := r.run("pull", r.Remote, name); err != nil {
		return fmt.Errorf("failed to pull branch %s: %v", name, err)
	}
	return nil
}

// ForceFetchTags fetches all tags from the remote, overwriting any local
// tag whose name collides with a remote tag. Remote tags are the source
// of truth.
func (r *Runner) ForceFetchTags() error {
	if _, err := r.run("fetch", r.Remote, "--tags", "--force"); err != nil {
		return fmt.Errorf("failed to fetch tags: %v", err)
	}
	return nil
}

// PruneLocalTagsNotOnRemote deletes every local tag absent from the
// remote tag set.
func (r *Runner) PruneLocalTagsNotOnRemote() error {
	if _, err := r.run("fetch", r.Remote, "--prune", "--prune-tags"); err != nil {
		return fmt.Errorf("failed to prune local tags: %v", err)
	}
	return nil
}

// FetchAndPruneRemoteBranches fetches from the remote and prunes stale
// remote-tracking refs.
func (r *Runner) FetchAndPruneRemoteBranches() error {
	if _, err := r.run("fetch", r.Remote, "--prune"); err != nil {
		return fmt.Errorf("failed to fetch from remote: %v", err)
	}
	return nil
}

// ListLocalBranches returns every local branch with its tracking state
// and whether it is fully merged into the current merge base.
func (r *Runner) ListLocalBranches() ([]Branch, error) {
	out, err := r.run("for-each-ref", "refs/heads",
		"--format=%(HEAD)%09%(refname:short)%09%(upstream)%09%(upstream:track)")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %v", err)
	}

	mergedOut, err := r.run("branch", "--merged", "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("failed to list merged branches: %v", err)
	}
	merged := make(map[string]bool)
	for _, name := range strings.Split(mergedOut, "\n") {
		name = strings.TrimSpace(name)
		if name != "" {
			merged[name] = true
		}
	}

	var branches []Branch
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		branch, err := parseLocalBranchLine(line)
		if err != nil {
			return nil, err
		}
		branch.IsMerged = merged[branch.Name]
		branches = append(branches, branch)
	}
	return branches, nil
}

// DeleteBranchSafe deletes a local branch only if it is fully merged.
func (r *Runner) DeleteBranchSafe(name string) error {
	if _, err := r.run("branch", "-d", name); err != nil {
		return fmt.Errorf("failed to delete branch %s: %v", name, err)
	}
	return nil
}

// DeleteBranchForced deletes a local branch regardless of merge status.
func (r *Runner) DeleteBranchForced(name string) error {
	if _, err := r.run("branch", "-D", name); err != nil {
		return fmt.Errorf("failed to force-delete branch %s: %v", name, err)
	}
	return nil
}

// ListRemoteBranchesByCommitDate returns remote-tracking branches sorted
// by commit date descending, most recent first.
func (r *Runner) ListRemoteBranchesByCommitDate() ([]RemoteBranch, error) {
	out, err := r.run("for-each-ref", "refs/remotes/"+r.Remote,
		"--sort=-committerdate",
		"--format=%(refname:short)%09%(authorname)%09%(committerdate:iso-strict)")
	if err != nil {
		return nil, fmt.Errorf("failed to list remote branches: %v", err)
	}

	var branches []RemoteBranch
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		branch, ok, err := parseRemoteBranchLine(line, r.Remote)
		if err != nil {
			return nil, err
		}
		if ok {
			branches = append(branches, branch)
		}
	}
	return branches, nil
}
