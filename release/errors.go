package release

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tag lifecycle. Callers match with errors.Is.
var (
	// ErrNotARepository is returned when the working tree is not under
	// version control.
	ErrNotARepository = errors.New("not a git repository")

	// ErrNoCommitsAtHead is returned when HEAD has no resolvable commit,
	// so there is nothing to tag.
	ErrNoCommitsAtHead = errors.New("no commits at HEAD")

	// ErrTagSpaceExhausted is returned when the collision-avoidance loop
	// exceeds its probe cap, which indicates corrupted ref data.
	ErrTagSpaceExhausted = errors.New("tag space exhausted")

	// ErrTagCreationFailed wraps a tag-creation failure reported by the
	// repository (permissions, hooks).
	ErrTagCreationFailed = errors.New("tag creation failed")

	// ErrRemoteOperationFailed wraps a failed push, pull or fetch.
	ErrRemoteOperationFailed = errors.New("remote operation failed")

	// ErrPruneIncomplete is warning level: the force-fetch succeeded but
	// the prune pass afterwards did not, so local state is at worst only
	// partially cleaned.
	ErrPruneIncomplete = errors.New("tag prune incomplete")
)

// UnrecognizedTagFormatError names a latest tag that matches neither the
// release nor the dev-release form. Auto-increment never guesses the
// intent of a foreign tagging scheme.
type UnrecognizedTagFormatError struct {
	Tag string
}

func (e *UnrecognizedTagFormatError) Error() string {
	return fmt.Sprintf("unrecognized tag format: %q", e.Tag)
}

// BranchDeletionError is a per-branch hygiene failure. It is collected,
// never fatal for the batch.
type BranchDeletionError struct {
	Branch string
	Cause  error
}

func (e *BranchDeletionError) Error() string {
	return fmt.Sprintf("failed to delete branch %s: %v", e.Branch, e.Cause)
}

func (e *BranchDeletionError) Unwrap() error {
	return e.Cause
}
