package git

import "time"

// TrackingState describes whether a local branch's configured upstream
// reference still exists on the remote.
type TrackingState int

const (
	// TrackingNone means the branch has no configured upstream.
	TrackingNone TrackingState = iota
	// TrackingTracked means the upstream reference still exists.
	TrackingTracked
	// TrackingGone means the upstream branch was deleted on the remote.
	TrackingGone
)

func (s TrackingState) String() string {
	switch s {
	case TrackingTracked:
		return "tracked"
	case TrackingGone:
		return "gone"
	default:
		return "none"
	}
}

// TagRef is one existing ref in the tag namespace, any format.
type TagRef struct {
	Name      string
	CreatedAt time.Time
}

// Branch is a local branch with the tracking metadata the hygiene engine
// classifies on.
type Branch struct {
	Name      string
	IsCurrent bool
	Tracking  TrackingState
	IsMerged  bool
}

// RemoteBranch is one remote-tracking branch with its last commit info.
type RemoteBranch struct {
	Name   string
	Author string
	Date   time.Time
}

// Gateway is the capability set the engines consume. It is satisfied by
// the exec-backed Runner and by in-memory fakes in tests.
type Gateway interface {
	IsInsideRepository() bool
	HeadCommit() (string, error)
	LatestTagByCreationTime() (*TagRef, error)
	TagExists(name string) (bool, error)
	CreateTag(name, atCommit string) error
	PushTag(name string) error
	PushAllTags() error
	CurrentBranchName() (string, error)
	PullBranch(name string) error
	ForceFetchTags() error
	PruneLocalTagsNotOnRemote() error
	FetchAndPruneRemoteBranches() error
	ListLocalBranches() ([]Branch, error)
	DeleteBranchSafe(name string) error
	DeleteBranchForced(name string) error
	ListRemoteBranchesByCommitDate() ([]RemoteBranch, error)
}
