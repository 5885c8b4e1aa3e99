package release

import (
	"errors"

	"git_release_tool/git"
)

// fakeRepo is an in-memory Gateway for engine tests.
type fakeRepo struct {
	insideRepo bool
	head       string
	headErr    error

	tags            []git.TagRef
	tagAlwaysExists bool
	createdTags     []string
	createErr       error

	pushedTags  []string
	pushErr     error
	pushAllDone bool

	currentBranch string
	branchErr     error
	pulledBranch  string
	pullErr       error

	forceFetchCalled bool
	fetchTagsErr     error
	pruneCalled      bool
	pruneErr         error

	fetchPruneCalled bool
	fetchPruneErr    error

	branches       []git.Branch
	listErr        error
	safeDeleted    []string
	forceDeleted   []string
	safeDeleteErr  map[string]error
	forceDeleteErr map[string]error

	remoteBranches []git.RemoteBranch
	remoteListErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		insideRepo:    true,
		head:          "abc1234",
		currentBranch: "main",
	}
}

func (f *fakeRepo) IsInsideRepository() bool { return f.insideRepo }

func (f *fakeRepo) HeadCommit() (string, error) {
	if f.headErr != nil {
		return "", f.headErr
	}
	return f.head, nil
}

func (f *fakeRepo) LatestTagByCreationTime() (*git.TagRef, error) {
	var latest *git.TagRef
	for i := range f.tags {
		if latest == nil || f.tags[i].CreatedAt.After(latest.CreatedAt) {
			latest = &f.tags[i]
		}
	}
	return latest, nil
}

func (f *fakeRepo) TagExists(name string) (bool, error) {
	if f.tagAlwaysExists {
		return true, nil
	}
	for _, tag := range f.tags {
		if tag.Name == name {
			return true, nil
		}
	}
	for _, created := range f.createdTags {
		if created == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateTag(name, atCommit string) error {
	if f.createErr != nil {
		return f.createErr
	}
	if atCommit != f.head {
		return errors.New("tag target is not HEAD")
	}
	f.createdTags = append(f.createdTags, name)
	return nil
}

func (f *fakeRepo) PushTag(name string) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushedTags = append(f.pushedTags, name)
	return nil
}

func (f *fakeRepo) PushAllTags() error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushAllDone = true
	return nil
}

func (f *fakeRepo) CurrentBranchName() (string, error) {
	if f.branchErr != nil {
		return "", f.branchErr
	}
	return f.currentBranch, nil
}

func (f *fakeRepo) PullBranch(name string) error {
	if f.pullErr != nil {
		return f.pullErr
	}
	f.pulledBranch = name
	return nil
}

func (f *fakeRepo) ForceFetchTags() error {
	if f.fetchTagsErr != nil {
		return f.fetchTagsErr
	}
	f.forceFetchCalled = true
	return nil
}

func (f *fakeRepo) PruneLocalTagsNotOnRemote() error {
	if f.pruneErr != nil {
		return f.pruneErr
	}
	f.pruneCalled = true
	return nil
}

func (f *fakeRepo) FetchAndPruneRemoteBranches() error {
	if f.fetchPruneErr != nil {
		return f.fetchPruneErr
	}
	f.fetchPruneCalled = true
	return nil
}

func (f *fakeRepo) ListLocalBranches() ([]git.Branch, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.branches, nil
}

func (f *fakeRepo) DeleteBranchSafe(name string) error {
	if err := f.safeDeleteErr[name]; err != nil {
		return err
	}
	f.safeDeleted = append(f.safeDeleted, name)
	return nil
}

func (f *fakeRepo) DeleteBranchForced(name string) error {
	if err := f.forceDeleteErr[name]; err != nil {
		return err
	}
	f.forceDeleted = append(f.forceDeleted, name)
	return nil
}

func (f *fakeRepo) ListRemoteBranchesByCommitDate() ([]git.RemoteBranch, error) {
	if f.remoteListErr != nil {
		return nil, f.remoteListErr
	}
	return f.remoteBranches, nil
}
