package release

import (
	"fmt"

	"git_release_tool/git"
	"git_release_tool/version"
)

// maxCollisionProbes caps the collision-avoidance loop. Each probe
// strictly increases the patch number, so hitting the cap means the ref
// data is pathological.
const maxCollisionProbes = 1000

// NextTag computes the next dev-release tag from existing history and
// creates it at HEAD. The result is derived deterministically from the
// most-recently-created tag, guaranteed not to collide with an existing
// ref, and always in dev-release form.
//
// On success exactly one new tag ref exists; on any error no ref was
// created.
func NextTag(repo git.Gateway) (version.Version, error) {
	if !repo.IsInsideRepository() {
		return version.Version{}, ErrNotARepository
	}

	head, err := repo.HeadCommit()
	if err != nil {
		return version.Version{}, fmt.Errorf("%w: %v", ErrNoCommitsAtHead, err)
	}

	latest, err := repo.LatestTagByCreationTime()
	if err != nil {
		return version.Version{}, fmt.Errorf("failed to read latest tag: %v", err)
	}

	var candidate version.Version
	if latest == nil {
		// Sole hardcoded seed: an untagged repository starts at
		// 0.0.1-dev-release.
		candidate = version.Version{Patch: 1, Dev: true}
	} else {
		base, ok := version.Parse(latest.Name)
		if !ok {
			return version.Version{}, &UnrecognizedTagFormatError{Tag: latest.Name}
		}
		candidate = base.NextDev()
	}

	for probes := 0; ; probes++ {
		if probes >= maxCollisionProbes {
			return version.Version{}, fmt.Errorf("%w after %d probes from %s",
				ErrTagSpaceExhausted, probes, candidate)
		}
		exists, err := repo.TagExists(candidate.String())
		if err != nil {
			return version.Version{}, fmt.Errorf("failed to check tag %s: %v", candidate, err)
		}
		if !exists {
			break
		}
		candidate = candidate.BumpPatch()
	}

	if err := repo.CreateTag(candidate.String(), head); err != nil {
		return version.Version{}, fmt.Errorf("%w: %v", ErrTagCreationFailed, err)
	}
	return candidate, nil
}
