package git

import (
	"fmt"
	"strings"
	"time"
)

// parseTagRefLine parses one tab-separated for-each-ref line of the form
// "<name>\t<iso-strict date>".
func parseTagRefLine(line string) (*TagRef, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 2 {
		return nil, fmt.Errorf("unexpected tag ref line: %q", line)
	}
	createdAt, err := time.Parse(time.RFC3339, fields[1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse tag creation date %q: %v", fields[1], err)
	}
	return &TagRef{Name: fields[0], CreatedAt: createdAt}, nil
}

// parseLocalBranchLine parses one tab-separated for-each-ref line of the
// form "<head marker>\t<name>\t<upstream ref>\t<upstream track>". The
// head marker is "*" for the checked-out branch. The track field is
// "[gone]" when the upstream no longer exists on the remote. IsMerged is
// not part of the line and is left unset.
func parseLocalBranchLine(line string) (Branch, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 4 {
		return Branch{}, fmt.Errorf("unexpected branch line: %q", line)
	}

	branch := Branch{
		Name:      fields[1],
		IsCurrent: fields[0] == "*",
	}

	switch {
	case fields[2] == "":
		branch.Tracking = TrackingNone
	case strings.TrimSpace(fields[3]) == "[gone]":
		branch.Tracking = TrackingGone
	default:
		branch.Tracking = TrackingTracked
	}
	return branch, nil
}

// parseRemoteBranchLine parses one tab-separated for-each-ref line of the
// form "<remote>/<name>\t<author>\t<iso-strict date>". The remote's HEAD
// pointer ref is skipped (ok=false).
func parseRemoteBranchLine(line string, remote string) (RemoteBranch, bool, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return RemoteBranch{}, false, fmt.Errorf("unexpected remote branch line: %q", line)
	}
	if fields[0] == remote+"/HEAD" {
		return RemoteBranch{}, false, nil
	}
	date, err := time.Parse(time.RFC3339, fields[2])
	if err != nil {
		return RemoteBranch{}, false, fmt.Errorf("failed to parse commit date %q: %v", fields[2], err)
	}
	return RemoteBranch{
		Name:   strings.TrimPrefix(fields[0], remote+"/"),
		Author: fields[1],
		Date:   date,
	}, true, nil
}
