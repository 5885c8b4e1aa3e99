package version

import (
	"fmt"
	"regexp"
	"strconv"
)

// DevSuffix is the pre-release suffix this tool produces. It is the only
// suffix the grammar recognizes.
const DevSuffix = "dev-release"

// Version is an immutable version value. Dev reports whether the
// "-dev-release" suffix is present.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Dev   bool
}

var (
	releaseRe    = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)
	devReleaseRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)-` + DevSuffix + `$`)
)

// Parse parses a raw tag name into a Version. Exactly two forms are
// recognized: "X.Y.Z" and "X.Y.Z-dev-release". Any other string returns
// ok=false; an unparseable tag is a normal outcome, not an error, and
// callers must branch on it explicitly.
func Parse(raw string) (Version, bool) {
	dev := false
	m := releaseRe.FindStringSubmatch(raw)
	if m == nil {
		m = devReleaseRe.FindStringSubmatch(raw)
		if m == nil {
			return Version{}, false
		}
		dev = true
	}

	major, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Version{}, false
	}
	patch, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil {
		return Version{}, false
	}

	return Version{Major: major, Minor: minor, Patch: patch, Dev: dev}, true
}

// String renders the canonical textual form. It is the exact inverse of
// Parse for both recognized forms.
func (v Version) String() string {
	if v.Dev {
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, DevSuffix)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// BumpPatch returns a copy with the patch number incremented, preserving
// the form.
func (v Version) BumpPatch() Version {
	v.Patch++
	return v
}

// NextDev returns the next dev-release version: the patch number is
// incremented and the dev-release suffix is applied regardless of the
// receiver's form. A release tag always begins a new dev-release line.
func (v Version) NextDev() Version {
	v.Patch++
	v.Dev = true
	return v
}
