package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagRefLine(t *testing.T) {
	ref, err := parseTagRefLine("1.2.3-dev-release\t2024-06-01T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-dev-release", ref.Name)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 30, 0, 0, time.FixedZone("", 2*3600)).Unix(), ref.CreatedAt.Unix())
}

func TestParseTagRefLineMalformed(t *testing.T) {
	_, err := parseTagRefLine("just-a-name")
	assert.Error(t, err)

	_, err = parseTagRefLine("name\tnot-a-date")
	assert.Error(t, err)
}

func TestParseLocalBranchLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Branch
	}{
		{
			name: "current branch with live upstream",
			line: "*\tmain\trefs/remotes/origin/main\t",
			want: Branch{Name: "main", IsCurrent: true, Tracking: TrackingTracked},
		},
		{
			name: "tracked branch ahead of upstream",
			line: " \tfeature/api\trefs/remotes/origin/feature/api\t[ahead 2]",
			want: Branch{Name: "feature/api", Tracking: TrackingTracked},
		},
		{
			name: "upstream deleted on remote",
			line: " \tfeature/old\trefs/remotes/origin/feature/old\t[gone]",
			want: Branch{Name: "feature/old", Tracking: TrackingGone},
		},
		{
			name: "no upstream configured",
			line: " \tlocal-only\t\t",
			want: Branch{Name: "local-only", Tracking: TrackingNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLocalBranchLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLocalBranchLineMalformed(t *testing.T) {
	_, err := parseLocalBranchLine("main")
	assert.Error(t, err)
}

func TestParseRemoteBranchLine(t *testing.T) {
	branch, ok, err := parseRemoteBranchLine("origin/feature/x\tAlice Smith\t2024-05-20T08:00:00Z", "origin")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "feature/x", branch.Name)
	assert.Equal(t, "Alice Smith", branch.Author)
	assert.Equal(t, time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC), branch.Date.UTC())
}

func TestParseRemoteBranchLineSkipsHeadPointer(t *testing.T) {
	_, ok, err := parseRemoteBranchLine("origin/HEAD\t\t2024-05-20T08:00:00Z", "origin")
	require.NoError(t, err)
	assert.False(t, ok)
}
