package cmd

import (
	"git_release_tool/log"
	"git_release_tool/release"

	"github.com/spf13/cobra"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull the current branch and force-synchronize tags with the remote",
	Long: `Pull updates for the current branch, then force-fetch all tags from the
remote and prune local tags that no longer exist remotely.

Remote tags are treated as the source of truth: a local tag whose name
collides with a remote tag is overwritten. A failed branch pull is a
warning only; tag synchronization is independent and still runs.`,
	Run: runSyncCmd,
}

// initSyncCmd initializes the sync command with its flags
func initSyncCmd() {
	// No specific flags beyond the global ones
}

// runSyncCmd is the main function for the sync command
func runSyncCmd(cmd *cobra.Command, args []string) {
	runner, _ := setup()

	log.PrintOperation("Synchronizing with remote")
	result := release.Sync(runner)

	for _, warning := range result.Warnings {
		log.PrintWarning(warning)
	}

	switch result.Outcome {
	case release.SyncFailure:
		log.PrintError(log.ErrRemoteSyncFailed, "Tag synchronization failed", result.Err)
	case release.SyncPartialSuccess:
		log.PrintSuccess("Tags synchronized (with warnings)")
	default:
		log.PrintSuccess("Branch and tags synchronized")
	}
}
