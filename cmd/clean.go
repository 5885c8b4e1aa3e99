package cmd

import (
	"fmt"
	"os"

	"git_release_tool/log"
	"git_release_tool/release"

	"github.com/spf13/cobra"
)

// cleanBranchesCmd represents the clean-branches command
var cleanBranchesCmd = &cobra.Command{
	Use:   "clean-branches",
	Short: "Delete merged and gone-tracking local branches",
	Long: `Fetch from the remote with pruning, then delete stale local branches:

- branches fully merged into their merge base are safely deleted
- branches whose upstream was deleted on the remote are force-deleted,
  even if unmerged

The current branch, main and master are never deleted. Extra protected
branches can be listed in the configuration file. Each deletion is
independent; one failure does not stop the rest.`,
	Run: runCleanBranchesCmd,
}

// initCleanBranchesCmd initializes the clean-branches command with its flags
func initCleanBranchesCmd() {
	// No specific flags beyond the global ones
}

// runCleanBranchesCmd is the main function for the clean-branches command
func runCleanBranchesCmd(cmd *cobra.Command, args []string) {
	runner, configObj := setup()

	log.PrintOperation("Cleaning stale local branches")
	outcomes, err := release.CleanBranches(runner, configObj.ProtectedBranches)
	if err != nil {
		log.PrintError(log.ErrRemoteFetchFailed, "Branch cleanup aborted", err)
	}

	if len(outcomes) == 0 {
		log.PrintSuccess("No stale branches to delete")
		return
	}

	failCount := 0
	for _, outcome := range outcomes {
		action := "deleted"
		if outcome.Forced {
			action = "force-deleted"
		}
		if outcome.Err != nil {
			failCount++
			log.PrintErrorNoExit(log.ErrBranchDeleteFailed,
				fmt.Sprintf("%-30s not deleted", outcome.Branch), outcome.Err)
		} else {
			log.PrintSuccess(fmt.Sprintf("%-30s %s", outcome.Branch, action))
		}
	}

	log.PrintInfo("")
	if failCount == 0 {
		log.PrintSuccess(fmt.Sprintf("All %d stale branches deleted", len(outcomes)))
	} else {
		log.PrintWarning(fmt.Sprintf("%d deleted, %d failed", len(outcomes)-failCount, failCount))
		os.Exit(1)
	}
}
