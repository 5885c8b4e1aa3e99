package cmd

import (
	"fmt"

	"git_release_tool/log"
	"git_release_tool/release"

	"github.com/spf13/cobra"
)

// listBranchesCmd represents the list-branches command
var listBranchesCmd = &cobra.Command{
	Use:   "list-branches",
	Short: "List remote branches by commit date, most recent first",
	Run:   runListBranchesCmd,
}

// initListBranchesCmd initializes the list-branches command with its flags
func initListBranchesCmd() {
	// No specific flags beyond the global ones
}

// runListBranchesCmd is the main function for the list-branches command
func runListBranchesCmd(cmd *cobra.Command, args []string) {
	runner, _ := setup()

	branches, err := release.ListBranches(runner)
	if err != nil {
		log.PrintError(log.ErrRemoteFetchFailed, "Failed to list remote branches", err)
	}

	if len(branches) == 0 {
		log.PrintInfo("No remote branches found.")
		return
	}

	log.PrintInfo("Remote branches by commit date:")
	log.PrintInfo("-------------------------------")
	for _, branch := range branches {
		log.PrintInfo(fmt.Sprintf("%-40s %-25s %s",
			branch.Name,
			branch.Author,
			branch.Date.Format("2006-01-02 15:04")))
	}
}
