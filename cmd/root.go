package cmd

import (
	"errors"
	"fmt"
	"os"

	"git_release_tool/config"
	"git_release_tool/git"
	"git_release_tool/log"

	"github.com/spf13/cobra"
)

// Global flags used across multiple commands
var (
	configFile string
	repoPath   string
)

// rootCmd represents the base command when called without any subcommands.
// A bare invocation is an absent selector: usage is printed and the exit
// code is 1, the same as for an unknown selector.
var rootCmd = &cobra.Command{
	Use:   "git_release_tool",
	Short: "Manage dev-release tags and branch hygiene for a Git repository",
	Long: `A CLI tool that computes and creates dev-release version tags,
synchronizes tags with the remote, and removes stale local branches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errors.New("a command is required")
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Initialize adds all child commands to the root command
func Initialize() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "git_release_tool.yml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo", "r", ".", "Path to the Git working copy")

	// Add all subcommands
	initCreateTagCmd()
	initCreateAndPushTagCmd()
	initPushAllTagsCmd()
	initSyncCmd()
	initCleanBranchesCmd()
	initListBranchesCmd()

	// Add commands to root command
	rootCmd.AddCommand(createTagCmd)
	rootCmd.AddCommand(createAndPushTagCmd)
	rootCmd.AddCommand(pushAllTagsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(cleanBranchesCmd)
	rootCmd.AddCommand(listBranchesCmd)
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup reads the configuration and builds the repository runner for the
// selected working copy. Exits on configuration errors.
func setup() (*git.Runner, *config.Configuration) {
	configObj, err := config.ReadConfig(configFile)
	if err != nil {
		log.PrintError(log.ErrConfigReadFailed, "Error reading config", err)
	}

	runner, err := git.NewRunner(repoPath, configObj.Remote)
	if err != nil {
		log.PrintError(log.ErrOperationFailed, "Error resolving repository path", err)
	}

	return runner, configObj
}
