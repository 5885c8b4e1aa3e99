package cmd

import (
	"errors"
	"fmt"

	"git_release_tool/log"
	"git_release_tool/release"

	"github.com/spf13/cobra"
)

// createTagCmd represents the create-tag command
var createTagCmd = &cobra.Command{
	Use:   "create-tag",
	Short: "Create the next dev-release tag at HEAD",
	Long: `Compute the next dev-release tag from the most recently created tag
and create it at the current HEAD commit.

The tag is always in dev-release form (X.Y.Z-dev-release). If the latest
tag is a release tag X.Y.Z, the new tag opens a dev-release line at
X.Y.(Z+1)-dev-release. Name collisions with existing tags are skipped by
incrementing the patch number.`,
	Run: runCreateTagCmd,
}

// createAndPushTagCmd represents the create-and-push-tag command
var createAndPushTagCmd = &cobra.Command{
	Use:   "create-and-push-tag",
	Short: "Create the next dev-release tag and push it to the remote",
	Run:   runCreateAndPushTagCmd,
}

// pushAllTagsCmd represents the push-all-tags command
var pushAllTagsCmd = &cobra.Command{
	Use:   "push-all-tags",
	Short: "Push every local tag to the remote",
	Run:   runPushAllTagsCmd,
}

// initCreateTagCmd initializes the create-tag command with its flags
func initCreateTagCmd() {
	// No specific flags beyond the global ones
}

// initCreateAndPushTagCmd initializes the create-and-push-tag command with its flags
func initCreateAndPushTagCmd() {
	// No specific flags beyond the global ones
}

// initPushAllTagsCmd initializes the push-all-tags command with its flags
func initPushAllTagsCmd() {
	// No specific flags beyond the global ones
}

// tagErrorCode maps a tag-computation error to its error code
func tagErrorCode(err error) string {
	var formatErr *release.UnrecognizedTagFormatError
	switch {
	case errors.Is(err, release.ErrNotARepository):
		return log.ErrNotARepository
	case errors.Is(err, release.ErrNoCommitsAtHead):
		return log.ErrNoCommitsAtHead
	case errors.As(err, &formatErr):
		return log.ErrUnrecognizedTag
	case errors.Is(err, release.ErrTagSpaceExhausted):
		return log.ErrTagSpaceExhausted
	case errors.Is(err, release.ErrTagCreationFailed):
		return log.ErrTagCreationFailed
	default:
		return log.ErrOperationFailed
	}
}

// runCreateTagCmd is the main function for the create-tag command
func runCreateTagCmd(cmd *cobra.Command, args []string) {
	runner, _ := setup()

	log.PrintOperation("Computing next dev-release tag")
	v, err := release.NextTag(runner)
	if err != nil {
		log.PrintError(tagErrorCode(err), "Failed to create tag", err)
	}

	log.PrintSuccess(fmt.Sprintf("Created tag %s at HEAD", v))
}

// runCreateAndPushTagCmd is the main function for the create-and-push-tag command
func runCreateAndPushTagCmd(cmd *cobra.Command, args []string) {
	runner, _ := setup()

	log.PrintOperation("Computing next dev-release tag")
	v, err := release.NextTag(runner)
	if err != nil {
		log.PrintError(tagErrorCode(err), "Failed to create tag", err)
	}
	log.PrintSuccess(fmt.Sprintf("Created tag %s at HEAD", v))

	log.PrintOperation(fmt.Sprintf("Pushing tag %s", v))
	if err := runner.PushTag(v.String()); err != nil {
		// The created tag stays; it can be pushed manually.
		log.PrintError(log.ErrRemotePushFailed,
			fmt.Sprintf("Tag %s was created but could not be pushed", v), err)
	}
	log.PrintSuccess(fmt.Sprintf("Pushed tag %s", v))
}

// runPushAllTagsCmd is the main function for the push-all-tags command
func runPushAllTagsCmd(cmd *cobra.Command, args []string) {
	runner, _ := setup()

	log.PrintOperation("Pushing all tags to remote")
	if err := runner.PushAllTags(); err != nil {
		log.PrintError(log.ErrRemotePushFailed, "Failed to push tags", err)
	}

	log.PrintSuccess("All tags pushed")
}
