package log

import "fmt"

// Error codes for all application errors
const (
	// Tag computation errors (1xx)
	ErrNotARepository    = "E101" // Working tree is not under version control
	ErrNoCommitsAtHead   = "E102" // HEAD has no resolvable commit
	ErrUnrecognizedTag   = "E103" // Latest tag matches neither recognized form
	ErrTagSpaceExhausted = "E104" // Collision-avoidance probe cap exceeded
	ErrTagCreationFailed = "E105" // Repository refused to create the tag

	// Remote operation errors (2xx)
	ErrRemotePushFailed  = "E201" // Failed to push tag(s) to remote
	ErrRemoteSyncFailed  = "E202" // Tag reconciliation fetch failed
	ErrRemoteFetchFailed = "E203" // Fetch/prune from remote failed

	// Branch hygiene errors (3xx)
	ErrBranchDeleteFailed = "E301" // Failed to delete a local branch

	// Configuration errors (4xx)
	ErrConfigReadFailed = "E401" // Error reading configuration file

	// General errors (9xx)
	ErrOperationFailed = "E999" // Generic operation failed
)

// FormatError formats an error with a consistent structure including the error code
func FormatError(code string, description string, err error) string {
	if err != nil {
		return fmt.Sprintf("[%s] %s: %v", code, description, err)
	}
	return fmt.Sprintf("[%s] %s", code, description)
}
