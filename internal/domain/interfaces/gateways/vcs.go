package gateways

import "context"

// VersionControl is the narrow repository contract the sync state machine
// needs. Any failure from an implementation is fatal to the run: an
// inconsistent local/remote state must not be papered over.
type VersionControl interface {
	// CurrentBranch returns the checked-out branch name.
	CurrentBranch() (string, error)

	// WorkingTreeChanges lists modified and untracked paths, with renamed
	// entries normalized to their new path.
	WorkingTreeChanges() ([]string, error)

	// StagePath adds one path to the index.
	StagePath(path string) error

	// HasStagedChanges reports whether the index differs from HEAD.
	HasStagedChanges() (bool, error)

	// Commit records the staged changes with the given message.
	Commit(message string) error

	// Fetch updates remote-tracking state.
	Fetch(ctx context.Context) error

	// RemoteBranches lists branch names present on the remote.
	RemoteBranches() ([]string, error)

	// CommitsAhead returns one-line summaries of commits reachable from
	// the remote branch but not from local HEAD.
	CommitsAhead(branch string) ([]string, error)

	// Push publishes the current branch, creating the upstream tracking
	// relationship when absent.
	Push(ctx context.Context) error
}
