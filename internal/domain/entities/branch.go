package entities

// ProtectedBranches are the branch names that require explicit
// confirmation before the sync stage will operate on them, and the
// remote branches inspected for upstream drift.
var ProtectedBranches = []string{"main", "master", "dev", "develop"}

// IsProtectedBranch reports membership in the protected set.
func IsProtectedBranch(name string) bool {
	for _, b := range ProtectedBranches {
		if name == b {
			return true
		}
	}
	return false
}

// BranchState is the working snapshot of one VCS-sync run. It is built
// fresh at the start of the run, mutated only by the sync state machine's
// own transitions, and discarded afterwards.
type BranchState struct {
	CurrentBranch      string
	Protected          bool
	StagedPaths        []string
	HasStagedChanges   bool
	RemoteAheadCommits map[string][]string // branch name -> commit summaries
}
