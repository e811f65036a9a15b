package gateways

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitGateway implements gateways.VersionControl over an on-disk
// repository. Every operation failure is surfaced as-is; the sync flow
// treats them all as fatal.
type GitGateway struct {
	repo   *git.Repository
	remote string
}

// OpenGitGateway opens the repository containing dir, walking up to the
// enclosing .git the way the git CLI does.
func OpenGitGateway(dir, remote string) (*GitGateway, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	return &GitGateway{repo: repo, remote: remote}, nil
}

// NewGitGateway wraps an already-open repository. Used by tests.
func NewGitGateway(repo *git.Repository, remote string) *GitGateway {
	return &GitGateway{repo: repo, remote: remote}
}

// CurrentBranch implements gateways.VersionControl. A detached HEAD is
// an error: the sync flow needs a branch to commit and push to.
func (g *GitGateway) CurrentBranch() (string, error) {
	head, err := g.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is detached at %s", head.Hash().String()[:7])
	}
	return head.Name().Short(), nil
}

// WorkingTreeChanges implements gateways.VersionControl. Paths come back
// sorted so the staging prompt order is stable, and renamed entries are
// normalized to their new path.
func (g *GitGateway) WorkingTreeChanges() ([]string, error) {
	wt, err := g.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("computing worktree status: %w", err)
	}
	return changedPaths(status), nil
}

// changedPaths lists the modified, untracked and renamed entries of a
// status. Renamed entries are keyed by their new path with the old path
// in Extra, so the new path is emitted once and the old name never
// reaches the staging prompt.
func changedPaths(status git.Status) []string {
	var paths []string
	for path, st := range status {
		renamed := st.Staging == git.Renamed || st.Worktree == git.Renamed
		if st.Worktree == git.Unmodified && !renamed {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// StagePath implements gateways.VersionControl.
func (g *GitGateway) StagePath(path string) error {
	wt, err := g.repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}
	if _, err := wt.Add(path); err != nil {
		return fmt.Errorf("staging %s: %w", path, err)
	}
	return nil
}

// HasStagedChanges implements gateways.VersionControl.
func (g *GitGateway) HasStagedChanges() (bool, error) {
	wt, err := g.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("computing worktree status: %w", err)
	}
	for _, st := range status {
		if st.Staging != git.Unmodified && st.Staging != git.Untracked {
			return true, nil
		}
	}
	return false, nil
}

// Commit implements gateways.VersionControl. Author identity comes from
// the repository's own configuration.
func (g *GitGateway) Commit(message string) error {
	wt, err := g.repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}
	if _, err := wt.Commit(message, &git.CommitOptions{}); err != nil {
		return fmt.Errorf("committing staged changes: %w", err)
	}
	return nil
}

// Fetch implements gateways.VersionControl. An already-up-to-date remote
// is not an error.
func (g *GitGateway) Fetch(ctx context.Context) error {
	err := g.repo.FetchContext(ctx, &git.FetchOptions{RemoteName: g.remote})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("fetching from %s: %w", g.remote, err)
	}
	return nil
}

// RemoteBranches implements gateways.VersionControl, listing the branch
// names under the configured remote's tracking refs.
func (g *GitGateway) RemoteBranches() ([]string, error) {
	refs, err := g.repo.References()
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}
	defer refs.Close()

	prefix := fmt.Sprintf("refs/remotes/%s/", g.remote)
	var branches []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name().String()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		branch := strings.TrimPrefix(name, prefix)
		if branch == "HEAD" {
			return nil
		}
		branches = append(branches, branch)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking references: %w", err)
	}
	sort.Strings(branches)
	return branches, nil
}

// CommitsAhead implements gateways.VersionControl: one-line summaries of
// commits on the remote branch that local HEAD has not seen, newest
// first.
func (g *GitGateway) CommitsAhead(branch string) ([]string, error) {
	head, err := g.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}
	headCommit, err := g.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("loading HEAD commit: %w", err)
	}

	remoteRef, err := g.repo.Reference(plumbing.NewRemoteReferenceName(g.remote, branch), true)
	if err != nil {
		return nil, fmt.Errorf("resolving %s/%s: %w", g.remote, branch, err)
	}
	if remoteRef.Hash() == head.Hash() {
		return nil, nil
	}
	remoteCommit, err := g.repo.CommitObject(remoteRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("loading %s/%s commit: %w", g.remote, branch, err)
	}

	bases, err := headCommit.MergeBase(remoteCommit)
	if err != nil {
		return nil, fmt.Errorf("computing merge base with %s/%s: %w", g.remote, branch, err)
	}
	ignore := make([]plumbing.Hash, 0, len(bases))
	for _, base := range bases {
		ignore = append(ignore, base.Hash)
	}

	var summaries []string
	iter := object.NewCommitPreorderIter(remoteCommit, nil, ignore)
	err = iter.ForEach(func(c *object.Commit) error {
		summaries = append(summaries, commitSummary(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s/%s history: %w", g.remote, branch, err)
	}
	return summaries, nil
}

// Push implements gateways.VersionControl, creating the upstream
// tracking configuration for the branch when it has none.
func (g *GitGateway) Push(ctx context.Context) error {
	branch, err := g.CurrentBranch()
	if err != nil {
		return err
	}

	cfg, err := g.repo.Config()
	if err != nil {
		return fmt.Errorf("reading repository config: %w", err)
	}
	if _, tracked := cfg.Branches[branch]; !tracked {
		err := g.repo.CreateBranch(&gitconfig.Branch{
			Name:   branch,
			Remote: g.remote,
			Merge:  plumbing.NewBranchReferenceName(branch),
		})
		if err != nil && !errors.Is(err, git.ErrBranchExists) {
			return fmt.Errorf("creating upstream for %s: %w", branch, err)
		}
	}

	spec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	err = g.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: g.remote,
		RefSpecs:   []gitconfig.RefSpec{spec},
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pushing %s to %s: %w", branch, g.remote, err)
	}
	return nil
}

func commitSummary(c *object.Commit) string {
	subject := c.Message
	if idx := strings.IndexByte(subject, '\n'); idx >= 0 {
		subject = subject[:idx]
	}
	return c.Hash.String()[:7] + " " + strings.TrimSpace(subject)
}
