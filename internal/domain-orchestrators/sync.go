package orchestrators

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"aegis/internal/domain/entities"
	"aegis/internal/domain/interfaces/gateways"
	"aegis/internal/output"
	"aegis/internal/ui"
)

// DriftReportName is the upstream-drift warning report, written under
// the gitter category only when drift exists.
const DriftReportName = "git-warning-report.md"

// SyncMachine walks the interactive VCS-sync states:
// BranchCheck → Stage → Commit → DriftCheck → Push.
//
// Any git-operation failure is fatal with no retry; an operator's "no"
// is entities.ErrUserDeclined, a graceful stop distinct from failure.
type SyncMachine struct {
	vcs      gateways.VersionControl
	prompter ui.Prompter
	reports  *output.Writer
	ticket   string
	log      *zap.Logger
}

// NewSyncMachine wires the sync flow. ticket prefixes the commit message
// and must be non-empty.
func NewSyncMachine(vcs gateways.VersionControl, prompter ui.Prompter, reports *output.Writer, ticket string, log *zap.Logger) *SyncMachine {
	return &SyncMachine{vcs: vcs, prompter: prompter, reports: reports, ticket: ticket, log: log}
}

// Run executes the sync states in order. BranchState is built fresh per
// run and discarded afterwards; the drift report is the only cross-run
// artifact.
func (m *SyncMachine) Run(ctx context.Context) error {
	if strings.TrimSpace(m.ticket) == "" {
		return fmt.Errorf("a ticket identifier is required before any repository changes")
	}

	state := &entities.BranchState{}
	if err := m.branchCheck(state); err != nil {
		return err
	}
	if err := m.stageChanges(state); err != nil {
		return err
	}
	if err := m.commit(state); err != nil {
		return err
	}
	if err := m.driftCheck(ctx, state); err != nil {
		return err
	}
	return m.push(ctx, state)
}

func (m *SyncMachine) branchCheck(state *entities.BranchState) error {
	branch, err := m.vcs.CurrentBranch()
	if err != nil {
		return err
	}
	state.CurrentBranch = branch
	state.Protected = entities.IsProtectedBranch(branch)
	if !state.Protected {
		return nil
	}

	ok, err := m.prompter.Confirm(fmt.Sprintf("You are on protected branch '%s'. Continue?", branch))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: sync on protected branch '%s'", entities.ErrUserDeclined, branch)
	}
	return nil
}

// parseStagingAnswer maps one prompt answer onto the staging actions:
// stage this file, stage everything remaining, or stop staging early.
// Anything unrecognized means "skip this file".
func parseStagingAnswer(answer string) (stage, all, quit bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y":
		return true, false, false
	case "a":
		return true, true, false
	case "q":
		return false, false, true
	default:
		return false, false, false
	}
}

func (m *SyncMachine) stageChanges(state *entities.BranchState) error {
	changes, err := m.vcs.WorkingTreeChanges()
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		m.log.Info("working tree clean, nothing to stage")
		return nil
	}

	acceptAll := false
	for _, path := range changes {
		if !acceptAll {
			answer, err := m.prompter.Line(fmt.Sprintf("Stage '%s'? (y/n/a/q)", path))
			if err != nil {
				return err
			}
			stage, all, quit := parseStagingAnswer(answer)
			if quit {
				// Early stop: files staged so far remain staged.
				m.log.Info("staging stopped early", zap.Int("staged", len(state.StagedPaths)))
				return nil
			}
			acceptAll = all
			if !stage {
				continue
			}
		}
		if err := m.vcs.StagePath(path); err != nil {
			return err
		}
		state.StagedPaths = append(state.StagedPaths, path)
	}
	return nil
}

func (m *SyncMachine) commit(state *entities.BranchState) error {
	staged, err := m.vcs.HasStagedChanges()
	if err != nil {
		return err
	}
	state.HasStagedChanges = staged
	if !staged {
		// Not an error: the operator may only be pushing earlier commits.
		m.log.Info("nothing staged, skipping commit")
		return nil
	}

	message, err := m.prompter.Line("Commit message")
	if err != nil {
		return err
	}
	full := m.ticket + ": " + message
	if err := m.vcs.Commit(full); err != nil {
		return err
	}
	m.log.Info("changes committed", zap.String("message", full))
	return nil
}

func (m *SyncMachine) driftCheck(ctx context.Context, state *entities.BranchState) error {
	if err := m.vcs.Fetch(ctx); err != nil {
		return err
	}
	remoteBranches, err := m.vcs.RemoteBranches()
	if err != nil {
		return err
	}
	onRemote := make(map[string]bool, len(remoteBranches))
	for _, b := range remoteBranches {
		onRemote[b] = true
	}

	state.RemoteAheadCommits = make(map[string][]string)
	for _, branch := range entities.ProtectedBranches {
		if !onRemote[branch] {
			continue
		}
		ahead, err := m.vcs.CommitsAhead(branch)
		if err != nil {
			return err
		}
		if len(ahead) > 0 {
			state.RemoteAheadCommits[branch] = ahead
		}
	}

	if len(state.RemoteAheadCommits) == 0 {
		// No drift, no report file.
		return nil
	}

	// Drift is a warning, not a gate: the report is written and the
	// push proceeds.
	path, err := m.reports.Write(output.CategoryGitter, DriftReportName,
		output.RenderDriftReport(state.RemoteAheadCommits))
	if err != nil {
		return err
	}
	m.log.Warn("upstream drift detected", zap.String("report", path))
	return nil
}

func (m *SyncMachine) push(ctx context.Context, state *entities.BranchState) error {
	if err := m.vcs.Push(ctx); err != nil {
		return err
	}
	m.log.Info("branch pushed", zap.String("branch", state.CurrentBranch))
	return nil
}
