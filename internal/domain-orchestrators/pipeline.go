// Package orchestrators sequences the pre-push workflow: the fail-fast
// pipeline across build, scan, audit, remediation and sync, and the
// interactive VCS-sync state machine.
package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"aegis/internal/config"
	"aegis/internal/domain/entities"
	"aegis/internal/domain/interfaces/gateways"
	"aegis/internal/domain/services"
	"aegis/internal/output"
)

// State names the pipeline's stages and terminal outcomes.
type State string

// Pipeline states in execution order, plus the two terminal states.
const (
	StateBuild           State = "Build"
	StateSecurityScan    State = "SecurityScan"
	StateDependencyAudit State = "DependencyAudit"
	StateRemediation     State = "Remediation"
	StateVcsSync         State = "VcsSync"
	StateDone            State = "Done"
	StateAborted         State = "Aborted"
)

// Markdown report names, one per stage.
const (
	ScanReportName        = "snyk-report.md"
	AnalysisReportName    = "sonar-report.md"
	DepsReportName        = "dependency-tree.md"
	RemediationReportName = "remediation-report.md"
)

// Result is the outcome of one pipeline run. Tests and the CLI read the
// exact halting state and which stages completed; there is no rollback,
// so side effects of completed stages stand even when a later stage
// aborts the run.
type Result struct {
	// State is StateDone or StateAborted.
	State State

	// Completed lists the stages that finished successfully, in order.
	Completed []State

	// FailedState and Err are set when State is StateAborted.
	FailedState State
	Err         error

	// Declined distinguishes an operator's "no" from a failure.
	Declined bool
}

type stageDef struct {
	state  State
	run    func(ctx context.Context) error
	gating bool
}

// Pipeline chains the pre-push stages with fail-fast semantics. Stages
// are strictly sequential: each consumes artifacts of the previous one.
type Pipeline struct {
	cfg      config.Config
	builder  gateways.BuildTool
	scanner  gateways.VulnerabilityScanner
	analysis gateways.AnalysisServer
	deps     gateways.DependencySource
	advisor  gateways.RemediationAdvisor
	sync     *SyncMachine
	reports  *output.Writer
	log      *zap.Logger

	// lastScan carries the scan findings from the scan stage to the
	// remediation stage within one run.
	lastScan *entities.ScanReport
}

// NewPipeline wires the pipeline from its collaborators. advisor may be
// nil; the remediation report then lists findings without advice.
func NewPipeline(
	cfg config.Config,
	builder gateways.BuildTool,
	scanner gateways.VulnerabilityScanner,
	analysis gateways.AnalysisServer,
	deps gateways.DependencySource,
	advisor gateways.RemediationAdvisor,
	sync *SyncMachine,
	reports *output.Writer,
	log *zap.Logger,
) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		builder:  builder,
		scanner:  scanner,
		analysis: analysis,
		deps:     deps,
		advisor:  advisor,
		sync:     sync,
		reports:  reports,
		log:      log,
	}
}

// Run executes every stage in order and stops at the first failure of a
// gating stage. Remediation is best-effort and never aborts the run.
func (p *Pipeline) Run(ctx context.Context) Result {
	stages := []stageDef{
		{StateBuild, p.Build, true},
		{StateSecurityScan, p.SecurityScan, true},
		{StateDependencyAudit, p.DependencyAudit, true},
		{StateRemediation, p.Remediation, false},
		{StateVcsSync, p.VcsSync, true},
	}

	var result Result
	for _, stage := range stages {
		p.log.Info("stage starting", zap.String("stage", string(stage.state)))
		err := stage.run(ctx)
		if err != nil {
			if !stage.gating {
				p.log.Warn("non-gating stage failed, continuing",
					zap.String("stage", string(stage.state)), zap.Error(err))
				continue
			}
			p.log.Error("stage failed, aborting",
				zap.String("stage", string(stage.state)), zap.Error(err))
			result.State = StateAborted
			result.FailedState = stage.state
			result.Err = err
			result.Declined = errors.Is(err, entities.ErrUserDeclined)
			return result
		}
		result.Completed = append(result.Completed, stage.state)
		p.log.Info("stage completed", zap.String("stage", string(stage.state)))
	}
	result.State = StateDone
	return result
}

// Build runs the project build. The build log lands on disk whether the
// build passed or not.
func (p *Pipeline) Build(ctx context.Context) error {
	_, err := p.builder.Build(ctx)
	return err
}

// SecurityScan runs the vulnerability scan and its gate, then the
// static analysis and its gate. The two gates never consult each other;
// the scan gate halts before the analysis even starts.
func (p *Pipeline) SecurityScan(ctx context.Context) error {
	if err := p.Scan(ctx); err != nil {
		return err
	}
	return p.Analyze(ctx)
}

// Scan runs the vulnerability scanner, renders its report and evaluates
// the security gate.
func (p *Pipeline) Scan(ctx context.Context) error {
	report, err := p.scanner.Scan(ctx)
	if err != nil {
		return err
	}
	p.lastScan = report

	path, err := p.reports.Write(output.CategoryAnalyser, ScanReportName, output.RenderScanReport(report))
	if err != nil {
		return err
	}
	p.log.Info("scan report written", zap.String("path", path))

	verdict := services.EvaluateSecurityGate(report)
	if !verdict.Passed() {
		return fmt.Errorf("%w: security gate: %s (report: %s)",
			entities.ErrGateFailed, strings.Join(verdict.Reasons(), " "), path)
	}
	return nil
}

// Analyze collects quality metrics from the analysis server, renders the
// analysis report and evaluates the analysis gate.
func (p *Pipeline) Analyze(ctx context.Context) error {
	metrics, err := p.analysis.CollectMetrics(ctx)
	if err != nil {
		return err
	}

	verdict := services.EvaluateAnalysisGate(*metrics, p.cfg.Gates.CoverageThreshold)
	path, err := p.reports.Write(output.CategoryAnalyser, AnalysisReportName,
		output.RenderAnalysisReport(*metrics, verdict, p.cfg.Gates.CoverageThreshold))
	if err != nil {
		return err
	}
	p.log.Info("analysis report written", zap.String("path", path))

	if !verdict.Passed() {
		return fmt.Errorf("%w: analysis gate: %s (report: %s)",
			entities.ErrGateFailed, strings.Join(verdict.Reasons(), " "), path)
	}
	return nil
}

// DependencyAudit lists the project's dependency tree and writes the
// audit report. An unparsable listing is recorded as such, not fatal;
// only a failing tool invocation aborts.
func (p *Pipeline) DependencyAudit(ctx context.Context) error {
	tree, err := p.deps.ProjectTree(ctx)
	if err != nil {
		return err
	}

	path, err := p.reports.Write(output.CategoryDeps, DepsReportName, output.RenderDependencyReport(tree))
	if err != nil {
		return err
	}
	p.log.Info("dependency report written", zap.String("path", path))
	return nil
}

// Remediation filters the scan findings to fixable ones, collects
// upgrade advice and writes the remediation report. Best-effort end to
// end: any failure here degrades the report, never the pipeline.
func (p *Pipeline) Remediation(ctx context.Context) error {
	if p.lastScan == nil {
		p.log.Warn("no scan findings available, skipping remediation")
		return nil
	}

	plan := services.PlanRemediation(ctx, p.lastScan, p.advisor)
	path, err := p.reports.Write(output.CategoryRemediation, RemediationReportName,
		output.RenderRemediationReport(plan))
	if err != nil {
		return err
	}
	p.log.Info("remediation report written",
		zap.String("path", path),
		zap.Int("advised", len(plan.Advice)),
		zap.Int("warnings", len(plan.Warnings)))
	return nil
}

// VcsSync runs the interactive staging/commit/drift-check/push sequence.
func (p *Pipeline) VcsSync(ctx context.Context) error {
	return p.sync.Run(ctx)
}
