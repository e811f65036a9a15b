package orchestrators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aegis/internal/config"
	"aegis/internal/domain/entities"
	"aegis/internal/output"
)

type fakeBuilder struct {
	err    error
	called bool
}

func (f *fakeBuilder) Build(_ context.Context) (*entities.ToolInvocationResult, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return &entities.ToolInvocationResult{Succeeded: true}, nil
}

type fakeScanner struct {
	report *entities.ScanReport
	err    error
	called bool
}

func (f *fakeScanner) Scan(_ context.Context) (*entities.ScanReport, error) {
	f.called = true
	return f.report, f.err
}

type fakeAnalysis struct {
	metrics *entities.QualityMetrics
	err     error
	called  bool
}

func (f *fakeAnalysis) CollectMetrics(_ context.Context) (*entities.QualityMetrics, error) {
	f.called = true
	return f.metrics, f.err
}

type fakeDeps struct {
	called bool
}

func (f *fakeDeps) ProjectTree(_ context.Context) (entities.DependencyTree, error) {
	f.called = true
	return entities.DependencyTree{Listing: "demo:demo:jar:1.0", Parsed: true}, nil
}

func (f *fakeDeps) ArtifactTree(_ context.Context, _, _ string) (entities.DependencyTree, error) {
	return entities.DependencyTree{}, nil
}

type failingAdvisor struct{}

func (failingAdvisor) SuggestFix(_ context.Context, _ entities.Vulnerability) (string, error) {
	return "", errors.New("model unavailable")
}

type pipelineFixture struct {
	builder  *fakeBuilder
	scanner  *fakeScanner
	analysis *fakeAnalysis
	deps     *fakeDeps
	vcs      *fakeVCS
	pipeline *Pipeline
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	f := &pipelineFixture{
		builder: &fakeBuilder{},
		scanner: &fakeScanner{report: &entities.ScanReport{}},
		analysis: &fakeAnalysis{metrics: &entities.QualityMetrics{
			InstructionCoveragePercent: 92.5,
		}},
		deps: &fakeDeps{},
		vcs:  &fakeVCS{branch: "feature/x"},
	}
	reports := output.NewWriter(t.TempDir())
	sync := NewSyncMachine(f.vcs, &scriptedPrompter{}, reports, "PROJ-1", zap.NewNop())
	cfg := config.Config{Gates: config.GatesConfig{CoverageThreshold: 80.0}}
	f.pipeline = NewPipeline(cfg, f.builder, f.scanner, f.analysis, f.deps, failingAdvisor{}, sync, reports, zap.NewNop())
	return f
}

func TestPipeline_AllStagesSucceed(t *testing.T) {
	f := newPipelineFixture(t)

	result := f.pipeline.Run(context.Background())
	assert.Equal(t, StateDone, result.State)
	assert.Equal(t, []State{
		StateBuild, StateSecurityScan, StateDependencyAudit, StateRemediation, StateVcsSync,
	}, result.Completed)
	assert.NoError(t, result.Err)
	assert.True(t, f.vcs.pushed)
}

func TestPipeline_BuildFailureAbortsBeforeScan(t *testing.T) {
	f := newPipelineFixture(t)
	f.builder.err = entities.ErrToolExecution

	result := f.pipeline.Run(context.Background())
	assert.Equal(t, StateAborted, result.State)
	assert.Equal(t, StateBuild, result.FailedState)
	assert.ErrorIs(t, result.Err, entities.ErrToolExecution)
	assert.Empty(t, result.Completed)
	assert.False(t, f.scanner.called, "fail-fast: no stage after the failed one may run")
	assert.False(t, f.vcs.pushed)
}

func TestPipeline_SecurityGateFailureAborts(t *testing.T) {
	f := newPipelineFixture(t)
	f.scanner.report = &entities.ScanReport{Vulnerabilities: []entities.Vulnerability{
		{PackageName: "log4j-core", Severity: entities.SeverityCritical},
	}}

	result := f.pipeline.Run(context.Background())
	assert.Equal(t, StateAborted, result.State)
	assert.Equal(t, StateSecurityScan, result.FailedState)
	assert.ErrorIs(t, result.Err, entities.ErrGateFailed)
	assert.Contains(t, result.Err.Error(), "log4j-core")
	assert.False(t, f.analysis.called, "the scan gate halts before the analysis starts")
	assert.False(t, f.deps.called)
}

func TestPipeline_AnalysisGateFailureAborts(t *testing.T) {
	f := newPipelineFixture(t)
	f.analysis.metrics = &entities.QualityMetrics{
		BlockerDefects: 1, InstructionCoveragePercent: 95,
	}

	result := f.pipeline.Run(context.Background())
	assert.Equal(t, StateAborted, result.State)
	assert.Equal(t, StateSecurityScan, result.FailedState)
	assert.ErrorIs(t, result.Err, entities.ErrGateFailed)
	assert.False(t, f.deps.called)
}

func TestPipeline_RemediationNeverGates(t *testing.T) {
	f := newPipelineFixture(t)
	// One fixable finding below the gate thresholds, so remediation has
	// work and its advisor fails.
	f.scanner.report = &entities.ScanReport{Vulnerabilities: []entities.Vulnerability{
		{PackageName: "guava", Severity: entities.SeverityMedium, FixedVersions: []string{"32.0.0"}},
	}}

	result := f.pipeline.Run(context.Background())
	assert.Equal(t, StateDone, result.State)
	assert.True(t, f.vcs.pushed)
}

func TestPipeline_DeclinedSyncIsNotAFailure(t *testing.T) {
	f := newPipelineFixture(t)
	f.vcs.branch = "main"
	// Refuse the protected-branch guard.
	reports := output.NewWriter(t.TempDir())
	sync := NewSyncMachine(f.vcs, &scriptedPrompter{answers: []string{"n"}}, reports, "PROJ-1", zap.NewNop())
	cfg := config.Config{Gates: config.GatesConfig{CoverageThreshold: 80.0}}
	pipeline := NewPipeline(cfg, f.builder, f.scanner, f.analysis, f.deps, nil, sync, reports, zap.NewNop())

	result := pipeline.Run(context.Background())
	assert.Equal(t, StateAborted, result.State)
	assert.Equal(t, StateVcsSync, result.FailedState)
	assert.True(t, result.Declined)
	assert.ErrorIs(t, result.Err, entities.ErrUserDeclined)
}

func TestPipeline_ReportsWrittenPerStage(t *testing.T) {
	f := &pipelineFixture{
		builder: &fakeBuilder{},
		scanner: &fakeScanner{report: &entities.ScanReport{Vulnerabilities: []entities.Vulnerability{
			{PackageName: "guava", Severity: entities.SeverityLow, FixedVersions: []string{"32.0.0"}},
		}}},
		analysis: &fakeAnalysis{metrics: &entities.QualityMetrics{InstructionCoveragePercent: 90}},
		deps:     &fakeDeps{},
		vcs:      &fakeVCS{branch: "feature/x"},
	}
	reports := output.NewWriter(t.TempDir())
	sync := NewSyncMachine(f.vcs, &scriptedPrompter{}, reports, "PROJ-1", zap.NewNop())
	cfg := config.Config{Gates: config.GatesConfig{CoverageThreshold: 80.0}}
	pipeline := NewPipeline(cfg, f.builder, f.scanner, f.analysis, f.deps, nil, sync, reports, zap.NewNop())

	result := pipeline.Run(context.Background())
	require.Equal(t, StateDone, result.State)

	assert.FileExists(t, reports.Path(output.CategoryAnalyser, ScanReportName))
	assert.FileExists(t, reports.Path(output.CategoryAnalyser, AnalysisReportName))
	assert.FileExists(t, reports.Path(output.CategoryDeps, DepsReportName))
	assert.FileExists(t, reports.Path(output.CategoryRemediation, RemediationReportName))
}
