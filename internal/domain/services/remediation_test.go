package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aegis/internal/domain/entities"
)

type stubAdvisor struct {
	suggestion string
	err        error
	calls      int
}

func (s *stubAdvisor) SuggestFix(_ context.Context, _ entities.Vulnerability) (string, error) {
	s.calls++
	return s.suggestion, s.err
}

func fixableScan() *entities.ScanReport {
	return &entities.ScanReport{Vulnerabilities: []entities.Vulnerability{
		{PackageName: "libfoo", Severity: entities.SeverityHigh, FixedVersions: []string{"2.0"}},
		{PackageName: "libbar", Severity: entities.SeverityLow},
		{PackageName: "libbaz", Severity: entities.SeverityCritical, FixedVersions: []string{"3.1", "4.0"}},
	}}
}

func TestPlanRemediation_OnlyFixableFindings(t *testing.T) {
	advisor := &stubAdvisor{suggestion: "upgrade"}

	plan := PlanRemediation(context.Background(), fixableScan(), advisor)
	require.Len(t, plan.Advice, 2)
	assert.Equal(t, "libfoo", plan.Advice[0].Vulnerability.PackageName)
	assert.Equal(t, "libbaz", plan.Advice[1].Vulnerability.PackageName)
	assert.Equal(t, 2, advisor.calls)
	assert.Empty(t, plan.Warnings)
}

func TestPlanRemediation_AdvisorFailureDegrades(t *testing.T) {
	advisor := &stubAdvisor{err: errors.New("connection refused")}

	plan := PlanRemediation(context.Background(), fixableScan(), advisor)
	require.Len(t, plan.Advice, 2)
	assert.Empty(t, plan.Advice[0].Suggestion)
	assert.Len(t, plan.Warnings, 2)
}

func TestPlanRemediation_NilAdvisor(t *testing.T) {
	plan := PlanRemediation(context.Background(), fixableScan(), nil)
	require.Len(t, plan.Advice, 2)
	assert.Empty(t, plan.Warnings)
}
