package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aegis/internal/domain/entities"
)

func TestEvaluateAnalysisGate(t *testing.T) {
	tests := []struct {
		name        string
		metrics     entities.QualityMetrics
		wantPass    bool
		wantReasons int
	}{
		{
			name:     "all clear",
			metrics:  entities.QualityMetrics{InstructionCoveragePercent: 92.5},
			wantPass: true,
		},
		{
			name:        "blocker defects",
			metrics:     entities.QualityMetrics{BlockerDefects: 1, InstructionCoveragePercent: 95},
			wantReasons: 1,
		},
		{
			name:        "critical defects",
			metrics:     entities.QualityMetrics{CriticalDefects: 4, InstructionCoveragePercent: 95},
			wantReasons: 1,
		},
		{
			name:        "low coverage",
			metrics:     entities.QualityMetrics{InstructionCoveragePercent: 42},
			wantReasons: 1,
		},
		{
			name:        "every clause at once",
			metrics:     entities.QualityMetrics{BlockerDefects: 2, CriticalDefects: 1, InstructionCoveragePercent: 10},
			wantReasons: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := EvaluateAnalysisGate(tt.metrics, DefaultCoverageThreshold)
			assert.Equal(t, tt.wantPass, verdict.Passed())
			assert.Len(t, verdict.Reasons(), tt.wantReasons)
		})
	}
}

func TestEvaluateAnalysisGate_CoverageBoundary(t *testing.T) {
	exactly := EvaluateAnalysisGate(entities.QualityMetrics{InstructionCoveragePercent: 80.0}, DefaultCoverageThreshold)
	assert.True(t, exactly.Passed(), "coverage exactly at the threshold passes")

	below := EvaluateAnalysisGate(entities.QualityMetrics{InstructionCoveragePercent: 79.99}, DefaultCoverageThreshold)
	assert.False(t, below.Passed(), "coverage just below the threshold fails")
}

func TestEvaluateAnalysisGate_MissingCoverageDefaultsToFailure(t *testing.T) {
	// A missing coverage report degrades to 0.0 upstream, which must trip
	// the coverage clause even with zero defects.
	verdict := EvaluateAnalysisGate(entities.QualityMetrics{}, DefaultCoverageThreshold)
	assert.False(t, verdict.Passed())
	assert.Len(t, verdict.Reasons(), 1)
}
