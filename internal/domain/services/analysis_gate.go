package services

import (
	"fmt"

	"aegis/internal/domain/entities"
)

// DefaultCoverageThreshold is the minimum acceptable instruction coverage.
const DefaultCoverageThreshold = 80.0

// EvaluateAnalysisGate applies the static-analysis gate: fail iff any
// blocker defects, any critical defects, or coverage below the threshold.
// The three clauses are independent; each violated clause contributes its
// own reason. Coverage exactly at the threshold passes.
func EvaluateAnalysisGate(metrics entities.QualityMetrics, coverageThreshold float64) *entities.GateVerdict {
	verdict := entities.NewPassingVerdict()

	if metrics.BlockerDefects > 0 {
		verdict.Fail(fmt.Sprintf("Found %d Blocker defects (threshold: 0).", metrics.BlockerDefects))
	}
	if metrics.CriticalDefects > 0 {
		verdict.Fail(fmt.Sprintf("Found %d Critical defects (threshold: 0).", metrics.CriticalDefects))
	}
	if metrics.InstructionCoveragePercent < coverageThreshold {
		verdict.Fail(fmt.Sprintf("Code coverage is %.2f%%, which is below the required %.0f%%.",
			metrics.InstructionCoveragePercent, coverageThreshold))
	}
	return verdict
}
