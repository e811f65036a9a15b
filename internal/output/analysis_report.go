package output

import (
	"fmt"
	"strings"

	"aegis/internal/domain/entities"
)

// RenderAnalysisReport renders the static-analysis gate outcome. The three
// threshold/value lines are always present, informational even when the
// gate passes.
func RenderAnalysisReport(metrics entities.QualityMetrics, verdict *entities.GateVerdict, coverageThreshold float64) string {
	status := "PASSED"
	if !verdict.Passed() {
		status = "FAILED"
	}

	var b strings.Builder
	b.WriteString("# SonarQube Analysis Report\n\n")
	fmt.Fprintf(&b, "## Quality Gate Status: %s\n\n", status)
	b.WriteString("**Summary**\n")
	fmt.Fprintf(&b, "- Blocker Bugs: **%d** (Threshold: 0) *(From SonarQube)*\n", metrics.BlockerDefects)
	fmt.Fprintf(&b, "- Critical Bugs: **%d** (Threshold: 0) *(From SonarQube)*\n", metrics.CriticalDefects)
	fmt.Fprintf(&b, "- Code Coverage: **%.2f%%** (Threshold: >%.0f%%) *(From JaCoCo)*\n", metrics.InstructionCoveragePercent, coverageThreshold)
	return b.String()
}
