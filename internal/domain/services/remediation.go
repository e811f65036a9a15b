package services

import (
	"context"
	"fmt"

	"aegis/internal/domain/entities"
	"aegis/internal/domain/interfaces/gateways"
)

// PlanRemediation builds a best-effort remediation plan for the fixable
// findings of a scan. Advisor failures are recorded as warnings on the
// plan; this function never returns an error because remediation does not
// gate the pipeline.
func PlanRemediation(ctx context.Context, report *entities.ScanReport, advisor gateways.RemediationAdvisor) *entities.RemediationPlan {
	plan := &entities.RemediationPlan{}

	for _, vuln := range report.Vulnerabilities {
		if !vuln.Fixable() {
			continue
		}

		advice := entities.RemediationAdvice{Vulnerability: vuln}
		if advisor != nil {
			suggestion, err := advisor.SuggestFix(ctx, vuln)
			if err != nil {
				plan.Warnings = append(plan.Warnings,
					fmt.Sprintf("advisor unavailable for '%s': %v", vuln.PackageName, err))
			} else {
				advice.Suggestion = suggestion
			}
		}
		plan.Advice = append(plan.Advice, advice)
	}
	return plan
}
