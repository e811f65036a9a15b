package gateways

import (
	"context"

	"aegis/internal/domain/entities"
)

// VulnerabilityScanner runs the security scanner and returns its parsed
// findings. Exit codes 0 and 1 are valid data states (clean / findings);
// higher codes are configuration errors and surface as errors here.
type VulnerabilityScanner interface {
	Scan(ctx context.Context) (*entities.ScanReport, error)
}

// RemediationAdvisor produces an upgrade note for one fixable finding.
// Advisors are best-effort collaborators: errors degrade the remediation
// report, they never gate the pipeline.
type RemediationAdvisor interface {
	SuggestFix(ctx context.Context, vuln entities.Vulnerability) (string, error)
}
