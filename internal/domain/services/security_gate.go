// Package services implements domain business logic: quality-gate
// evaluation and remediation planning. Everything here is pure, no I/O.
package services

import (
	"fmt"

	"aegis/internal/domain/entities"
)

// EvaluateSecurityGate applies the security gate rules to a scan report:
//
//  1. any critical-severity finding fails the gate
//  2. any high-severity finding that is fixable and carries a mature
//     exploit fails the gate
//
// Rules are OR-combined across the whole report. Findings matching neither
// rule leave the verdict untouched but still appear in the rendered report.
// The verdict is order-independent over the input findings.
func EvaluateSecurityGate(report *entities.ScanReport) *entities.GateVerdict {
	verdict := entities.NewPassingVerdict()
	for _, vuln := range report.Vulnerabilities {
		if vuln.Severity == entities.SeverityCritical {
			verdict.Fail(fmt.Sprintf("CRITICAL vulnerability found in '%s'.", vuln.PackageName))
		}
		if vuln.Severity == entities.SeverityHigh && vuln.Fixable() && vuln.ExploitMaturity == entities.ExploitMature {
			verdict.Fail(fmt.Sprintf("HIGH vulnerability with a mature exploit and available fix found in '%s'.", vuln.PackageName))
		}
	}
	return verdict
}
