// Package output renders stage reports as markdown and writes them to the
// fixed per-category report layout. Renderers are pure functions of their
// inputs: they render failing verdicts the same way as passing ones, and
// identical inputs produce byte-identical documents.
package output

import (
	"fmt"
	"strings"

	"aegis/internal/domain/entities"
)

// RenderScanReport renders the security-scan findings table. The zero
// findings case is prose, not an empty table.
func RenderScanReport(report *entities.ScanReport) string {
	var b strings.Builder
	b.WriteString("# Snyk Security Report\n\n")

	if len(report.Vulnerabilities) == 0 {
		b.WriteString("Congratulations! No vulnerabilities were found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d vulnerabilities.\n\n", len(report.Vulnerabilities))
	b.WriteString("| Package | Severity | Vulnerable Version | Fixed in Version | CVE Report Link |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, v := range report.Vulnerabilities {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | [View Details](%s) |\n",
			v.PackageName, v.Severity.Title(), v.InstalledVersion, v.FixedIn(), v.ReferenceURL)
	}
	return b.String()
}
