package output

import (
	"fmt"
	"strings"

	"aegis/internal/domain/entities"
)

// RenderRemediationReport renders the best-effort remediation plan:
// one section per fixable finding, advisor warnings at the end.
func RenderRemediationReport(plan *entities.RemediationPlan) string {
	var b strings.Builder
	b.WriteString("# Remediation Report\n\n")

	if len(plan.Advice) == 0 {
		b.WriteString("No fixable vulnerabilities found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Found %d fixable vulnerabilities.\n\n", len(plan.Advice))
	for _, advice := range plan.Advice {
		v := advice.Vulnerability
		fmt.Fprintf(&b, "## %s (%s)\n\n", v.PackageName, v.Severity.Title())
		fmt.Fprintf(&b, "- Installed: %s\n", v.InstalledVersion)
		fmt.Fprintf(&b, "- Fixed in: %s\n", v.FixedIn())
		if advice.Suggestion != "" {
			fmt.Fprintf(&b, "\n%s\n", advice.Suggestion)
		}
		b.WriteString("\n")
	}

	if len(plan.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range plan.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}
