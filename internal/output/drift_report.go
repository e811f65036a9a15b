package output

import (
	"fmt"
	"strings"

	"aegis/internal/domain/entities"
)

// RenderDriftReport renders the upstream-drift warning. Branches are
// emitted in protected-set order for a stable document; branches without
// drift are omitted. Returns "" when there is no drift at all; the
// caller writes no file in that case.
func RenderDriftReport(aheadByBranch map[string][]string) string {
	var sections strings.Builder
	for _, branch := range entities.ProtectedBranches {
		commits := aheadByBranch[branch]
		if len(commits) == 0 {
			continue
		}
		fmt.Fprintf(&sections, "## New Commits on 'origin/%s'\n\n", branch)
		sections.WriteString("```\n")
		sections.WriteString(strings.Join(commits, "\n"))
		sections.WriteString("\n```\n\n")
	}

	if sections.Len() == 0 {
		return ""
	}
	return "# Git Remote Changes Warning\n\n" + sections.String()
}
