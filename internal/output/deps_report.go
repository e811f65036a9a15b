package output

import (
	"strings"

	"aegis/internal/domain/entities"
)

// RenderDependencyReport wraps the scraped dependency listing. The
// sentinel from a failed scrape is rendered as-is so operators see what
// the parser saw.
func RenderDependencyReport(tree entities.DependencyTree) string {
	var b strings.Builder
	b.WriteString("# Dependency Tree\n\n")
	b.WriteString("```\n")
	b.WriteString(tree.Listing)
	b.WriteString("\n```\n")
	return b.String()
}
