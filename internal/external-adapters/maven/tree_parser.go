// Package maven scrapes the build tool's console output. This is marker
// driven and best-effort by design: output that does not carry the exact
// markers yields the sentinel, never an error.
package maven

import (
	"strings"

	"aegis/internal/domain/entities"
)

const (
	treeStartMarker    = "[INFO] --- dependency"
	treeEndMarker      = "[INFO] ------------------------------------------------------------------------"
	infoPrefix         = "[INFO] "
	warningPrefix      = "[WARNING]"
	buildSuccessBanner = "[INFO] BUILD SUCCESS"
)

// ParseTree extracts the dependency listing from raw console output.
// Capture begins after the first line containing the start marker and
// ends at the end-marker rule or the first line that is neither an
// [INFO]/[WARNING] line nor the build-success banner. Captured [INFO]
// lines lose their prefix; [WARNING] lines are kept verbatim because
// conflict warnings are part of the tree.
func ParseTree(output string) entities.DependencyTree {
	var lines []string
	capturing := false

capture:
	for _, line := range strings.Split(output, "\n") {
		if !capturing {
			if strings.Contains(line, treeStartMarker) {
				capturing = true
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, treeEndMarker):
			break capture
		case strings.HasPrefix(line, infoPrefix):
			lines = append(lines, strings.TrimPrefix(line, infoPrefix))
		case strings.HasPrefix(line, warningPrefix):
			lines = append(lines, line)
		case !strings.HasPrefix(line, buildSuccessBanner):
			break capture
		}
	}

	if len(lines) == 0 {
		return entities.DependencyTree{Listing: entities.TreeParseFailed}
	}
	return entities.DependencyTree{Listing: strings.Join(lines, "\n"), Parsed: true}
}
