package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Report categories: one subdirectory per pipeline stage under the
// report root. Paths are fixed relative to the configured root.
const (
	CategoryBuild       = "build"
	CategoryAnalyser    = "analyser"
	CategoryDeps        = "deps"
	CategoryRemediation = "remediation"
	CategoryGitter      = "gitter"
)

// Writer persists reports and logs under the report root. Files are
// overwritten on each run, never appended.
type Writer struct {
	root string
}

// NewWriter creates a writer rooted at the given report directory.
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Path returns the location a report would be written to.
func (w *Writer) Path(category, name string) string {
	return filepath.Join(w.root, category, name)
}

// Write stores one report, creating the category directory as needed,
// and returns the written path.
func (w *Writer) Write(category, name, content string) (string, error) {
	dir := filepath.Join(w.root, category)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating report directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}
