// Package entities defines core domain models and data structures.
package entities

// ToolInvocationResult wraps one external process invocation.
// It is created once per call and never mutated afterwards.
type ToolInvocationResult struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	// Succeeded is derived from the tool's own exit-code contract:
	// some tools use exit code 1 to mean "findings present", not failure.
	Succeeded bool
}

// CombinedLog renders the captured output the way it is persisted
// to per-stage log files.
func (r *ToolInvocationResult) CombinedLog(title string) string {
	return "--- " + title + " ---\n\n" +
		"--- STDOUT ---\n" + r.Stdout + "\n\n" +
		"--- STDERR ---\n" + r.Stderr + "\n"
}
