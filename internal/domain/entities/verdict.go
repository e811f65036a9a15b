package entities

import "sort"

// GateVerdict is the outcome of one quality-gate evaluation. It is derived
// from the current findings on every run and never persisted.
//
// Reasons have set semantics: repeated qualifying findings that produce the
// same message collapse to one line. Deduplication is by full message
// string, so two rules wording the same package differently keep both lines.
type GateVerdict struct {
	passed  bool
	reasons map[string]struct{}
}

// NewPassingVerdict returns a verdict with no recorded failures.
func NewPassingVerdict() *GateVerdict {
	return &GateVerdict{passed: true, reasons: make(map[string]struct{})}
}

// Fail marks the verdict failed and records a reason.
func (v *GateVerdict) Fail(reason string) {
	v.passed = false
	v.reasons[reason] = struct{}{}
}

// Passed reports whether the gate passed.
func (v *GateVerdict) Passed() bool {
	return v.passed
}

// Reasons returns the deduplicated failure reasons in sorted order.
func (v *GateVerdict) Reasons() []string {
	reasons := make([]string, 0, len(v.reasons))
	for r := range v.reasons {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	return reasons
}
