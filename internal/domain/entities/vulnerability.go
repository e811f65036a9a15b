package entities

import "strings"

// Severity is the scanner's severity classification, kept in the
// scanner's own lowercase spelling.
type Severity string

// Severity levels emitted by the vulnerability scanner.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Title returns the severity in title case for report rendering.
func (s Severity) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[0])) + string(s[1:])
}

// Exploit maturity values as the scanner reports them. ExploitNotAvailable
// is also the default when the field is absent from the scan output.
const (
	ExploitMature       = "Mature"
	ExploitProofOfCode  = "Proof of Concept"
	ExploitNotAvailable = "Not Available"
)

// FixedInNone is the sentinel for "no fixed version known". It is distinct
// from an empty list only at the source: the parser collapses both absent
// and empty fixedIn fields to this value, and the security gate treats a
// vulnerability as fixable iff FixedIn() returns something else.
const FixedInNone = "NA"

// Vulnerability is one finding from a security scan.
type Vulnerability struct {
	PackageName      string
	Severity         Severity
	InstalledVersion string
	FixedVersions    []string
	ReferenceURL     string
	ExploitMaturity  string
}

// FixedIn returns the comma-joined fixed versions, or the FixedInNone
// sentinel when no fix is known.
func (v Vulnerability) FixedIn() string {
	if len(v.FixedVersions) == 0 {
		return FixedInNone
	}
	return strings.Join(v.FixedVersions, ", ")
}

// Fixable reports whether an upgrade path exists for this finding.
func (v Vulnerability) Fixable() bool {
	return len(v.FixedVersions) > 0
}

// ScanReport is the ordered findings of one scanner run. Order is the
// scanner's emission order, preserved for report fidelity.
type ScanReport struct {
	Vulnerabilities []Vulnerability
}
