package entities

// RemediationAdvice pairs one fixable finding with the advisor's upgrade
// note. Suggestion is empty when the advisor was unavailable or declined.
type RemediationAdvice struct {
	Vulnerability Vulnerability
	Suggestion    string
}

// RemediationPlan is the best-effort output of the remediation stage.
type RemediationPlan struct {
	Advice   []RemediationAdvice
	Warnings []string
}
