package entities

// QualityMetrics merges the analysis server's defect counts with the
// locally parsed coverage figure. A missing or unparsable coverage report
// degrades to 0.0 with a warning; missing defect counts default to 0,
// but a failed remote query is fatal upstream.
type QualityMetrics struct {
	BlockerDefects             int
	CriticalDefects            int
	InstructionCoveragePercent float64
}
