// Package jacoco extracts instruction coverage from JaCoCo XML reports.
package jacoco

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrNoInstructionCounter means the report parsed but carried no
// INSTRUCTION counter at the top level. Callers degrade to 0% coverage
// with a warning rather than aborting.
var ErrNoInstructionCounter = errors.New("no INSTRUCTION counter in coverage report")

type coverageReport struct {
	XMLName  xml.Name  `xml:"report"`
	Counters []counter `xml:"counter"`
}

type counter struct {
	Type    string `xml:"type,attr"`
	Missed  int    `xml:"missed,attr"`
	Covered int    `xml:"covered,attr"`
}

// ParseInstructionCoverage returns covered/(covered+missed)*100 for the
// report-level INSTRUCTION counter. Only direct children of the report
// element are considered; per-package counters do not count.
func ParseInstructionCoverage(raw []byte) (float64, error) {
	var report coverageReport
	if err := xml.Unmarshal(raw, &report); err != nil {
		return 0, fmt.Errorf("parsing coverage XML: %w", err)
	}

	for _, c := range report.Counters {
		if c.Type != "INSTRUCTION" {
			continue
		}
		total := c.Missed + c.Covered
		if total == 0 {
			return 0, nil
		}
		return float64(c.Covered) / float64(total) * 100, nil
	}
	return 0, ErrNoInstructionCounter
}
