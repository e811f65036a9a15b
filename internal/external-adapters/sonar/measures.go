// Package sonar parses the analysis server's configuration file and its
// measures API payload.
package sonar

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Metric keys requested from the measures API.
const (
	MetricBlockerViolations  = "blocker_violations"
	MetricCriticalViolations = "critical_violations"
)

type measuresResponse struct {
	Component struct {
		Measures []measure `json:"measures"`
	} `json:"component"`
}

type measure struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// ParseMeasures extracts the blocker and critical violation counts from a
// measures API payload. Keys absent from the response default to 0; a
// payload that cannot be decoded is an error, because the quality decision
// cannot be made without these counts.
func ParseMeasures(raw []byte) (blockers, criticals int, err error) {
	var resp measuresResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return 0, 0, fmt.Errorf("decoding measures payload: %w", err)
	}

	counts := make(map[string]int, len(resp.Component.Measures))
	for _, m := range resp.Component.Measures {
		n, err := strconv.Atoi(m.Value)
		if err != nil {
			return 0, 0, fmt.Errorf("measure %q has non-integer value %q", m.Metric, m.Value)
		}
		counts[m.Metric] = n
	}
	return counts[MetricBlockerViolations], counts[MetricCriticalViolations], nil
}
