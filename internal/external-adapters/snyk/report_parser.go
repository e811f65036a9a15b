// Package snyk parses the security scanner's machine-readable JSON output
// into domain entities.
package snyk

import (
	"encoding/json"
	"fmt"

	"aegis/internal/domain/entities"
)

// scanProject is one scanned manifest in the scanner's output. The top
// level is a single project for single-manifest runs and a list otherwise.
type scanProject struct {
	// OK defaults to true when absent; only explicit false contributes findings.
	OK              *bool         `json:"ok"`
	Vulnerabilities []scanFinding `json:"vulnerabilities"`
}

type scanFinding struct {
	PackageName string   `json:"packageName"`
	Severity    string   `json:"severity"`
	Version     string   `json:"version"`
	FixedIn     []string `json:"fixedIn"`
	URL         string   `json:"url"`
	Exploit     string   `json:"exploit"`
}

// ParseReport turns raw scanner JSON into a ScanReport. Findings keep the
// scanner's emission order across nested projects. Invalid top-level JSON
// is an entities.ErrMalformedOutput and halts the pipeline upstream.
func ParseReport(raw []byte) (*entities.ScanReport, error) {
	projects, err := decodeProjects(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: scanner JSON: %v", entities.ErrMalformedOutput, err)
	}

	report := &entities.ScanReport{}
	for _, project := range projects {
		if project.OK != nil && !*project.OK && project.Vulnerabilities != nil {
			for _, finding := range project.Vulnerabilities {
				report.Vulnerabilities = append(report.Vulnerabilities, mapFinding(finding))
			}
		}
	}
	return report, nil
}

func decodeProjects(raw []byte) ([]scanProject, error) {
	var projects []scanProject
	if err := json.Unmarshal(raw, &projects); err == nil {
		return projects, nil
	}

	var single scanProject
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []scanProject{single}, nil
}

func mapFinding(f scanFinding) entities.Vulnerability {
	return entities.Vulnerability{
		PackageName:      orDefault(f.PackageName, "N/A"),
		Severity:         entities.Severity(orDefault(f.Severity, "N/A")),
		InstalledVersion: orDefault(f.Version, "N/A"),
		FixedVersions:    f.FixedIn,
		ReferenceURL:     orDefault(f.URL, "#"),
		ExploitMaturity:  orDefault(f.Exploit, entities.ExploitNotAvailable),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
