package snyk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aegis/internal/domain/entities"
)

func TestParseReport_SingleProject(t *testing.T) {
	raw := []byte(`{
		"ok": false,
		"vulnerabilities": [
			{
				"packageName": "libfoo",
				"severity": "critical",
				"version": "1.0",
				"fixedIn": ["1.1"],
				"url": "http://x",
				"exploit": "Mature"
			}
		]
	}`)

	report, err := ParseReport(raw)
	require.NoError(t, err)

	want := []entities.Vulnerability{
		{
			PackageName:      "libfoo",
			Severity:         entities.SeverityCritical,
			InstalledVersion: "1.0",
			FixedVersions:    []string{"1.1"},
			ReferenceURL:     "http://x",
			ExploitMaturity:  entities.ExploitMature,
		},
	}
	if diff := cmp.Diff(want, report.Vulnerabilities); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReport_ListPreservesEncounterOrder(t *testing.T) {
	raw := []byte(`[
		{"ok": false, "vulnerabilities": [
			{"packageName": "a", "severity": "low"},
			{"packageName": "b", "severity": "high"}
		]},
		{"ok": true, "vulnerabilities": [
			{"packageName": "ignored", "severity": "critical"}
		]},
		{"ok": false, "vulnerabilities": [
			{"packageName": "c", "severity": "medium"}
		]}
	]`)

	report, err := ParseReport(raw)
	require.NoError(t, err)

	var names []string
	for _, v := range report.Vulnerabilities {
		names = append(names, v.PackageName)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestParseReport_OKDefaultsToTrue(t *testing.T) {
	// No "ok" field at all: the project is treated as clean even though a
	// vulnerabilities array is present.
	raw := []byte(`{"vulnerabilities": [{"packageName": "x", "severity": "critical"}]}`)

	report, err := ParseReport(raw)
	require.NoError(t, err)
	assert.Empty(t, report.Vulnerabilities)
}

func TestParseReport_MissingVulnerabilitiesArray(t *testing.T) {
	report, err := ParseReport([]byte(`{"ok": false}`))
	require.NoError(t, err)
	assert.Empty(t, report.Vulnerabilities)
}

func TestParseReport_FieldDefaults(t *testing.T) {
	raw := []byte(`{"ok": false, "vulnerabilities": [{}]}`)

	report, err := ParseReport(raw)
	require.NoError(t, err)
	require.Len(t, report.Vulnerabilities, 1)

	v := report.Vulnerabilities[0]
	assert.Equal(t, "N/A", v.PackageName)
	assert.Equal(t, entities.Severity("N/A"), v.Severity)
	assert.Equal(t, "N/A", v.InstalledVersion)
	assert.Equal(t, "#", v.ReferenceURL)
	assert.Equal(t, entities.ExploitNotAvailable, v.ExploitMaturity)
	assert.Equal(t, entities.FixedInNone, v.FixedIn())
	assert.False(t, v.Fixable())
}

func TestParseReport_EmptyFixedInIsSentinel(t *testing.T) {
	raw := []byte(`{"ok": false, "vulnerabilities": [{"packageName": "p", "fixedIn": []}]}`)

	report, err := ParseReport(raw)
	require.NoError(t, err)
	require.Len(t, report.Vulnerabilities, 1)
	assert.Equal(t, entities.FixedInNone, report.Vulnerabilities[0].FixedIn())
}

func TestParseReport_MalformedJSON(t *testing.T) {
	_, err := ParseReport([]byte(`{not json`))
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrMalformedOutput)
}

func TestParseReport_CountMatchesFailingProjects(t *testing.T) {
	raw := []byte(`[
		{"ok": false, "vulnerabilities": [{"packageName": "a"}, {"packageName": "b"}]},
		{"ok": false, "vulnerabilities": []},
		{"ok": true,  "vulnerabilities": [{"packageName": "x"}]},
		{"ok": false, "vulnerabilities": [{"packageName": "c"}]}
	]`)

	report, err := ParseReport(raw)
	require.NoError(t, err)
	assert.Len(t, report.Vulnerabilities, 3)
}
