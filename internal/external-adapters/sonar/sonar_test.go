package sonar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeasures(t *testing.T) {
	raw := []byte(`{
		"component": {
			"key": "demo",
			"measures": [
				{"metric": "blocker_violations", "value": "3"},
				{"metric": "critical_violations", "value": "7"}
			]
		}
	}`)

	blockers, criticals, err := ParseMeasures(raw)
	require.NoError(t, err)
	assert.Equal(t, 3, blockers)
	assert.Equal(t, 7, criticals)
}

func TestParseMeasures_MissingKeysDefaultToZero(t *testing.T) {
	blockers, criticals, err := ParseMeasures([]byte(`{"component": {"measures": []}}`))
	require.NoError(t, err)
	assert.Zero(t, blockers)
	assert.Zero(t, criticals)
}

func TestParseMeasures_NonIntegerValue(t *testing.T) {
	_, _, err := ParseMeasures([]byte(`{"component": {"measures": [{"metric": "blocker_violations", "value": "many"}]}}`))
	assert.Error(t, err)
}

func TestParseMeasures_InvalidJSON(t *testing.T) {
	_, _, err := ParseMeasures([]byte(`{`))
	assert.Error(t, err)
}

func TestParseProperties(t *testing.T) {
	raw := []byte(`# project coordinates
sonar.projectKey=demo-service

sonar.host.url = http://sonar.internal:9000
sonar.sources=src
`)

	props, err := ParseProperties(raw)
	require.NoError(t, err)
	assert.Equal(t, "http://sonar.internal:9000", props.HostURL)
	assert.Equal(t, "demo-service", props.ProjectKey)
}

func TestParseProperties_MissingKey(t *testing.T) {
	_, err := ParseProperties([]byte("sonar.projectKey=demo\n"))
	assert.Error(t, err)
}
