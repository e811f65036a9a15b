package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	workspace := t.TempDir()

	cfg, err := Load(workspace)
	require.NoError(t, err)

	assert.Equal(t, workspace, cfg.Workspace)
	assert.Equal(t, "mvn", cfg.Build.Command)
	assert.Equal(t, []string{"clean", "install"}, cfg.Build.Args)
	assert.Equal(t, "snyk", cfg.Scanner.Command)
	assert.Equal(t, 15, cfg.Sonar.WaitSeconds)
	assert.InDelta(t, 80.0, cfg.Gates.CoverageThreshold, 0.0001)
	assert.Equal(t, "origin", cfg.VCS.Remote)
	assert.False(t, cfg.Advisor.Enabled)
	assert.Equal(t, filepath.Join(workspace, ".dev-aegis"), cfg.ReportRoot())
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	workspace := t.TempDir()
	file := filepath.Join(workspace, ConfigFileName)
	require.NoError(t, os.WriteFile(file, []byte(`
scanner:
  command: "snyk-custom"
gates:
  coverage_threshold: 70.5
advisor:
  enabled: true
`), 0o600))

	cfg, err := Load(workspace)
	require.NoError(t, err)

	assert.Equal(t, "snyk-custom", cfg.Scanner.Command)
	assert.InDelta(t, 70.5, cfg.Gates.CoverageThreshold, 0.0001)
	assert.True(t, cfg.Advisor.Enabled)
	// Untouched keys keep their defaults.
	assert.Equal(t, "mvn", cfg.Build.Command)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	workspace := t.TempDir()
	file := filepath.Join(workspace, ConfigFileName)
	require.NoError(t, os.WriteFile(file, []byte("sonar:\n  wait_seconds: 5\n"), 0o600))

	t.Setenv("AEGIS_SONAR_WAIT_SECONDS", "0")
	t.Setenv("AEGIS_SCANNER_COMMAND", "snyk-env")

	cfg, err := Load(workspace)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Sonar.WaitSeconds)
	assert.Equal(t, "snyk-env", cfg.Scanner.Command)
}

func TestLoad_WorkspaceComesFromCallerOnly(t *testing.T) {
	workspace := t.TempDir()
	t.Setenv("AEGIS_WORKSPACE", "/somewhere/else")

	cfg, err := Load(workspace)
	require.NoError(t, err)
	assert.Equal(t, workspace, cfg.Workspace)
	assert.Equal(t, filepath.Join(workspace, ".dev-aegis"), cfg.ReportRoot())
}

func TestLoad_ScannerTimeoutsIndependent(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Build.TimeoutMinutes)
	assert.Equal(t, 15, cfg.Sonar.ScannerTimeoutMinutes)
}

func TestLoad_SonarTokenFromEnvironment(t *testing.T) {
	t.Setenv("SONAR_TOKEN", "squ_secret")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "squ_secret", cfg.Sonar.Token)
}

func TestLoad_InvalidThresholdRejected(t *testing.T) {
	workspace := t.TempDir()
	file := filepath.Join(workspace, ConfigFileName)
	require.NoError(t, os.WriteFile(file, []byte("gates:\n  coverage_threshold: 140\n"), 0o600))

	_, err := Load(workspace)
	assert.Error(t, err)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	workspace := t.TempDir()
	file := filepath.Join(workspace, ConfigFileName)
	require.NoError(t, os.WriteFile(file, []byte("build: [not: a: map\n"), 0o600))

	_, err := Load(workspace)
	assert.Error(t, err)
}
