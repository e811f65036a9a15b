package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the optional per-project config file, looked up in
// the workspace root.
const ConfigFileName = ".aegis.yml"

// defaults mirror the Config layout. Precedence: defaults < config file
// < AEGIS_* environment variables.
var defaults = []byte(`
report:
  root: ".dev-aegis"
build:
  command: "mvn"
  args: ["clean", "install"]
  timeout_minutes: 30
scanner:
  command: "snyk"
  timeout_minutes: 10
sonar:
  scanner_command: "sonar-scanner"
  properties_file: "sonar-project.properties"
  coverage_report: "target/site/jacoco/jacoco.xml"
  wait_seconds: 15
  scanner_timeout_minutes: 15
  timeout_seconds: 30
advisor:
  enabled: false
  host: "http://localhost:11434"
  model: "deepseek-r1:8b"
  timeout_seconds: 120
vcs:
  remote: "origin"
gates:
  coverage_threshold: 80.0
log:
  level: "info"
  format: "console"
`)

// Load builds the configuration for the given workspace. The config file
// is optional; environment variables always win. The analysis-server
// token is read here from SONAR_TOKEN, so no component touches the
// environment later.
func Load(workspace string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaults), kyaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	filePath := filepath.Join(workspace, ConfigFileName)
	if raw, err := os.ReadFile(filePath); err == nil {
		if err := k.Load(rawbytes.Provider(raw), kyaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filePath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	// AEGIS_SONAR_WAIT_SECONDS -> sonar.wait_seconds: the first
	// underscore separates section from key, later ones stay literal.
	if err := k.Load(env.Provider("AEGIS_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "AEGIS_"))
		return strings.Replace(key, "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Workspace = workspace
	if cfg.Workspace == "" {
		cfg.Workspace = "."
	}
	cfg.Sonar.Token = os.Getenv("SONAR_TOKEN")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReportRoot resolves the report directory against the workspace.
func (c *Config) ReportRoot() string {
	if filepath.IsAbs(c.Report.Root) {
		return c.Report.Root
	}
	return filepath.Join(c.Workspace, c.Report.Root)
}

func (c *Config) validate() error {
	if c.Build.Command == "" {
		return fmt.Errorf("build.command must not be empty")
	}
	if c.Scanner.Command == "" {
		return fmt.Errorf("scanner.command must not be empty")
	}
	if c.Gates.CoverageThreshold < 0 || c.Gates.CoverageThreshold > 100 {
		return fmt.Errorf("gates.coverage_threshold must be in [0,100], got %v", c.Gates.CoverageThreshold)
	}
	return nil
}
