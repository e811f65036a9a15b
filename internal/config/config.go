// Package config provides configuration loading for aegis.
//
// Components never read ambient state (working directory, environment)
// themselves; everything they need arrives through the immutable Config
// value built here.
package config

// Config is the full runtime configuration. It is assembled once at
// startup and passed by value into every constructor.
type Config struct {
	// Workspace is the project directory all tools run in. It comes
	// from the CLI flag only: the config file and environment cannot
	// set it, because it is what locates the config file itself.
	Workspace string `koanf:"-"`

	Report  ReportConfig  `koanf:"report"`
	Build   BuildConfig   `koanf:"build"`
	Scanner ScannerConfig `koanf:"scanner"`
	Sonar   SonarConfig   `koanf:"sonar"`
	Advisor AdvisorConfig `koanf:"advisor"`
	VCS     VCSConfig     `koanf:"vcs"`
	Gates   GatesConfig   `koanf:"gates"`
	Log     LogConfig     `koanf:"log"`
}

// ReportConfig locates the report tree.
type ReportConfig struct {
	// Root is the report directory, relative to the workspace.
	Root string `koanf:"root"`
}

// BuildConfig describes the build-tool invocation.
type BuildConfig struct {
	Command        string   `koanf:"command"`
	Args           []string `koanf:"args"`
	TimeoutMinutes int      `koanf:"timeout_minutes"`
}

// ScannerConfig describes the security-scanner invocation.
type ScannerConfig struct {
	Command        string `koanf:"command"`
	TimeoutMinutes int    `koanf:"timeout_minutes"`
}

// SonarConfig describes the static-analysis collaborators. Token is
// populated from the SONAR_TOKEN environment variable by the loader.
type SonarConfig struct {
	ScannerCommand string `koanf:"scanner_command"`
	PropertiesFile string `koanf:"properties_file"`
	CoverageReport string `koanf:"coverage_report"`
	WaitSeconds    int    `koanf:"wait_seconds"`
	// ScannerTimeoutMinutes bounds the sonar-scanner subprocess;
	// TimeoutSeconds bounds the measures API call.
	ScannerTimeoutMinutes int    `koanf:"scanner_timeout_minutes"`
	TimeoutSeconds        int    `koanf:"timeout_seconds"`
	Token                 string `koanf:"-"`
}

// AdvisorConfig describes the optional remediation advisor.
type AdvisorConfig struct {
	Enabled        bool   `koanf:"enabled"`
	Host           string `koanf:"host"`
	Model          string `koanf:"model"`
	TimeoutSeconds int    `koanf:"timeout_seconds"`
}

// VCSConfig describes the version-control remote.
type VCSConfig struct {
	Remote string `koanf:"remote"`
}

// GatesConfig carries the tunable gate thresholds.
type GatesConfig struct {
	CoverageThreshold float64 `koanf:"coverage_threshold"`
}

// LogConfig selects log level and encoder.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
