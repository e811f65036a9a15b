package gateways

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"aegis/internal/config"
	"aegis/internal/domain/entities"
	"aegis/internal/external-adapters/snyk"
	"aegis/internal/output"
)

// RawScanOutputName is the file the scanner's raw JSON is persisted to.
const RawScanOutputName = "snyk_output.json"

// SnykScanner invokes the security scanner on its machine-readable
// channel. Exit codes 0 (clean) and 1 (findings) are valid data states;
// 2 and above are configuration errors and fatal.
type SnykScanner struct {
	cfg     config.Config
	runner  Runner
	reports *output.Writer
	log     *zap.Logger
}

// NewSnykScanner creates the scanner adapter.
func NewSnykScanner(cfg config.Config, runner Runner, reports *output.Writer, log *zap.Logger) *SnykScanner {
	return &SnykScanner{cfg: cfg, runner: runner, reports: reports, log: log}
}

// Scan implements gateways.VulnerabilityScanner.
func (s *SnykScanner) Scan(ctx context.Context) (*entities.ScanReport, error) {
	s.log.Info("starting vulnerability scan", zap.String("command", s.cfg.Scanner.Command))

	result, err := s.runner.Run(ctx, CommandSpec{
		Name:        s.cfg.Scanner.Command,
		Args:        []string{"test", "--json"},
		Dir:         s.cfg.Workspace,
		Timeout:     time.Duration(s.cfg.Scanner.TimeoutMinutes) * time.Minute,
		OKExitCodes: []int{0, 1},
	})
	if err != nil {
		return nil, err
	}

	// Raw output is kept even when the run failed, for post-mortems.
	if _, werr := s.reports.Write(output.CategoryAnalyser, RawScanOutputName, result.Stdout); werr != nil {
		s.log.Warn("could not persist raw scan output", zap.Error(werr))
	}

	if !result.Succeeded {
		return nil, fmt.Errorf("%w: scanner exited with code %d: %s",
			entities.ErrToolExecution, result.ExitCode, result.Stderr)
	}

	report, err := snyk.ParseReport([]byte(result.Stdout))
	if err != nil {
		return nil, err
	}
	s.log.Info("scan completed", zap.Int("findings", len(report.Vulnerabilities)))
	return report, nil
}
