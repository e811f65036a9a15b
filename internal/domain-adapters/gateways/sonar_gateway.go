package gateways

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"aegis/internal/config"
	"aegis/internal/domain/entities"
	"aegis/internal/external-adapters/jacoco"
	"aegis/internal/external-adapters/sonar"
	"aegis/internal/output"
)

// Analysis-server report artifacts under the analyser category.
const (
	SonarScannerLogName = "sonar-scanner.log"

	// scannerSuccessMarker must appear in the scanner's stdout; the
	// scanner can exit 0 while the submission failed.
	scannerSuccessMarker = "EXECUTION SUCCESS"
)

// SonarGateway runs the static-analysis scanner, waits for the server to
// process the submission, then merges the server's defect counts with
// the locally parsed coverage report.
type SonarGateway struct {
	cfg        config.Config
	runner     Runner
	reports    *output.Writer
	httpClient *http.Client
	log        *zap.Logger
}

// NewSonarGateway creates the analysis-server adapter.
func NewSonarGateway(cfg config.Config, runner Runner, reports *output.Writer, log *zap.Logger) *SonarGateway {
	return &SonarGateway{
		cfg:     cfg,
		runner:  runner,
		reports: reports,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Sonar.TimeoutSeconds) * time.Second,
		},
		log: log,
	}
}

// CollectMetrics implements gateways.AnalysisServer. A failed remote
// query is entities.ErrRemoteQuery and fatal; a missing or unparsable
// coverage report degrades to 0% with a warning.
func (g *SonarGateway) CollectMetrics(ctx context.Context) (*entities.QualityMetrics, error) {
	props, err := g.readProperties()
	if err != nil {
		return nil, err
	}

	if err := g.runScanner(ctx); err != nil {
		return nil, err
	}

	// Give the server a moment to process the submitted analysis.
	// TODO: poll the analysis task endpoint instead of a fixed wait.
	if wait := time.Duration(g.cfg.Sonar.WaitSeconds) * time.Second; wait > 0 {
		g.log.Info("waiting for analysis server to process submission", zap.Duration("wait", wait))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	coverage := g.readCoverage()
	blockers, criticals, err := g.fetchDefectCounts(ctx, props)
	if err != nil {
		return nil, err
	}

	return &entities.QualityMetrics{
		BlockerDefects:             blockers,
		CriticalDefects:            criticals,
		InstructionCoveragePercent: coverage,
	}, nil
}

func (g *SonarGateway) readProperties() (*sonar.ServerProperties, error) {
	path := filepath.Join(g.cfg.Workspace, g.cfg.Sonar.PropertiesFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	props, err := sonar.ParseProperties(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

func (g *SonarGateway) runScanner(ctx context.Context) error {
	g.log.Info("starting static analysis", zap.String("command", g.cfg.Sonar.ScannerCommand))

	result, err := g.runner.Run(ctx, CommandSpec{
		Name:    g.cfg.Sonar.ScannerCommand,
		Dir:     g.cfg.Workspace,
		Timeout: time.Duration(g.cfg.Sonar.ScannerTimeoutMinutes) * time.Minute,
	})
	if err != nil {
		return err
	}

	logPath, werr := g.reports.Write(output.CategoryAnalyser, SonarScannerLogName, result.CombinedLog("SONAR-SCANNER LOG"))
	if werr != nil {
		return werr
	}

	if !result.Succeeded || !strings.Contains(result.Stdout, scannerSuccessMarker) {
		return fmt.Errorf("%w: analysis scanner did not report success, see %s",
			entities.ErrToolExecution, logPath)
	}
	return nil
}

func (g *SonarGateway) readCoverage() float64 {
	path := filepath.Join(g.cfg.Workspace, g.cfg.Sonar.CoverageReport)
	raw, err := os.ReadFile(path)
	if err != nil {
		g.log.Warn("coverage report unavailable, defaulting to 0%", zap.String("path", path), zap.Error(err))
		return 0
	}

	coverage, err := jacoco.ParseInstructionCoverage(raw)
	if err != nil {
		g.log.Warn("coverage report unusable, defaulting to 0%", zap.String("path", path), zap.Error(err))
		return 0
	}
	g.log.Info("instruction coverage parsed", zap.Float64("percent", coverage))
	return coverage
}

func (g *SonarGateway) fetchDefectCounts(ctx context.Context, props *sonar.ServerProperties) (int, int, error) {
	endpoint := strings.TrimRight(props.HostURL, "/") + "/api/measures/component"
	params := url.Values{
		"component":  {props.ProjectKey},
		"metricKeys": {sonar.MetricBlockerViolations + "," + sonar.MetricCriticalViolations},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", entities.ErrRemoteQuery, err)
	}
	if g.cfg.Sonar.Token != "" {
		// The server accepts the token as a basic-auth username with an
		// empty password.
		req.SetBasicAuth(g.cfg.Sonar.Token, "")
	}

	g.log.Info("querying analysis server for defect counts", zap.String("component", props.ProjectKey))
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", entities.ErrRemoteQuery, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("%w: measures API returned %s", entities.ErrRemoteQuery, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: reading measures payload: %v", entities.ErrRemoteQuery, err)
	}

	blockers, criticals, err := sonar.ParseMeasures(body)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", entities.ErrRemoteQuery, err)
	}
	g.log.Info("defect counts fetched", zap.Int("blockers", blockers), zap.Int("criticals", criticals))
	return blockers, criticals, nil
}
