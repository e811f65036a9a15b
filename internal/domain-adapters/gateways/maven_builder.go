package gateways

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"aegis/internal/config"
	"aegis/internal/domain/entities"
	"aegis/internal/output"
)

// BuildLogName is the file the combined build output is written to,
// under the build report category.
const BuildLogName = "build.log"

// MavenBuilder runs the project build with a fixed clean-then-install
// command and persists its combined output. Success means exit code 0.
type MavenBuilder struct {
	cfg     config.Config
	runner  Runner
	reports *output.Writer
	log     *zap.Logger
}

// NewMavenBuilder creates the build-tool adapter.
func NewMavenBuilder(cfg config.Config, runner Runner, reports *output.Writer, log *zap.Logger) *MavenBuilder {
	return &MavenBuilder{cfg: cfg, runner: runner, reports: reports, log: log}
}

// Build implements gateways.BuildTool. The log is written whether the
// build passed or failed, so a failing build still leaves evidence.
func (b *MavenBuilder) Build(ctx context.Context) (*entities.ToolInvocationResult, error) {
	b.log.Info("starting build",
		zap.String("command", b.cfg.Build.Command),
		zap.Strings("args", b.cfg.Build.Args),
		zap.String("dir", b.cfg.Workspace))

	result, err := b.runner.Run(ctx, CommandSpec{
		Name:    b.cfg.Build.Command,
		Args:    b.cfg.Build.Args,
		Dir:     b.cfg.Workspace,
		Timeout: time.Duration(b.cfg.Build.TimeoutMinutes) * time.Minute,
	})
	if err != nil {
		return nil, err
	}

	logPath, err := b.reports.Write(output.CategoryBuild, BuildLogName, result.CombinedLog("MAVEN BUILD LOG"))
	if err != nil {
		return nil, err
	}
	b.log.Info("build log saved", zap.String("path", logPath))

	if !result.Succeeded {
		return result, fmt.Errorf("%w: build exited with code %d, see %s",
			entities.ErrToolExecution, result.ExitCode, logPath)
	}
	return result, nil
}
