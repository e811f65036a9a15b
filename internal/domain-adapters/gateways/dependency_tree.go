package gateways

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"aegis/internal/config"
	"aegis/internal/domain/entities"
	"aegis/internal/external-adapters/maven"
)

// MavenDependencyTree lists the project's dependencies by invoking the
// build tool's tree goal against the manifest and scraping its console
// output.
type MavenDependencyTree struct {
	cfg    config.Config
	runner Runner
	log    *zap.Logger
}

// NewMavenDependencyTree creates the dependency-source adapter.
func NewMavenDependencyTree(cfg config.Config, runner Runner, log *zap.Logger) *MavenDependencyTree {
	return &MavenDependencyTree{cfg: cfg, runner: runner, log: log}
}

// ProjectTree implements gateways.DependencySource.
func (d *MavenDependencyTree) ProjectTree(ctx context.Context) (entities.DependencyTree, error) {
	return d.tree(ctx, nil)
}

// ArtifactTree implements gateways.DependencySource, filtering the tree
// to one group:artifact coordinate.
func (d *MavenDependencyTree) ArtifactTree(ctx context.Context, groupID, artifactID string) (entities.DependencyTree, error) {
	include := groupID + ":" + artifactID
	return d.tree(ctx, []string{"-Dincludes=" + include})
}

func (d *MavenDependencyTree) tree(ctx context.Context, extraArgs []string) (entities.DependencyTree, error) {
	pomPath := filepath.Join(d.cfg.Workspace, "pom.xml")
	if _, err := os.Stat(pomPath); err != nil {
		return entities.DependencyTree{}, fmt.Errorf("manifest not found at %s: %w", pomPath, err)
	}

	args := append([]string{"dependency:tree", "-f", pomPath}, extraArgs...)
	d.log.Info("fetching dependency tree", zap.Strings("args", args))

	result, err := d.runner.Run(ctx, CommandSpec{
		Name:    d.cfg.Build.Command,
		Args:    args,
		Dir:     d.cfg.Workspace,
		Timeout: time.Duration(d.cfg.Build.TimeoutMinutes) * time.Minute,
	})
	if err != nil {
		return entities.DependencyTree{}, err
	}
	if !result.Succeeded {
		return entities.DependencyTree{}, fmt.Errorf("%w: dependency listing exited with code %d: %s",
			entities.ErrToolExecution, result.ExitCode, result.Stderr)
	}

	tree := maven.ParseTree(result.Stdout)
	if !tree.Parsed {
		d.log.Warn("dependency tree output carried no recognizable markers")
	}
	return tree, nil
}
