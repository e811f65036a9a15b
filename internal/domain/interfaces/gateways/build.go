// Package gateways defines the interfaces the core depends on for every
// external collaborator: build tool, scanner, analysis server, dependency
// source, version control, and the remediation advisor.
//
//nolint:revive // Package name mirrors the adapter layer it abstracts
package gateways

import (
	"context"

	"aegis/internal/domain/entities"
)

// BuildTool runs the project build and persists its log.
// Success means exit code 0; the captured output is written verbatim to
// the build log regardless of outcome.
type BuildTool interface {
	Build(ctx context.Context) (*entities.ToolInvocationResult, error)
}
