package gateways

import (
	"context"

	"aegis/internal/domain/entities"
)

// DependencySource produces the project's dependency listing, optionally
// filtered to one artifact coordinate.
type DependencySource interface {
	ProjectTree(ctx context.Context) (entities.DependencyTree, error)
	ArtifactTree(ctx context.Context, groupID, artifactID string) (entities.DependencyTree, error)
}
