package gateways

import (
	"context"

	"aegis/internal/domain/entities"
)

// AnalysisServer runs the static-analysis scan and collects the merged
// quality metrics: defect counts from the server's measures API plus the
// locally parsed coverage figure. A failed remote query is fatal; a
// missing coverage report degrades to 0% with a warning.
type AnalysisServer interface {
	CollectMetrics(ctx context.Context) (*entities.QualityMetrics, error)
}
