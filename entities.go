package graphdex

import (
	"context"

	entityuc "github.com/helix-bio/graphdex/internal/usecase/entity"
	"github.com/helix-bio/graphdex/pkg/model"
)

// EntityService reads entities from the knowledge graph.
type EntityService struct {
	svc *entityuc.Service
}

// Get fetches one entity by id. With extra set, the node comes back with
// hierarchy, inheritance, association counts, and external links resolved;
// without it, only the stored document fields are populated.
func (s *EntityService) Get(ctx context.Context, id string, extra bool) (*model.Node, error) {
	return s.svc.Get(ctx, id, extra)
}
