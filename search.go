package graphdex

import (
	"context"

	searchuc "github.com/helix-bio/graphdex/internal/usecase/search"
	"github.com/helix-bio/graphdex/pkg/model"
)

// SearchService runs full-text queries over the entity index.
type SearchService struct {
	svc *searchuc.Service
}

// Query runs a full-text search. An empty query term matches everything,
// which browsing by category or facet alone relies on.
func (s *SearchService) Query(ctx context.Context, p model.SearchParams) (*model.SearchResults, error) {
	return s.svc.Search(ctx, p)
}

// Autocomplete suggests entities for a typed prefix over a fixed page.
func (s *SearchService) Autocomplete(ctx context.Context, text string) (*model.SearchResults, error) {
	return s.svc.Autocomplete(ctx, text)
}

// MappingService pages cross-vocabulary identifier mappings.
type MappingService struct {
	svc *searchuc.Service
}

// List returns the mappings whose subject or object is one of the given
// entities.
func (s *MappingService) List(ctx context.Context, entityIDs []string, offset, limit int) (*model.MappingResults, error) {
	return s.svc.Mappings(ctx, entityIDs, offset, limit)
}
