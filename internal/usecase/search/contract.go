package search

import (
	"context"

	"github.com/helix-bio/graphdex/pkg/model"
)

// Repository defines the storage contract for full-text search.
type Repository interface {
	Search(ctx context.Context, p model.SearchParams) (*model.SearchResults, error)
	Autocomplete(ctx context.Context, text string) (*model.SearchResults, error)
}

// MappingReader pages cross-vocabulary identifier mappings.
type MappingReader interface {
	List(ctx context.Context, entityIDs []string, offset, limit int) (*model.MappingResults, error)
}
