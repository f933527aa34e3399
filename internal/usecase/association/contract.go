package association

import (
	"context"

	"github.com/helix-bio/graphdex/pkg/model"
)

// Repository defines the storage contract for association operations.
type Repository interface {
	List(ctx context.Context, p model.AssociationQuery) (*model.AssociationResults, error)
	Counts(ctx context.Context, entityID string) (*model.AssociationCountList, error)
	Facets(ctx context.Context, p model.AssociationQuery, facetFields, facetQueries []string) (*model.SearchResults, error)
	Table(ctx context.Context, p model.AssociationTableQuery) (*model.AssociationTableResults, error)
	HistoPheno(ctx context.Context, subjectClosure string) (*model.HistoPheno, error)
}
