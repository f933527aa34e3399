package graphdex

import (
	"context"

	associationuc "github.com/helix-bio/graphdex/internal/usecase/association"
	"github.com/helix-bio/graphdex/pkg/model"
)

// AssociationService queries the typed edges of the knowledge graph.
type AssociationService struct {
	svc *associationuc.Service
}

// Query starts a fluent association query.
func (s *AssociationService) Query() *AssociationQueryBuilder {
	return &AssociationQueryBuilder{svc: s.svc}
}

// List runs an association query assembled by hand.
func (s *AssociationService) List(ctx context.Context, p model.AssociationQuery) (*model.AssociationResults, error) {
	return s.svc.List(ctx, p)
}

// Counts totals an entity's associations over the reference categories.
func (s *AssociationService) Counts(ctx context.Context, entityID string) (*model.AssociationCountList, error) {
	return s.svc.Counts(ctx, entityID)
}

// Facets runs a count-only facet aggregation over the association index,
// scoped by the same filters List takes.
func (s *AssociationService) Facets(
	ctx context.Context,
	p model.AssociationQuery,
	facetFields, facetQueries []string,
) (*model.SearchResults, error) {
	return s.svc.Facets(ctx, p, facetFields, facetQueries)
}

// Table pages one entity's associations in one category, each row oriented
// relative to that entity.
func (s *AssociationService) Table(ctx context.Context, p model.AssociationTableQuery) (*model.AssociationTableResults, error) {
	return s.svc.Table(ctx, p)
}

// HistoPheno aggregates phenotype associations below a subject into the
// fixed phenotype-system bins.
func (s *AssociationService) HistoPheno(ctx context.Context, subjectClosure string) (*model.HistoPheno, error) {
	return s.svc.HistoPheno(ctx, subjectClosure)
}
