package association

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/helix-bio/graphdex/pkg/model"
)

// Paging bounds. A zero limit means the caller wants the default page; limits
// past the maximum are rejected rather than silently clamped.
const (
	defaultLimit = 20
	maxLimit     = 500
)

// Service validates and defaults association requests before handing them to
// the repository.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// New creates an association service.
func New(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// List pages through associations matching the filter set.
func (s *Service) List(ctx context.Context, p model.AssociationQuery) (*model.AssociationResults, error) {
	var err error
	if p.Offset, p.Limit, err = normalizeWindow(p.Offset, p.Limit); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, p)
}

// Counts aggregates an entity's associations per reference category.
func (s *Service) Counts(ctx context.Context, entityID string) (*model.AssociationCountList, error) {
	if entityID == "" {
		return nil, fmt.Errorf("%w: entity id is empty", model.ErrInvalidParam)
	}
	return s.repo.Counts(ctx, entityID)
}

// Facets runs a count-only facet aggregation over the filter set.
func (s *Service) Facets(ctx context.Context, p model.AssociationQuery, facetFields, facetQueries []string) (*model.SearchResults, error) {
	if p.Offset < 0 {
		return nil, fmt.Errorf("%w: offset %d is negative", model.ErrInvalidParam, p.Offset)
	}
	return s.repo.Facets(ctx, p, facetFields, facetQueries)
}

// Table pages one entity's association table within a reference category.
func (s *Service) Table(ctx context.Context, p model.AssociationTableQuery) (*model.AssociationTableResults, error) {
	if p.Entity == "" {
		return nil, fmt.Errorf("%w: entity id is empty", model.ErrInvalidParam)
	}
	if !p.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown association category %q", model.ErrInvalidParam, p.Category)
	}

	var err error
	if p.Offset, p.Limit, err = normalizeWindow(p.Offset, p.Limit); err != nil {
		return nil, err
	}
	return s.repo.Table(ctx, p)
}

// HistoPheno buckets phenotype associations under a subject closure into the
// fixed phenotype systems.
func (s *Service) HistoPheno(ctx context.Context, subjectClosure string) (*model.HistoPheno, error) {
	if subjectClosure == "" {
		return nil, fmt.Errorf("%w: subject closure id is empty", model.ErrInvalidParam)
	}
	return s.repo.HistoPheno(ctx, subjectClosure)
}

func normalizeWindow(offset, limit int) (int, int, error) {
	if offset < 0 {
		return 0, 0, fmt.Errorf("%w: offset %d is negative", model.ErrInvalidParam, offset)
	}
	switch {
	case limit < 0:
		return 0, 0, fmt.Errorf("%w: limit %d is negative", model.ErrInvalidParam, limit)
	case limit == 0:
		limit = defaultLimit
	case limit > maxLimit:
		return 0, 0, fmt.Errorf("%w: limit %d exceeds the maximum %d", model.ErrInvalidParam, limit, maxLimit)
	}
	return offset, limit, nil
}
