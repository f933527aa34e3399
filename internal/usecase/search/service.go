package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/helix-bio/graphdex/pkg/model"
)

// Paging bounds, matching the association service. Zero limit picks the
// default page; limits past the maximum are rejected.
const (
	defaultLimit = 20
	maxLimit     = 500
)

// Service validates and defaults search and mapping requests before handing
// them to the repositories.
type Service struct {
	repo     Repository
	mappings MappingReader
	log      *zap.Logger
}

// New creates a search service.
func New(repo Repository, mappings MappingReader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, mappings: mappings, log: log}
}

// Search runs a full-text entity query. An empty query term matches
// everything, which browsing by facet or filter alone relies on.
func (s *Service) Search(ctx context.Context, p model.SearchParams) (*model.SearchResults, error) {
	var err error
	if p.Offset, p.Limit, err = normalizeWindow(p.Offset, p.Limit); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Q) == "" {
		p.Q = "*:*"
	}
	return s.repo.Search(ctx, p)
}

// Autocomplete runs a prefix-weighted entity query over a fixed page.
func (s *Service) Autocomplete(ctx context.Context, text string) (*model.SearchResults, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: autocomplete text is empty", model.ErrInvalidParam)
	}
	return s.repo.Autocomplete(ctx, text)
}

// Mappings pages cross-vocabulary mappings for one or more entities.
func (s *Service) Mappings(ctx context.Context, entityIDs []string, offset, limit int) (*model.MappingResults, error) {
	if len(entityIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one entity id is required", model.ErrInvalidParam)
	}
	var err error
	if offset, limit, err = normalizeWindow(offset, limit); err != nil {
		return nil, err
	}
	return s.mappings.List(ctx, entityIDs, offset, limit)
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
