package entity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/helix-bio/graphdex/pkg/model"
)

// expansionPageSize bounds every follow-up query expansion issues. Hierarchy
// neighborhoods and inheritance sets are small; one page covers them.
const expansionPageSize = 20

// Service assembles entity views, optionally expanded with inheritance, class
// hierarchy, association counts, and resolved identifier links.
type Service struct {
	repo   Repository
	assocs AssociationReader
	links  LinkResolver
	log    *zap.Logger
}

// New creates an entity service.
func New(repo Repository, assocs AssociationReader, links LinkResolver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, assocs: assocs, links: links, log: log}
}

// Get fetches one entity. Without extra the node carries the bare entity and
// nothing else. With extra it runs the expansion pipeline; any failed step
// fails the whole call, a partially expanded node is never returned.
func (s *Service) Get(ctx context.Context, id string, extra bool) (*model.Node, error) {
	base, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	node := &model.Node{Entity: *base}
	if !extra {
		return node, nil
	}

	inheritance, err := s.resolveInheritance(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", id, err)
	}
	node.Inheritance = inheritance

	hierarchy, err := s.buildHierarchy(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", id, err)
	}
	node.NodeHierarchy = hierarchy

	counts, err := s.assocs.Counts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", id, err)
	}
	node.AssociationCounts = counts.Items

	node.ExternalLinks = s.links.ExpandAll(base.Xref)
	node.ProvidedByLink = s.links.SourceLink(base.ProvidedBy)
	return node, nil
}

// resolveInheritance looks up the mode of inheritance for diseases. Exactly
// one direct match sets it; zero or several leave it unset, because ambiguous
// inheritance data is treated as absent rather than guessed at.
func (s *Service) resolveInheritance(ctx context.Context, e *model.Entity) (*model.Entity, error) {
	if !e.HasCategory(model.CategoryDisease) {
		return nil, nil
	}

	results, err := s.assocs.List(ctx, model.AssociationQuery{
		Subject:   []string{e.ID},
		Predicate: []string{model.PredicateHasModeOfInheritance},
		Direct:    true,
		Limit:     expansionPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("inheritance: %w", err)
	}
	if len(results.Items) != 1 {
		if len(results.Items) > 1 {
			s.log.Debug("ambiguous inheritance left unset",
				zap.String("entity", e.ID), zap.Int("matches", len(results.Items)))
		}
		return nil, nil
	}

	other, err := results.Items[0].OtherEntity(e.ID)
	if err != nil {
		return nil, fmt.Errorf("inheritance: %w", err)
	}
	return &other, nil
}

// buildHierarchy collects the direct class neighborhood from three
// predicate-filtered queries: the entity as subclass subject (supers), on
// either side of same_as (equivalents), and as subclass object (subs).
func (s *Service) buildHierarchy(ctx context.Context, id string) (*model.NodeHierarchy, error) {
	supers, err := s.associatedEntities(ctx, id, model.AssociationQuery{
		Subject:   []string{id},
		Predicate: []string{model.PredicateSubClassOf},
		Direct:    true,
		Limit:     expansionPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("super classes: %w", err)
	}

	equivalents, err := s.associatedEntities(ctx, id, model.AssociationQuery{
		Entity:    []string{id},
		Predicate: []string{model.PredicateSameAs},
		Direct:    true,
		Limit:     expansionPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("equivalent classes: %w", err)
	}

	subs, err := s.associatedEntities(ctx, id, model.AssociationQuery{
		Object:    []string{id},
		Predicate: []string{model.PredicateSubClassOf},
		Direct:    true,
		Limit:     expansionPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("sub classes: %w", err)
	}

	return &model.NodeHierarchy{
		SuperClasses:      supers,
		EquivalentClasses: equivalents,
		SubClasses:        subs,
	}, nil
}

// associatedEntities resolves the far side of every matched association
// against the anchor, in backend order.
func (s *Service) associatedEntities(ctx context.Context, anchorID string, q model.AssociationQuery) ([]model.Entity, error) {
	results, err := s.assocs.List(ctx, q)
	if err != nil {
		return nil, err
	}

	entities := make([]model.Entity, 0, len(results.Items))
	for _, assoc := range results.Items {
		other, err := assoc.OtherEntity(anchorID)
		if err != nil {
			return nil, err
		}
		entities = append(entities, other)
	}
	return entities, nil
}
