package entity

import (
	"context"

	"github.com/helix-bio/graphdex/pkg/model"
)

// Repository defines the storage contract for entity lookup.
type Repository interface {
	Get(ctx context.Context, id string) (*model.Entity, error)
}

// AssociationReader runs the follow-up association queries expansion needs.
type AssociationReader interface {
	List(ctx context.Context, p model.AssociationQuery) (*model.AssociationResults, error)
	Counts(ctx context.Context, entityID string) (*model.AssociationCountList, error)
}

// LinkResolver expands identifiers and provenance tags to browsable links.
type LinkResolver interface {
	ExpandAll(curies []string) []model.ExpandedCurie
	SourceLink(providedBy string) *model.ExpandedCurie
}
