package graphdex

import (
	"context"

	associationuc "github.com/helix-bio/graphdex/internal/usecase/association"
	"github.com/helix-bio/graphdex/pkg/model"
)

// AssociationQueryBuilder assembles an association query fluently. Every
// filter takes one or more values; a single value and a singleton list
// build the same query.
type AssociationQueryBuilder struct {
	svc *associationuc.Service
	p   model.AssociationQuery
}

// Category filters by association category.
func (b *AssociationQueryBuilder) Category(categories ...string) *AssociationQueryBuilder {
	b.p.Category = append(b.p.Category, categories...)
	return b
}

// Predicate filters by predicate.
func (b *AssociationQueryBuilder) Predicate(predicates ...string) *AssociationQueryBuilder {
	b.p.Predicate = append(b.p.Predicate, predicates...)
	return b
}

// Subject filters by the subject side.
func (b *AssociationQueryBuilder) Subject(subjects ...string) *AssociationQueryBuilder {
	b.p.Subject = append(b.p.Subject, subjects...)
	return b
}

// Object filters by the object side.
func (b *AssociationQueryBuilder) Object(objects ...string) *AssociationQueryBuilder {
	b.p.Object = append(b.p.Object, objects...)
	return b
}

// Entity filters by either side.
func (b *AssociationQueryBuilder) Entity(entities ...string) *AssociationQueryBuilder {
	b.p.Entity = append(b.p.Entity, entities...)
	return b
}

// SubjectClosure restricts to associations whose subject closure contains id.
func (b *AssociationQueryBuilder) SubjectClosure(id string) *AssociationQueryBuilder {
	b.p.SubjectClosure = id
	return b
}

// ObjectClosure restricts to associations whose object closure contains id.
func (b *AssociationQueryBuilder) ObjectClosure(id string) *AssociationQueryBuilder {
	b.p.ObjectClosure = id
	return b
}

// Direct matches subject and object exactly instead of through their
// closures.
func (b *AssociationQueryBuilder) Direct() *AssociationQueryBuilder {
	b.p.Direct = true
	return b
}

// Offset sets the start of the result window.
func (b *AssociationQueryBuilder) Offset(n int) *AssociationQueryBuilder {
	b.p.Offset = n
	return b
}

// Limit sets the size of the result window.
func (b *AssociationQueryBuilder) Limit(n int) *AssociationQueryBuilder {
	b.p.Limit = n
	return b
}

// Do executes the query.
func (b *AssociationQueryBuilder) Do(ctx context.Context) (*model.AssociationResults, error) {
	return b.svc.List(ctx, b.p)
}
