package association

import (
	"strings"

	"github.com/helix-bio/graphdex/internal/solr"
	"github.com/helix-bio/graphdex/pkg/model"
)

// tableQueryFields ranks free-text table matches by the labels a reader
// actually sees in the rendered rows.
const tableQueryFields = "subject^2 subject_label^5 subject_closure_label object^2 object_label^5 object_closure_label predicate^3 publications"

// buildAssociationQuery translates the typed filter set into select form.
// Without Direct, subject/object/entity land on the closure fields, so
// transitively subsumed edges match too.
func buildAssociationQuery(p model.AssociationQuery) *solr.Query {
	q := solr.NewQuery()
	q.Rows = p.Limit
	q.Start = p.Offset

	subjectField, objectField := "subject_closure", "object_closure"
	if p.Direct {
		subjectField, objectField = "subject", "object"
	}

	q.AddFieldFilterQuery("category", p.Category...)
	q.AddFieldFilterQuery("predicate", p.Predicate...)
	q.AddFieldFilterQuery(subjectField, p.Subject...)
	q.AddFieldFilterQuery(objectField, p.Object...)
	if p.SubjectClosure != "" {
		q.AddFieldFilterQuery("subject_closure", p.SubjectClosure)
	}
	if p.ObjectClosure != "" {
		q.AddFieldFilterQuery("object_closure", p.ObjectClosure)
	}
	if len(p.Entity) > 0 {
		q.AddFilterQuery(entityClause(p.Direct, p.Entity...))
	}
	return q
}

// entityClause matches an entity on either side of an association.
func entityClause(direct bool, entities ...string) string {
	fields := []string{"subject", "subject_closure", "object", "object_closure"}
	if direct {
		fields = []string{"subject", "object"}
	}

	clauses := make([]string, 0, len(entities)*len(fields))
	for _, e := range entities {
		for _, f := range fields {
			clauses = append(clauses, solr.FieldClause(f, e))
		}
	}
	return strings.Join(clauses, " OR ")
}

// buildCountsQuery pairs every reference category with the entity's subject
// and object sides. Symmetric categories count the subject side only so an
// edge between two peers is never counted twice.
func buildCountsQuery(entityID string) *solr.Query {
	q := solr.NewQuery()
	q.Rows = 0
	q.AddFilterQuery(entityClause(false, entityID))

	for _, info := range model.AssociationCategories() {
		q.FacetQueries = append(q.FacetQueries, countFacetQuery(info.Category, "subject", entityID))
		if !info.Symmetric {
			q.FacetQueries = append(q.FacetQueries, countFacetQuery(info.Category, "object", entityID))
		}
	}
	return q
}

// countFacetQuery builds one per-category facet query for the "subject" or
// "object" side. The parser looks counts up by this exact string.
func countFacetQuery(category model.AssociationCategory, side, entityID string) string {
	return "(" + solr.FieldClause("category", string(category)) + ") AND (" +
		solr.FieldClause(side, entityID) + " OR " + solr.FieldClause(side+"_closure", entityID) + ")"
}

// buildHistoPhenoQuery requests one facet count per phenotype system for
// everything under the given subject closure. Count-only, rows stays 0.
func buildHistoPhenoQuery(subjectClosure string) *solr.Query {
	q := solr.NewQuery()
	q.Rows = 0
	q.AddFieldFilterQuery("subject_closure", subjectClosure)

	for _, sys := range model.PhenotypeSystems() {
		q.FacetQueries = append(q.FacetQueries, histoPhenoFacetQuery(sys.ID))
	}
	return q
}

func histoPhenoFacetQuery(termID string) string {
	return solr.FieldClause("object_closure", termID)
}

// buildTableQuery scopes a free-text, sortable page to one anchor entity and
// one category.
func buildTableQuery(p model.AssociationTableQuery) *solr.Query {
	q := solr.NewQuery()
	q.Rows = p.Limit
	q.Start = p.Offset
	if p.Q != "" {
		q.Q = p.Q
		q.QueryFields = tableQueryFields
	}
	q.Sort = p.Sort

	q.AddFieldFilterQuery("category", string(p.Category))
	q.AddFilterQuery(entityClause(false, p.Entity))
	return q
}
