package association

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/helix-bio/graphdex/internal/solr"
	"github.com/helix-bio/graphdex/pkg/model"
)

// store is the consumer interface for association-core reads (ISP).
type store interface {
	Query(ctx context.Context, core string, q *solr.Query) (*solr.QueryResult, error)
}

// curies resolves identifiers and provenance tags to browsable links.
type curies interface {
	ExpandAll(curies []string) []model.ExpandedCurie
	SourceLink(providedBy string) *model.ExpandedCurie
}

// Repo implements association retrieval and aggregation over the association
// core.
type Repo struct {
	store  store
	curies curies
}

// New creates an association repository.
func New(s store, c curies) *Repo {
	return &Repo{store: s, curies: c}
}

// List pages through associations matching the filter set.
func (r *Repo) List(ctx context.Context, p model.AssociationQuery) (*model.AssociationResults, error) {
	q := buildAssociationQuery(p)

	res, err := r.store.Query(ctx, solr.CoreAssociation, q)
	if err != nil {
		return nil, fmt.Errorf("list associations: %w", err)
	}
	items, err := r.parseAssociationDocs(res.Response.Docs)
	if err != nil {
		return nil, err
	}

	return &model.AssociationResults{
		Results: model.Results{
			Limit:  p.Limit,
			Offset: res.Response.Start,
			Total:  res.Response.NumFound,
		},
		Items: items,
	}, nil
}

// Counts aggregates an entity's associations per reference category. The
// result covers the whole reference enumeration, zero-filled, in reference
// order.
func (r *Repo) Counts(ctx context.Context, entityID string) (*model.AssociationCountList, error) {
	q := buildCountsQuery(entityID)

	res, err := r.store.Query(ctx, solr.CoreAssociation, q)
	if err != nil {
		return nil, fmt.Errorf("association counts %s: %w", entityID, err)
	}
	return parseCounts(res, entityID), nil
}

// Facets runs a count-only query returning facet aggregations for the filter
// set. No documents are fetched.
func (r *Repo) Facets(ctx context.Context, p model.AssociationQuery, facetFields, facetQueries []string) (*model.SearchResults, error) {
	q := buildAssociationQuery(p)
	q.Rows = 0
	q.Start = 0
	q.FacetFields = facetFields
	q.FacetQueries = facetQueries

	res, err := r.store.Query(ctx, solr.CoreAssociation, q)
	if err != nil {
		return nil, fmt.Errorf("association facets: %w", err)
	}
	fields, err := solr.ConvertFacetFields(res.FacetCounts.FacetFields)
	if err != nil {
		return nil, fmt.Errorf("convert facets: %w", err)
	}

	return &model.SearchResults{
		Results:      model.Results{Total: res.Response.NumFound},
		Items:        []model.SearchResult{},
		FacetFields:  fields,
		FacetQueries: res.FacetCounts.FacetQueries,
	}, nil
}

// Table pages the per-entity association table. The anchor entity and the
// requested window are stamped onto the result, and every row is oriented
// against the anchor. A row that references the anchor on neither side fails
// the whole page.
func (r *Repo) Table(ctx context.Context, p model.AssociationTableQuery) (*model.AssociationTableResults, error) {
	q := buildTableQuery(p)

	res, err := r.store.Query(ctx, solr.CoreAssociation, q)
	if err != nil {
		return nil, fmt.Errorf("association table %s: %w", p.Entity, err)
	}
	assocs, err := r.parseAssociationDocs(res.Response.Docs)
	if err != nil {
		return nil, err
	}

	items := make([]model.DirectionalAssociation, 0, len(assocs))
	for _, assoc := range assocs {
		dir, err := assoc.DirectionFor(p.Entity)
		if err != nil {
			return nil, fmt.Errorf("association table %s: %w", p.Entity, err)
		}
		items = append(items, model.DirectionalAssociation{Association: assoc, Direction: dir})
	}

	return &model.AssociationTableResults{
		Results: model.Results{
			Limit:  p.Limit,
			Offset: p.Offset,
			Total:  res.Response.NumFound,
		},
		Entity:   p.Entity,
		Category: p.Category,
		Items:    items,
	}, nil
}

// HistoPheno buckets everything under a subject closure into the fixed
// phenotype systems, ordered by descending count.
func (r *Repo) HistoPheno(ctx context.Context, subjectClosure string) (*model.HistoPheno, error) {
	q := buildHistoPhenoQuery(subjectClosure)

	res, err := r.store.Query(ctx, solr.CoreAssociation, q)
	if err != nil {
		return nil, fmt.Errorf("histopheno %s: %w", subjectClosure, err)
	}
	return parseHistoPheno(res, subjectClosure), nil
}

// parseAssociationDocs decodes association documents in order, attaching
// resolved links for provenance, publications, and evidence.
func (r *Repo) parseAssociationDocs(docs []json.RawMessage) ([]model.Association, error) {
	items := make([]model.Association, 0, len(docs))
	for _, doc := range docs {
		var a model.Association
		if err := json.Unmarshal(doc, &a); err != nil {
			return nil, fmt.Errorf("decode association document: %w", err)
		}
		if err := requireAssociationFields(&a); err != nil {
			return nil, err
		}

		a.ProvidedByLink = r.curies.SourceLink(a.ProvidedBy)
		a.PublicationsLinks = r.curies.ExpandAll(a.Publications)
		a.HasEvidenceLinks = r.curies.ExpandAll(a.HasEvidence)
		items = append(items, a)
	}
	return items, nil
}

// requireAssociationFields enforces the spine of an edge. Anything else
// missing is tolerable; a missing id, subject, predicate, or object is schema
// drift and fails hard.
func requireAssociationFields(a *model.Association) error {
	switch {
	case a.ID == "":
		return model.NewMissingField("", "id")
	case a.Subject == "":
		return model.NewMissingField(a.ID, "subject")
	case a.Predicate == "":
		return model.NewMissingField(a.ID, "predicate")
	case a.Object == "":
		return model.NewMissingField(a.ID, "object")
	}
	return nil
}

func parseCounts(res *solr.QueryResult, entityID string) *model.AssociationCountList {
	categories := model.AssociationCategories()
	counts := res.FacetCounts.FacetQueries

	items := make([]model.AssociationCount, 0, len(categories))
	for _, info := range categories {
		total := counts[countFacetQuery(info.Category, "subject", entityID)]
		if !info.Symmetric {
			total += counts[countFacetQuery(info.Category, "object", entityID)]
		}
		items = append(items, model.AssociationCount{
			Category: info.Category,
			Label:    info.Label,
			Count:    total,
		})
	}
	return &model.AssociationCountList{Items: items}
}

// parseHistoPheno walks the fixed phenotype-system table, zero-filling bins
// the backend reported nothing for. The sort is stable so equal counts keep
// table order.
func parseHistoPheno(res *solr.QueryResult, subjectClosure string) *model.HistoPheno {
	systems := model.PhenotypeSystems()

	items := make([]model.HistoPhenoBin, 0, len(systems))
	for _, sys := range systems {
		items = append(items, model.HistoPhenoBin{
			ID:    sys.ID,
			Label: sys.Label,
			Count: res.FacetCounts.FacetQueries[histoPhenoFacetQuery(sys.ID)],
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })

	return &model.HistoPheno{ID: subjectClosure, Items: items}
}
