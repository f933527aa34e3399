package entity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/helix-bio/graphdex/internal/solr"
	"github.com/helix-bio/graphdex/pkg/model"
)

// Ranking profiles for the two text modes. Search weighs exact over stemmed
// matches; autocomplete weighs the edge-ngram analyzed fields so prefixes
// rank. Both downrank deprecated entities hard.
const (
	searchQueryFields       = "id^100 name^10 name_t^5 symbol^10 symbol_t^5 synonym^3 synonym_t description_t"
	autocompleteQueryFields = "id^100 name_ac^10 symbol_ac^8 synonym_ac^5"
	deprecatedBoost         = "if(termfreq(deprecated,'true'),0.01,1)"
)

// autocompleteRows is the fixed page size for autocomplete; the operation
// takes no pagination.
const autocompleteRows = 10

// store is the consumer interface for entity-core reads (ISP).
type store interface {
	Get(ctx context.Context, core, id string) (json.RawMessage, error)
	Query(ctx context.Context, core string, q *solr.Query) (*solr.QueryResult, error)
}

// Repo implements entity lookup and full-text search over the entity core.
type Repo struct {
	store store
}

// New creates an entity repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Get fetches one entity by exact id.
func (r *Repo) Get(ctx context.Context, id string) (*model.Entity, error) {
	doc, err := r.store.Get(ctx, solr.CoreEntity, id)
	if err != nil {
		return nil, fmt.Errorf("get entity %s: %w", id, err)
	}
	return parseEntityDoc(doc)
}

// Search runs a full-text query over the entity core.
func (r *Repo) Search(ctx context.Context, p model.SearchParams) (*model.SearchResults, error) {
	q := buildSearchQuery(p)

	res, err := r.store.Query(ctx, solr.CoreEntity, q)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", p.Q, err)
	}
	return parseSearchResults(res, p.Limit)
}

// Autocomplete runs a prefix-weighted query with a fixed page of ten.
func (r *Repo) Autocomplete(ctx context.Context, text string) (*model.SearchResults, error) {
	q := buildAutocompleteQuery(text)

	res, err := r.store.Query(ctx, solr.CoreEntity, q)
	if err != nil {
		return nil, fmt.Errorf("autocomplete %q: %w", text, err)
	}
	return parseSearchResults(res, q.Rows)
}

func buildSearchQuery(p model.SearchParams) *solr.Query {
	q := solr.NewQuery()
	q.Q = p.Q
	q.Rows = p.Limit
	q.Start = p.Offset
	q.QueryFields = searchQueryFields
	q.Boost = deprecatedBoost
	q.Sort = p.Sort

	q.AddFieldFilterQuery("category", p.Category...)
	q.AddFieldFilterQuery("in_taxon", p.InTaxon...)
	for _, fq := range p.FilterQueries {
		q.AddFilterQuery(fq)
	}
	q.FacetFields = p.FacetFields
	q.FacetQueries = p.FacetQueries
	return q
}

func buildAutocompleteQuery(text string) *solr.Query {
	q := solr.NewQuery()
	q.Q = text
	q.Rows = autocompleteRows
	q.QueryFields = autocompleteQueryFields
	q.Boost = deprecatedBoost
	return q
}

// parseEntityDoc decodes one entity document. Unknown backend fields fall
// away; a missing id is schema drift and fails hard.
func parseEntityDoc(doc json.RawMessage) (*model.Entity, error) {
	var e model.Entity
	if err := json.Unmarshal(doc, &e); err != nil {
		return nil, fmt.Errorf("decode entity document: %w", err)
	}
	if e.ID == "" {
		return nil, model.NewMissingField("", "id")
	}
	return &e, nil
}

// parseSearchResults converts a select response into SearchResults. Document
// order and facet order come through untouched; the page window is reported
// as the backend returned it.
func parseSearchResults(res *solr.QueryResult, limit int) (*model.SearchResults, error) {
	items := make([]model.SearchResult, 0, len(res.Response.Docs))
	for _, doc := range res.Response.Docs {
		var item model.SearchResult
		if err := json.Unmarshal(doc, &item); err != nil {
			return nil, fmt.Errorf("decode search document: %w", err)
		}
		if item.ID == "" {
			return nil, model.NewMissingField("", "id")
		}
		items = append(items, item)
	}

	facetFields, err := solr.ConvertFacetFields(res.FacetCounts.FacetFields)
	if err != nil {
		return nil, fmt.Errorf("convert facets: %w", err)
	}

	return &model.SearchResults{
		Results: model.Results{
			Limit:  limit,
			Offset: res.Response.Start,
			Total:  res.Response.NumFound,
		},
		Items:        items,
		FacetFields:  facetFields,
		FacetQueries: res.FacetCounts.FacetQueries,
	}, nil
}
