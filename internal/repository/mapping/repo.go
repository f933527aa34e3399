package mapping

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/helix-bio/graphdex/internal/solr"
	"github.com/helix-bio/graphdex/pkg/model"
)

// store is the consumer interface for sssom-core reads (ISP).
type store interface {
	Query(ctx context.Context, core string, q *solr.Query) (*solr.QueryResult, error)
}

// Repo implements cross-vocabulary mapping lookup over the sssom core.
type Repo struct {
	store store
}

// New creates a mapping repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List pages through mappings touching any of the given entities, on either
// side of the mapping.
func (r *Repo) List(ctx context.Context, entityIDs []string, offset, limit int) (*model.MappingResults, error) {
	q := buildMappingsQuery(entityIDs, offset, limit)

	res, err := r.store.Query(ctx, solr.CoreSSSOM, q)
	if err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}
	items, err := parseMappingDocs(res.Response.Docs)
	if err != nil {
		return nil, err
	}

	return &model.MappingResults{
		Results: model.Results{
			Limit:  limit,
			Offset: res.Response.Start,
			Total:  res.Response.NumFound,
		},
		Items: items,
	}, nil
}

func buildMappingsQuery(entityIDs []string, offset, limit int) *solr.Query {
	q := solr.NewQuery()
	q.Rows = limit
	q.Start = offset
	q.Facet = false

	if len(entityIDs) > 0 {
		clauses := make([]string, 0, len(entityIDs)*2)
		for _, id := range entityIDs {
			clauses = append(clauses,
				solr.FieldClause("subject_id", id),
				solr.FieldClause("object_id", id))
		}
		q.AddFilterQuery(strings.Join(clauses, " OR "))
	}
	return q
}

// parseMappingDocs decodes mapping documents in order. A mapping without its
// SSSOM spine is schema drift and fails hard.
func parseMappingDocs(docs []json.RawMessage) ([]model.Mapping, error) {
	items := make([]model.Mapping, 0, len(docs))
	for _, doc := range docs {
		var m model.Mapping
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("decode mapping document: %w", err)
		}
		switch {
		case m.ID == "":
			return nil, model.NewMissingField("", "id")
		case m.SubjectID == "":
			return nil, model.NewMissingField(m.ID, "subject_id")
		case m.PredicateID == "":
			return nil, model.NewMissingField(m.ID, "predicate_id")
		case m.ObjectID == "":
			return nil, model.NewMissingField(m.ID, "object_id")
		}
		items = append(items, m)
	}
	return items, nil
}
