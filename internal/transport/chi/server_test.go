package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/helix-bio/graphdex/pkg/model"
)

func decodeError(t *testing.T, body *json.Decoder) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := body.Decode(&er); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return er
}

func TestEntity_HappyPath(t *testing.T) {
	srv, backend := newTestServer(t)
	backend.entities.getFn = func(_ context.Context, id string) (*model.Entity, error) {
		return &model.Entity{ID: id, Name: "Marfan syndrome", Category: []string{string(model.CategoryDisease)}}, nil
	}

	rec := serveRequest(t, srv, "/v1/entity/MONDO:0007947")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var node model.Node
	if err := json.NewDecoder(rec.Body).Decode(&node); err != nil {
		t.Fatalf("decode node: %v", err)
	}
	if node.ID != "MONDO:0007947" || node.Name != "Marfan syndrome" {
		t.Errorf("unexpected node: %+v", node)
	}
}

func TestEntity_NotFound(t *testing.T) {
	srv, backend := newTestServer(t)
	backend.entities.getFn = func(_ context.Context, id string) (*model.Entity, error) {
		return nil, fmt.Errorf("get entity %s: %w", id, model.ErrNotFound)
	}

	rec := serveRequest(t, srv, "/v1/entity/MONDO:9999999")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if er := decodeError(t, json.NewDecoder(rec.Body)); er.Code != codeNotFound {
		t.Errorf("expected code %q, got %q", codeNotFound, er.Code)
	}
}

func TestEntity_InvalidExtraParam(t *testing.T) {
	srv, backend := newTestServer(t)
	called := false
	backend.entities.getFn = func(_ context.Context, id string) (*model.Entity, error) {
		called = true
		return &model.Entity{ID: id}, nil
	}

	rec := serveRequest(t, srv, "/v1/entity/MONDO:0007947?extra=banana")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("expected service untouched on bind failure")
	}
	if er := decodeError(t, json.NewDecoder(rec.Body)); er.Code != codeBadRequest {
		t.Errorf("expected code %q, got %q", codeBadRequest, er.Code)
	}
}

func TestAssociations_BindsRepeatedAndCSV(t *testing.T) {
	srv, backend := newTestServer(t)
	var got model.AssociationQuery
	backend.assocs.listFn = func(_ context.Context, p model.AssociationQuery) (*model.AssociationResults, error) {
		got = p
		return &model.AssociationResults{}, nil
	}

	rec := serveRequest(t, srv,
		"/v1/association?category=biolink:GeneToGeneHomologyAssociation,biolink:PairwiseGeneToGeneInteraction"+
			"&subject=HGNC:2928&subject=HGNC:1234&direct=true&offset=10&limit=5")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	wantCategories := []string{"biolink:GeneToGeneHomologyAssociation", "biolink:PairwiseGeneToGeneInteraction"}
	if len(got.Category) != 2 || got.Category[0] != wantCategories[0] || got.Category[1] != wantCategories[1] {
		t.Errorf("expected CSV categories %v, got %v", wantCategories, got.Category)
	}
	if len(got.Subject) != 2 || got.Subject[0] != "HGNC:2928" || got.Subject[1] != "HGNC:1234" {
		t.Errorf("expected repeated subjects, got %v", got.Subject)
	}
	if !got.Direct || got.Offset != 10 || got.Limit != 5 {
		t.Errorf("expected direct=true offset=10 limit=5, got %+v", got)
	}
}

func TestAssociations_InvalidLimit(t *testing.T) {
	srv, backend := newTestServer(t)
	called := false
	backend.assocs.listFn = func(_ context.Context, p model.AssociationQuery) (*model.AssociationResults, error) {
		called = true
		return &model.AssociationResults{}, nil
	}

	rec := serveRequest(t, srv, "/v1/association?limit=lots")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("expected service untouched on bind failure")
	}
}

func TestAssociations_BackendDown(t *testing.T) {
	srv, backend := newTestServer(t)
	backend.assocs.listFn = func(_ context.Context, p model.AssociationQuery) (*model.AssociationResults, error) {
		return nil, fmt.Errorf("list associations: %w", model.ErrBackendUnavailable)
	}

	rec := serveRequest(t, srv, "/v1/association")

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if er := decodeError(t, json.NewDecoder(rec.Body)); er.Code != codeBackendUnavailable {
		t.Errorf("expected code %q, got %q", codeBackendUnavailable, er.Code)
	}
}

func TestCounts_PathParam(t *testing.T) {
	srv, backend := newTestServer(t)
	var gotEntity string
	backend.assocs.countsFn = func(_ context.Context, entityID string) (*model.AssociationCountList, error) {
		gotEntity = entityID
		return &model.AssociationCountList{}, nil
	}

	rec := serveRequest(t, srv, "/v1/association/counts/MONDO:0020121")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotEntity != "MONDO:0020121" {
		t.Errorf("expected entity from path, got %q", gotEntity)
	}
}

func TestFacets_BindsFacetSelectors(t *testing.T) {
	srv, backend := newTestServer(t)
	var gotFields, gotQueries []string
	backend.assocs.facetsFn = func(
		_ context.Context,
		_ model.AssociationQuery,
		facetFields, facetQueries []string,
	) (*model.SearchResults, error) {
		gotFields = facetFields
		gotQueries = facetQueries
		return &model.SearchResults{}, nil
	}

	rec := serveRequest(t, srv,
		"/v1/association/facets?facet_fields=category,predicate&facet_queries=evidence_count:%5B1+TO+%2A%5D")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(gotFields) != 2 || gotFields[0] != "category" || gotFields[1] != "predicate" {
		t.Errorf("expected facet fields, got %v", gotFields)
	}
	if len(gotQueries) != 1 || gotQueries[0] != "evidence_count:[1 TO *]" {
		t.Errorf("expected facet query, got %v", gotQueries)
	}
}

func TestTable_PathAndQueryParams(t *testing.T) {
	srv, backend := newTestServer(t)
	var got model.AssociationTableQuery
	backend.assocs.tableFn = func(_ context.Context, p model.AssociationTableQuery) (*model.AssociationTableResults, error) {
		got = p
		return &model.AssociationTableResults{}, nil
	}

	rec := serveRequest(t, srv,
		"/v1/association/table/MONDO:0020121/biolink:DiseaseToPhenotypicFeatureAssociation?q=muscle&limit=5")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Entity != "MONDO:0020121" {
		t.Errorf("expected entity from path, got %q", got.Entity)
	}
	if got.Category != model.AssociationDiseaseToPhenotype {
		t.Errorf("expected category from path, got %q", got.Category)
	}
	if got.Q != "muscle" || got.Limit != 5 || got.Offset != 0 {
		t.Errorf("unexpected table params: %+v", got)
	}
}

func TestTable_InvalidCategory(t *testing.T) {
	srv, backend := newTestServer(t)
	called := false
	backend.assocs.tableFn = func(_ context.Context, p model.AssociationTableQuery) (*model.AssociationTableResults, error) {
		called = true
		return &model.AssociationTableResults{}, nil
	}

	rec := serveRequest(t, srv, "/v1/association/table/MONDO:0020121/biolink:NotARealAssociation")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("expected repository untouched for invalid category")
	}
}

func TestHistoPheno_PathParam(t *testing.T) {
	srv, backend := newTestServer(t)
	var gotSubject string
	backend.assocs.histoFn = func(_ context.Context, subjectClosure string) (*model.HistoPheno, error) {
		gotSubject = subjectClosure
		return &model.HistoPheno{ID: subjectClosure}, nil
	}

	rec := serveRequest(t, srv, "/v1/histopheno/MONDO:0020121")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotSubject != "MONDO:0020121" {
		t.Errorf("expected subject from path, got %q", gotSubject)
	}
}

func TestSearch_DefaultsApplied(t *testing.T) {
	srv, backend := newTestServer(t)
	var got model.SearchParams
	backend.search.searchFn = func(_ context.Context, p model.SearchParams) (*model.SearchResults, error) {
		got = p
		return &model.SearchResults{}, nil
	}

	rec := serveRequest(t, srv, "/v1/search")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Q != "*:*" {
		t.Errorf("expected match-all default query, got %q", got.Q)
	}
	if got.Limit != 20 || got.Offset != 0 {
		t.Errorf("expected default window, got offset=%d limit=%d", got.Offset, got.Limit)
	}
}

func TestSearch_BindsFilters(t *testing.T) {
	srv, backend := newTestServer(t)
	var got model.SearchParams
	backend.search.searchFn = func(_ context.Context, p model.SearchParams) (*model.SearchResults, error) {
		got = p
		return &model.SearchResults{}, nil
	}

	rec := serveRequest(t, srv,
		"/v1/search?q=fanconi&category=biolink:Disease&in_taxon=NCBITaxon:9606&sort=name+asc&limit=3")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Q != "fanconi" || got.Sort != "name asc" || got.Limit != 3 {
		t.Errorf("unexpected search params: %+v", got)
	}
	if len(got.Category) != 1 || got.Category[0] != string(model.CategoryDisease) {
		t.Errorf("expected disease category filter, got %v", got.Category)
	}
	if len(got.InTaxon) != 1 || got.InTaxon[0] != "NCBITaxon:9606" {
		t.Errorf("expected taxon filter, got %v", got.InTaxon)
	}
}

func TestAutocomplete_RequiresText(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := serveRequest(t, srv, "/v1/autocomplete")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if er := decodeError(t, json.NewDecoder(rec.Body)); er.Code != codeBadRequest {
		t.Errorf("expected code %q, got %q", codeBadRequest, er.Code)
	}
}

func TestMappings_Binding(t *testing.T) {
	srv, backend := newTestServer(t)
	var gotIDs []string
	var gotLimit int
	backend.mappings.listFn = func(_ context.Context, entityIDs []string, offset, limit int) (*model.MappingResults, error) {
		gotIDs = entityIDs
		gotLimit = limit
		return &model.MappingResults{}, nil
	}

	rec := serveRequest(t, srv, "/v1/mappings?entity_id=MONDO:0020121&entity_id=MONDO:0007947&limit=5")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(gotIDs) != 2 || gotIDs[0] != "MONDO:0020121" || gotIDs[1] != "MONDO:0007947" {
		t.Errorf("expected repeated entity ids, got %v", gotIDs)
	}
	if gotLimit != 5 {
		t.Errorf("expected limit 5, got %d", gotLimit)
	}
}

func TestMappings_RequiresEntity(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := serveRequest(t, srv, "/v1/mappings")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	srv, backend := newTestServer(t)

	rec := serveRequest(t, srv, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	backend.health.err = errors.New("connection refused")
	rec = serveRequest(t, srv, "/healthz")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestInternalError_Masked(t *testing.T) {
	srv, backend := newTestServer(t)
	backend.entities.getFn = func(_ context.Context, id string) (*model.Entity, error) {
		return nil, errors.New("dial tcp 10.1.2.3:8983: connection reset")
	}

	rec := serveRequest(t, srv, "/v1/entity/MONDO:0007947")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	er := decodeError(t, json.NewDecoder(rec.Body))
	if er.Code != codeInternal {
		t.Errorf("expected code %q, got %q", codeInternal, er.Code)
	}
	if er.Message != "internal error" {
		t.Errorf("expected masked message, got %q", er.Message)
	}
}

func TestCache_HitShortCircuitsBackend(t *testing.T) {
	srv, backend := newTestServer(t)
	rc := newMockResponseCache()
	srv.WithCache(rc)

	calls := 0
	backend.search.searchFn = func(_ context.Context, p model.SearchParams) (*model.SearchResults, error) {
		calls++
		return &model.SearchResults{Results: model.Results{Total: 42}}, nil
	}

	first := serveRequest(t, srv, "/v1/search?q=marfan")
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	if calls != 1 || rc.sets != 1 {
		t.Fatalf("expected one backend call and one store, got calls=%d sets=%d", calls, rc.sets)
	}

	second := serveRequest(t, srv, "/v1/search?q=marfan")
	if second.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", second.Code)
	}
	if calls != 1 {
		t.Errorf("expected cache hit to skip the backend, got %d calls", calls)
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("expected identical cached body")
	}
}

func TestCache_SkipsErrorResponses(t *testing.T) {
	srv, backend := newTestServer(t)
	rc := newMockResponseCache()
	srv.WithCache(rc)

	backend.search.searchFn = func(_ context.Context, p model.SearchParams) (*model.SearchResults, error) {
		return nil, fmt.Errorf("search: %w", model.ErrBackendUnavailable)
	}

	rec := serveRequest(t, srv, "/v1/search?q=marfan")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if rc.sets != 0 {
		t.Errorf("expected error response not stored, got %d stores", rc.sets)
	}
}
