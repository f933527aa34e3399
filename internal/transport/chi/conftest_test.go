package chi

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/helix-bio/graphdex/internal/curie"
	associationuc "github.com/helix-bio/graphdex/internal/usecase/association"
	entityuc "github.com/helix-bio/graphdex/internal/usecase/entity"
	searchuc "github.com/helix-bio/graphdex/internal/usecase/search"
	"github.com/helix-bio/graphdex/pkg/model"
)

// Handlers are exercised over real capability services; only the storage
// layer underneath them is mocked.

type mockEntityRepo struct {
	getFn func(ctx context.Context, id string) (*model.Entity, error)
}

func (m *mockEntityRepo) Get(ctx context.Context, id string) (*model.Entity, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.Entity{ID: id, Name: "stub"}, nil
}

type mockAssociationRepo struct {
	listFn   func(ctx context.Context, p model.AssociationQuery) (*model.AssociationResults, error)
	countsFn func(ctx context.Context, entityID string) (*model.AssociationCountList, error)
	facetsFn func(ctx context.Context, p model.AssociationQuery, facetFields, facetQueries []string) (*model.SearchResults, error)
	tableFn  func(ctx context.Context, p model.AssociationTableQuery) (*model.AssociationTableResults, error)
	histoFn  func(ctx context.Context, subjectClosure string) (*model.HistoPheno, error)
}

func (m *mockAssociationRepo) List(ctx context.Context, p model.AssociationQuery) (*model.AssociationResults, error) {
	if m.listFn != nil {
		return m.listFn(ctx, p)
	}
	return &model.AssociationResults{}, nil
}

func (m *mockAssociationRepo) Counts(ctx context.Context, entityID string) (*model.AssociationCountList, error) {
	if m.countsFn != nil {
		return m.countsFn(ctx, entityID)
	}
	return &model.AssociationCountList{}, nil
}

func (m *mockAssociationRepo) Facets(
	ctx context.Context,
	p model.AssociationQuery,
	facetFields, facetQueries []string,
) (*model.SearchResults, error) {
	if m.facetsFn != nil {
		return m.facetsFn(ctx, p, facetFields, facetQueries)
	}
	return &model.SearchResults{}, nil
}

func (m *mockAssociationRepo) Table(ctx context.Context, p model.AssociationTableQuery) (*model.AssociationTableResults, error) {
	if m.tableFn != nil {
		return m.tableFn(ctx, p)
	}
	return &model.AssociationTableResults{}, nil
}

func (m *mockAssociationRepo) HistoPheno(ctx context.Context, subjectClosure string) (*model.HistoPheno, error) {
	if m.histoFn != nil {
		return m.histoFn(ctx, subjectClosure)
	}
	return &model.HistoPheno{ID: subjectClosure}, nil
}

type mockSearchRepo struct {
	searchFn       func(ctx context.Context, p model.SearchParams) (*model.SearchResults, error)
	autocompleteFn func(ctx context.Context, text string) (*model.SearchResults, error)
}

func (m *mockSearchRepo) Search(ctx context.Context, p model.SearchParams) (*model.SearchResults, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, p)
	}
	return &model.SearchResults{}, nil
}

func (m *mockSearchRepo) Autocomplete(ctx context.Context, text string) (*model.SearchResults, error) {
	if m.autocompleteFn != nil {
		return m.autocompleteFn(ctx, text)
	}
	return &model.SearchResults{}, nil
}

type mockMappingRepo struct {
	listFn func(ctx context.Context, entityIDs []string, offset, limit int) (*model.MappingResults, error)
}

func (m *mockMappingRepo) List(ctx context.Context, entityIDs []string, offset, limit int) (*model.MappingResults, error) {
	if m.listFn != nil {
		return m.listFn(ctx, entityIDs, offset, limit)
	}
	return &model.MappingResults{}, nil
}

type mockHealth struct {
	err error
}

func (m *mockHealth) Ping(ctx context.Context) error { return m.err }

type mockResponseCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func newMockResponseCache() *mockResponseCache {
	return &mockResponseCache{store: map[string][]byte{}}
}

func (m *mockResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	m.gets++
	body, ok := m.store[key]
	return body, ok
}

func (m *mockResponseCache) Set(ctx context.Context, key string, payload []byte) {
	m.sets++
	m.store[key] = payload
}

// testBackend groups the storage mocks behind one server instance.
type testBackend struct {
	entities *mockEntityRepo
	assocs   *mockAssociationRepo
	search   *mockSearchRepo
	mappings *mockMappingRepo
	health   *mockHealth
}

func newTestServer(t *testing.T) (*Server, *testBackend) {
	t.Helper()

	b := &testBackend{
		entities: &mockEntityRepo{},
		assocs:   &mockAssociationRepo{},
		search:   &mockSearchRepo{},
		mappings: &mockMappingRepo{},
		health:   &mockHealth{},
	}

	links, err := curie.New()
	if err != nil {
		t.Fatalf("curie resolver: %v", err)
	}

	log := zap.NewNop()
	srv := NewServer(
		entityuc.New(b.entities, b.assocs, links, log),
		associationuc.New(b.assocs, log),
		searchuc.New(b.search, b.mappings, log),
		b.health,
		log,
	)
	return srv, b
}

// serveRequest runs one GET request through a freshly registered router.
func serveRequest(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	srv.Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
	return rec
}
