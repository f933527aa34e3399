package association

import (
	"context"
	"testing"

	"github.com/helix-bio/graphdex/internal/curie"
	"github.com/helix-bio/graphdex/internal/solr"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	queryFn func(ctx context.Context, core string, q *solr.Query) (*solr.QueryResult, error)
}

func (m *mockStore) Query(ctx context.Context, core string, q *solr.Query) (*solr.QueryResult, error) {
	if m.queryFn != nil {
		return m.queryFn(ctx, core, q)
	}
	return &solr.QueryResult{}, nil
}

// newTestRepo wires a repo to a mock store and the real identifier resolver,
// so link resolution in tests matches production behavior.
func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	resolver, err := curie.New()
	if err != nil {
		t.Fatalf("curie.New: %v", err)
	}
	ms := &mockStore{}
	return New(ms, resolver), ms
}
