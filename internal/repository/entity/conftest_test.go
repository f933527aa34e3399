package entity

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/helix-bio/graphdex/internal/solr"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn   func(ctx context.Context, core, id string) (json.RawMessage, error)
	queryFn func(ctx context.Context, core string, q *solr.Query) (*solr.QueryResult, error)
}

func (m *mockStore) Get(ctx context.Context, core, id string) (json.RawMessage, error) {
	if m.getFn != nil {
		return m.getFn(ctx, core, id)
	}
	return json.RawMessage(`{"id":"MONDO:0000001"}`), nil
}

func (m *mockStore) Query(ctx context.Context, core string, q *solr.Query) (*solr.QueryResult, error) {
	if m.queryFn != nil {
		return m.queryFn(ctx, core, q)
	}
	return &solr.QueryResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

// loadQueryResult reads a canned select response from testdata.
func loadQueryResult(t *testing.T, name string) *solr.QueryResult {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	var res solr.QueryResult
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}
	return &res
}
