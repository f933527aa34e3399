package search

import (
	"context"
	"errors"
	"testing"

	"github.com/helix-bio/graphdex/pkg/model"
)

// --- Mocks ---

type mockRepo struct {
	searchParams     *model.SearchParams
	autocompleteText string
}

func (m *mockRepo) Search(_ context.Context, p model.SearchParams) (*model.SearchResults, error) {
	m.searchParams = &p
	return &model.SearchResults{}, nil
}

func (m *mockRepo) Autocomplete(_ context.Context, text string) (*model.SearchResults, error) {
	m.autocompleteText = text
	return &model.SearchResults{}, nil
}

type mockMappings struct {
	entityIDs []string
	offset    int
	limit     int
}

func (m *mockMappings) List(_ context.Context, entityIDs []string, offset, limit int) (*model.MappingResults, error) {
	m.entityIDs = entityIDs
	m.offset = offset
	m.limit = limit
	return &model.MappingResults{}, nil
}

// --- Tests ---

func TestSearch_DefaultsWindowAndQuery(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, &mockMappings{}, nil)

	if _, err := svc.Search(context.Background(), model.SearchParams{}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if repo.searchParams.Limit != defaultLimit || repo.searchParams.Offset != 0 {
		t.Errorf("window = %d/%d, want default %d/0", repo.searchParams.Limit, repo.searchParams.Offset, defaultLimit)
	}
	if repo.searchParams.Q != "*:*" {
		t.Errorf("empty query rewritten to %q, want match-all", repo.searchParams.Q)
	}
}

func TestSearch_KeepsExplicitParams(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, &mockMappings{}, nil)

	_, err := svc.Search(context.Background(), model.SearchParams{
		Q:        "fanconi",
		Category: []string{"biolink:Disease"},
		Offset:   40,
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if repo.searchParams.Q != "fanconi" || repo.searchParams.Limit != 10 || repo.searchParams.Offset != 40 {
		t.Errorf("params rewritten: %+v", repo.searchParams)
	}
}

func TestSearch_RejectsBadWindow(t *testing.T) {
	svc := New(&mockRepo{}, &mockMappings{}, nil)

	if _, err := svc.Search(context.Background(), model.SearchParams{Limit: maxLimit + 1}); !errors.Is(err, model.ErrInvalidParam) {
		t.Fatalf("err = %v, want ErrInvalidParam", err)
	}
}

func TestAutocomplete_RequiresText(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, &mockMappings{}, nil)

	if _, err := svc.Autocomplete(context.Background(), "   "); !errors.Is(err, model.ErrInvalidParam) {
		t.Fatalf("err = %v, want ErrInvalidParam", err)
	}
	if _, err := svc.Autocomplete(context.Background(), "fanc"); err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}
	if repo.autocompleteText != "fanc" {
		t.Errorf("text = %q", repo.autocompleteText)
	}
}

func TestMappings_RequiresEntities(t *testing.T) {
	mappings := &mockMappings{}
	svc := New(&mockRepo{}, mappings, nil)

	if _, err := svc.Mappings(context.Background(), nil, 0, 0); !errors.Is(err, model.ErrInvalidParam) {
		t.Fatalf("err = %v, want ErrInvalidParam", err)
	}

	if _, err := svc.Mappings(context.Background(), []string{"MONDO:0020121"}, 0, 0); err != nil {
		t.Fatalf("Mappings: %v", err)
	}
	if mappings.limit != defaultLimit {
		t.Errorf("limit = %d, want default %d", mappings.limit, defaultLimit)
	}
}
