package model

// AssociationQuery filters the association index. List fields OR their
// values together; empty fields add no constraint. With Direct unset,
// Subject/Object/Entity match through the precomputed closure fields, so
// transitively reachable edges count as matches.
type AssociationQuery struct {
	Category       []string
	Predicate      []string
	Subject        []string
	Object         []string
	Entity         []string
	SubjectClosure string
	ObjectClosure  string
	Direct         bool
	Offset         int
	Limit          int
}

// SearchParams drives full-text entity search.
type SearchParams struct {
	Q             string
	Category      []string
	InTaxon       []string
	FacetFields   []string
	FacetQueries  []string
	FilterQueries []string
	Sort          string
	Offset        int
	Limit         int
}

// AssociationTableQuery drives the per-entity association table: one anchor
// entity, one category, optional free text and sort.
type AssociationTableQuery struct {
	Entity   string
	Category AssociationCategory
	Q        string
	Sort     string
	Offset   int
	Limit    int
}
