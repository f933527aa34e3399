package model

// Results carries the pagination window every paged response reports back.
// Total counts everything the backend matched, independent of page size, and
// is passed through from the backend unchanged.
type Results struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// AssociationResults is one page of associations.
type AssociationResults struct {
	Results

	Items []Association `json:"items"`
}

// SearchResult is an Entity as returned by full-text search, with the
// backend's relevance score when one was requested.
type SearchResult struct {
	Entity

	Highlight string  `json:"highlight,omitempty"`
	Score     float64 `json:"score,omitempty"`
}

// FacetValue is one value bucket of a facet field, in backend-reported order.
type FacetValue struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SearchResults is one page of search hits plus any facet aggregations the
// query asked for. Facet value lists keep the backend's order.
type SearchResults struct {
	Results

	Items        []SearchResult          `json:"items"`
	FacetFields  map[string][]FacetValue `json:"facet_fields,omitempty"`
	FacetQueries map[string]int          `json:"facet_queries,omitempty"`
}

// AssociationCount is the number of associations an entity has in one
// reference category.
type AssociationCount struct {
	Category AssociationCategory `json:"category"`
	Label    string              `json:"label"`
	Count    int                 `json:"count"`
}

// AssociationCountList always holds one entry per reference category, in
// reference order, zero-filled for categories the backend reported nothing
// for.
type AssociationCountList struct {
	Items []AssociationCount `json:"items"`
}

// AssociationTableResults is one page of a per-entity association table.
// Entity and Category echo the request; Direction on each row orients it
// relative to Entity.
type AssociationTableResults struct {
	Results

	Entity   string                   `json:"entity"`
	Category AssociationCategory      `json:"category"`
	Items    []DirectionalAssociation `json:"items"`
}

// HistoPheno aggregates an entity's phenotype associations into the fixed
// phenotype-system bins, ordered by descending count.
type HistoPheno struct {
	ID    string          `json:"id"`
	Items []HistoPhenoBin `json:"items"`
}

// HistoPhenoBin is one phenotype-system bucket of a HistoPheno histogram.
type HistoPhenoBin struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Mapping is one cross-vocabulary identifier mapping in SSSOM form.
type Mapping struct {
	ID                   string `json:"id"`
	SubjectID            string `json:"subject_id"`
	SubjectLabel         string `json:"subject_label,omitempty"`
	PredicateID          string `json:"predicate_id"`
	ObjectID             string `json:"object_id"`
	ObjectLabel          string `json:"object_label,omitempty"`
	MappingJustification string `json:"mapping_justification,omitempty"`
}

// MappingResults is one page of identifier mappings.
type MappingResults struct {
	Results

	Items []Mapping `json:"items"`
}
