package solr

import (
	"encoding/json"
	"fmt"

	"github.com/helix-bio/graphdex/pkg/model"
)

// QueryResult mirrors the select response body. Docs stay raw JSON; each
// repository unmarshals them into its own document shape, which is also what
// makes unknown backend fields a non-event.
type QueryResult struct {
	ResponseHeader ResponseHeader `json:"responseHeader"`
	Response       Response       `json:"response"`
	FacetCounts    FacetCounts    `json:"facet_counts"`
}

// ResponseHeader carries backend bookkeeping. QTime is in milliseconds.
type ResponseHeader struct {
	Status int `json:"status"`
	QTime  int `json:"QTime"`
}

// Response is the matched-document section of a select response.
type Response struct {
	NumFound int               `json:"numFound"`
	Start    int               `json:"start"`
	Docs     []json.RawMessage `json:"docs"`
}

// FacetCounts is the aggregation section. Field facets arrive as flat
// alternating value/count arrays, query facets as a plain map.
type FacetCounts struct {
	FacetFields  map[string][]any `json:"facet_fields"`
	FacetQueries map[string]int   `json:"facet_queries"`
}

// ConvertFacetFields turns flat [value, count, value, count, ...] arrays into
// ordered value lists. Backend order is kept untouched; it is part of the
// contract.
func ConvertFacetFields(fields map[string][]any) (map[string][]model.FacetValue, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	out := make(map[string][]model.FacetValue, len(fields))
	for name, flat := range fields {
		if len(flat)%2 != 0 {
			return nil, fmt.Errorf("facet field %s: odd element count %d", name, len(flat))
		}
		values := make([]model.FacetValue, 0, len(flat)/2)
		for i := 0; i < len(flat); i += 2 {
			label, ok := flat[i].(string)
			if !ok {
				return nil, fmt.Errorf("facet field %s: value at %d is %T, not a string", name, i, flat[i])
			}
			count, err := facetCount(flat[i+1])
			if err != nil {
				return nil, fmt.Errorf("facet field %s: %w", name, err)
			}
			values = append(values, model.FacetValue{Label: label, Count: count})
		}
		out[name] = values
	}
	return out, nil
}

func facetCount(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	default:
		return 0, fmt.Errorf("count is %T, not a number", v)
	}
}
