package solr

import (
	"net/url"
	"strconv"
	"strings"
)

// Core names of the document indexes the system queries.
const (
	CoreEntity      = "entity"
	CoreAssociation = "association"
	CoreSSSOM       = "sssom"
)

// DefaultRows is the page size used when a caller does not choose one.
const DefaultRows = 20

const (
	defTypeEDisMax  = "edismax"
	defaultQOp      = "AND"
	defaultMinMatch = "100%"
)

// Query describes one select call against a core. Construct with NewQuery so
// the edismax defaults are in place. Rows=0 is a valid count-only query: no
// documents come back but facet aggregation still runs.
type Query struct {
	Q             string
	Rows          int
	Start         int
	Facet         bool
	FacetMinCount int
	FacetFields   []string
	FacetQueries  []string
	FilterQueries []string
	QueryFields   string
	DefType       string
	QOp           string
	MinMatch      string
	Boost         string
	Sort          string
}

// NewQuery builds a match-all query with the standard defaults.
func NewQuery() *Query {
	return &Query{
		Q:             "*:*",
		Rows:          DefaultRows,
		Facet:         true,
		FacetMinCount: 1,
		DefType:       defTypeEDisMax,
		QOp:           defaultQOp,
		MinMatch:      defaultMinMatch,
	}
}

// AddFilterQuery appends a raw filter clause.
func (q *Query) AddFilterQuery(fq string) *Query {
	q.FilterQueries = append(q.FilterQueries, fq)
	return q
}

// AddFieldFilterQuery appends one filter clause matching any of the given
// values on a field. No-op without values.
func (q *Query) AddFieldFilterQuery(field string, values ...string) *Query {
	if len(values) == 0 {
		return q
	}
	clauses := make([]string, len(values))
	for i, v := range values {
		clauses[i] = FieldClause(field, v)
	}
	return q.AddFilterQuery(strings.Join(clauses, " OR "))
}

// FieldClause renders one quoted field match, escaping embedded quotes.
func FieldClause(field, value string) string {
	v := strings.ReplaceAll(value, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return field + `:"` + v + `"`
}

// Params renders the query in select wire form.
func (q *Query) Params() url.Values {
	p := url.Values{}

	term := q.Q
	if term == "" {
		term = "*:*"
	}
	p.Set("q", term)
	p.Set("rows", strconv.Itoa(q.Rows))
	p.Set("start", strconv.Itoa(q.Start))

	if q.Facet {
		p.Set("facet", "true")
		p.Set("facet.mincount", strconv.Itoa(q.FacetMinCount))
		for _, f := range q.FacetFields {
			p.Add("facet.field", f)
		}
		for _, fq := range q.FacetQueries {
			p.Add("facet.query", fq)
		}
	}
	for _, fq := range q.FilterQueries {
		p.Add("fq", fq)
	}

	if q.QueryFields != "" {
		p.Set("qf", q.QueryFields)
	}
	if q.DefType != "" {
		p.Set("defType", q.DefType)
	}
	if q.QOp != "" {
		p.Set("q.op", q.QOp)
	}
	if q.MinMatch != "" {
		p.Set("mm", q.MinMatch)
	}
	if q.Boost != "" {
		p.Set("boost", q.Boost)
	}
	if q.Sort != "" {
		p.Set("sort", q.Sort)
	}
	return p
}
