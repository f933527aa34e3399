package curie

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/helix-bio/graphdex/pkg/model"
)

//go:embed prefixes.yaml
var prefixesYAML []byte

//go:embed sources.yaml
var sourcesYAML []byte

// Resolver expands compact identifiers into resolvable URLs and maps data
// source tags to their landing pages. An absent mapping is not an error; it
// resolves to an empty URL.
type Resolver struct {
	prefixes map[string]string
	sources  map[string]string
}

// New loads the embedded expansion tables.
func New() (*Resolver, error) {
	var prefixes map[string]string
	if err := yaml.Unmarshal(prefixesYAML, &prefixes); err != nil {
		return nil, fmt.Errorf("parse prefix table: %w", err)
	}

	var sources map[string]string
	if err := yaml.Unmarshal(sourcesYAML, &sources); err != nil {
		return nil, fmt.Errorf("parse source table: %w", err)
	}

	return &Resolver{prefixes: prefixes, sources: sources}, nil
}

// Expand resolves one compact identifier. Unknown prefixes return "".
func (r *Resolver) Expand(curie string) string {
	prefix, ref, ok := strings.Cut(curie, ":")
	if !ok {
		return ""
	}
	base, ok := r.prefixes[prefix]
	if !ok {
		return ""
	}
	return base + ref
}

// ExpandAll resolves identifiers into ExpandedCurie records in input order.
// Identifiers without a known prefix keep an empty URL.
func (r *Resolver) ExpandAll(curies []string) []model.ExpandedCurie {
	if len(curies) == 0 {
		return nil
	}
	out := make([]model.ExpandedCurie, len(curies))
	for i, c := range curies {
		out[i] = model.ExpandedCurie{ID: c, URL: r.Expand(c)}
	}
	return out
}

// SourceLink maps a provenance tag to its landing page, stripping the
// _nodes/_edges suffix ingest appends to source names. Unknown sources keep
// an empty URL; an empty tag resolves to nil.
func (r *Resolver) SourceLink(providedBy string) *model.ExpandedCurie {
	if providedBy == "" {
		return nil
	}
	source := strings.TrimSuffix(providedBy, "_nodes")
	source = strings.TrimSuffix(source, "_edges")
	return &model.ExpandedCurie{ID: source, URL: r.sources[source]}
}
