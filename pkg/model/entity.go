package model

// Entity is a uniquely identified node in the knowledge graph (disease, gene,
// phenotype, ...), parsed from a single backend document. Immutable once parsed.
type Entity struct {
	ID           string   `json:"id"`
	Category     []string `json:"category,omitempty"`
	Name         string   `json:"name,omitempty"`
	FullName     string   `json:"full_name,omitempty"`
	Deprecated   bool     `json:"deprecated,omitempty"`
	Description  string   `json:"description,omitempty"`
	Xref         []string `json:"xref,omitempty"`
	ProvidedBy   string   `json:"provided_by,omitempty"`
	InTaxon      string   `json:"in_taxon,omitempty"`
	InTaxonLabel string   `json:"in_taxon_label,omitempty"`
	Symbol       string   `json:"symbol,omitempty"`
	Synonym      []string `json:"synonym,omitempty"`
	URI          string   `json:"uri,omitempty"`
}

// HasCategory reports whether the entity carries the given category tag.
func (e *Entity) HasCategory(c Category) bool {
	for _, tag := range e.Category {
		if tag == string(c) {
			return true
		}
	}
	return false
}

// ExpandedCurie is a compact identifier resolved to a dereferenceable URL.
// URL is empty when no expansion is known for the prefix.
type ExpandedCurie struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

// NodeHierarchy holds the direct neighborhood of an entity in the class
// hierarchy. Each list comes from a distinct predicate-filtered association
// query (see usecase/entity).
type NodeHierarchy struct {
	SuperClasses      []Entity `json:"super_classes"`
	EquivalentClasses []Entity `json:"equivalent_classes"`
	SubClasses        []Entity `json:"sub_classes"`
}

// Node is an Entity enriched by the expansion pipeline. The derived fields
// stay nil/empty unless expansion was requested and resolved.
type Node struct {
	Entity

	Inheritance       *Entity            `json:"inheritance,omitempty"`
	NodeHierarchy     *NodeHierarchy     `json:"node_hierarchy,omitempty"`
	AssociationCounts []AssociationCount `json:"association_counts,omitempty"`
	ExternalLinks     []ExpandedCurie    `json:"external_links,omitempty"`
	ProvidedByLink    *ExpandedCurie     `json:"provided_by_link,omitempty"`
}
