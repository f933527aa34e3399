package model

// PhenotypeSystem pairs a top-level phenotypic-abnormality term with the
// short label histopheno histograms report it under.
type PhenotypeSystem struct {
	ID    string
	Label string
}

// The fixed histopheno bin table. Bins with equal counts keep this order in
// responses, so the order is part of the contract.
var phenotypeSystems = []PhenotypeSystem{
	{ID: "HP:0000924", Label: "skeletal_system"},
	{ID: "HP:0000707", Label: "nervous_system"},
	{ID: "HP:0000152", Label: "head_neck"},
	{ID: "HP:0001574", Label: "integument"},
	{ID: "HP:0000478", Label: "eye"},
	{ID: "HP:0001626", Label: "cardiovascular_system"},
	{ID: "HP:0001939", Label: "metabolism_homeostasis"},
	{ID: "HP:0000119", Label: "genitourinary_system"},
	{ID: "HP:0025031", Label: "digestive_system"},
	{ID: "HP:0002664", Label: "neoplasm"},
	{ID: "HP:0001871", Label: "blood"},
	{ID: "HP:0002715", Label: "immune_system"},
	{ID: "HP:0000818", Label: "endocrine"},
	{ID: "HP:0003011", Label: "musculature"},
	{ID: "HP:0001507", Label: "growth"},
	{ID: "HP:0003549", Label: "connective_tissue"},
	{ID: "HP:0001197", Label: "prenatal_or_birth"},
	{ID: "HP:0002086", Label: "respiratory"},
	{ID: "HP:0000598", Label: "ear"},
	{ID: "HP:0000769", Label: "breast"},
}

// PhenotypeSystems returns the histopheno bin table in its fixed order.
func PhenotypeSystems() []PhenotypeSystem {
	out := make([]PhenotypeSystem, len(phenotypeSystems))
	copy(out, phenotypeSystems)
	return out
}
