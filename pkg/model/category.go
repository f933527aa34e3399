package model

// Category is a recognized entity category tag. Backend documents may carry
// tags outside this set; those still round-trip through Entity.Category as
// plain strings, they just trigger no category-specific behavior.
type Category string

const (
	CategoryDisease           Category = "biolink:Disease"
	CategoryGene              Category = "biolink:Gene"
	CategoryPhenotypicFeature Category = "biolink:PhenotypicFeature"
	CategoryAnatomicalEntity  Category = "biolink:AnatomicalEntity"
	CategoryBiologicalProcess Category = "biolink:BiologicalProcessOrActivity"
	CategoryPathway           Category = "biolink:Pathway"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryDisease, CategoryGene, CategoryPhenotypicFeature,
		CategoryAnatomicalEntity, CategoryBiologicalProcess, CategoryPathway:
		return true
	}
	return false
}

// ParseCategory maps a raw tag onto the recognized set. The second return is
// false for tags outside it, which callers treat as pass-through data.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.IsValid()
}

// AssociationCategory identifies one kind of typed edge in the association
// index.
type AssociationCategory string

const (
	AssociationDiseaseToPhenotype               AssociationCategory = "biolink:DiseaseToPhenotypicFeatureAssociation"
	AssociationGeneToPhenotype                  AssociationCategory = "biolink:GeneToPhenotypicFeatureAssociation"
	AssociationCausalGeneToDisease              AssociationCategory = "biolink:CausalGeneToDiseaseAssociation"
	AssociationCorrelatedGeneToDisease          AssociationCategory = "biolink:CorrelatedGeneToDiseaseAssociation"
	AssociationGeneToGeneHomology               AssociationCategory = "biolink:GeneToGeneHomologyAssociation"
	AssociationGeneToGeneInteraction            AssociationCategory = "biolink:PairwiseGeneToGeneInteraction"
	AssociationGeneToExpressionSite             AssociationCategory = "biolink:GeneToExpressionSiteAssociation"
	AssociationMacromoleculeToMolecularActivity AssociationCategory = "biolink:MacromolecularMachineToMolecularActivityAssociation"
	AssociationMacromoleculeToBiologicalProcess AssociationCategory = "biolink:MacromolecularMachineToBiologicalProcessAssociation"
	AssociationMacromoleculeToCellularComponent AssociationCategory = "biolink:MacromolecularMachineToCellularComponentAssociation"
	AssociationChemicalToPathway                AssociationCategory = "biolink:ChemicalToPathwayAssociation"
)

// AssociationCategoryInfo describes one reference association category.
// Symmetric categories relate two entities of the same kind, so per-entity
// counting only looks at the subject side to avoid counting an edge twice.
type AssociationCategoryInfo struct {
	Category  AssociationCategory
	Label     string
	Symmetric bool
}

// Reference enumeration of association categories. Count responses cover
// exactly this set in exactly this order.
var associationCategories = []AssociationCategoryInfo{
	{Category: AssociationDiseaseToPhenotype, Label: "Disease to Phenotype"},
	{Category: AssociationGeneToPhenotype, Label: "Gene to Phenotype"},
	{Category: AssociationCausalGeneToDisease, Label: "Causal Gene to Disease"},
	{Category: AssociationCorrelatedGeneToDisease, Label: "Correlated Gene to Disease"},
	{Category: AssociationGeneToGeneHomology, Label: "Gene to Gene Homology", Symmetric: true},
	{Category: AssociationGeneToGeneInteraction, Label: "Gene to Gene Interaction", Symmetric: true},
	{Category: AssociationGeneToExpressionSite, Label: "Gene to Expression Site"},
	{Category: AssociationMacromoleculeToMolecularActivity, Label: "Molecular Activity"},
	{Category: AssociationMacromoleculeToBiologicalProcess, Label: "Biological Process"},
	{Category: AssociationMacromoleculeToCellularComponent, Label: "Cellular Component"},
	{Category: AssociationChemicalToPathway, Label: "Chemical to Pathway"},
}

// AssociationCategories returns the reference enumeration in its fixed order.
func AssociationCategories() []AssociationCategoryInfo {
	out := make([]AssociationCategoryInfo, len(associationCategories))
	copy(out, associationCategories)
	return out
}

func (c AssociationCategory) IsValid() bool {
	for _, info := range associationCategories {
		if info.Category == c {
			return true
		}
	}
	return false
}

// Label returns the display name for a reference category, or the raw
// category string when it is outside the reference set.
func (c AssociationCategory) Label() string {
	for _, info := range associationCategories {
		if info.Category == c {
			return info.Label
		}
	}
	return string(c)
}

// ParseAssociationCategory maps a raw category string onto the reference
// enumeration.
func ParseAssociationCategory(s string) (AssociationCategory, bool) {
	c := AssociationCategory(s)
	return c, c.IsValid()
}
