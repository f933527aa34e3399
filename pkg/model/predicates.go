package model

// Predicates the entity-expansion pipeline filters on.
const (
	PredicateSubClassOf           = "biolink:subclass_of"
	PredicateSameAs               = "biolink:same_as"
	PredicateHasModeOfInheritance = "biolink:has_mode_of_inheritance"
)
