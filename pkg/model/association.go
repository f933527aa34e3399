package model

import "slices"

// Association is a single typed edge between two entities, carried with the
// closure and provenance fields the association index stores alongside it.
type Association struct {
	ID                        string          `json:"id"`
	Category                  string          `json:"category,omitempty"`
	Subject                   string          `json:"subject"`
	SubjectLabel              string          `json:"subject_label,omitempty"`
	SubjectCategory           string          `json:"subject_category,omitempty"`
	SubjectNamespace          string          `json:"subject_namespace,omitempty"`
	SubjectClosure            []string        `json:"subject_closure,omitempty"`
	SubjectClosureLabel       []string        `json:"subject_closure_label,omitempty"`
	Predicate                 string          `json:"predicate"`
	Object                    string          `json:"object"`
	ObjectLabel               string          `json:"object_label,omitempty"`
	ObjectCategory            string          `json:"object_category,omitempty"`
	ObjectNamespace           string          `json:"object_namespace,omitempty"`
	ObjectClosure             []string        `json:"object_closure,omitempty"`
	ObjectClosureLabel        []string        `json:"object_closure_label,omitempty"`
	PrimaryKnowledgeSource    string          `json:"primary_knowledge_source,omitempty"`
	AggregatorKnowledgeSource []string        `json:"aggregator_knowledge_source,omitempty"`
	Negated                   bool            `json:"negated,omitempty"`
	ProvidedBy                string          `json:"provided_by,omitempty"`
	ProvidedByLink            *ExpandedCurie  `json:"provided_by_link,omitempty"`
	Publications              []string        `json:"publications,omitempty"`
	PublicationsLinks         []ExpandedCurie `json:"publications_links,omitempty"`
	EvidenceCount             int             `json:"evidence_count,omitempty"`
	HasEvidence               []string        `json:"has_evidence,omitempty"`
	HasEvidenceLinks          []ExpandedCurie `json:"has_evidence_links,omitempty"`
	Qualifiers                []string        `json:"qualifiers,omitempty"`
	FrequencyQualifier        string          `json:"frequency_qualifier,omitempty"`
	FrequencyQualifierLabel   string          `json:"frequency_qualifier_label,omitempty"`
	OnsetQualifier            string          `json:"onset_qualifier,omitempty"`
	OnsetQualifierLabel       string          `json:"onset_qualifier_label,omitempty"`
	SexQualifier              string          `json:"sex_qualifier,omitempty"`
	SexQualifierLabel         string          `json:"sex_qualifier_label,omitempty"`
	StageQualifier            string          `json:"stage_qualifier,omitempty"`
	StageQualifierLabel       string          `json:"stage_qualifier_label,omitempty"`
}

// AssociationDirection orients an association relative to an anchor entity.
type AssociationDirection string

const (
	DirectionIncoming AssociationDirection = "incoming"
	DirectionOutgoing AssociationDirection = "outgoing"
)

func (d AssociationDirection) IsValid() bool {
	switch d {
	case DirectionIncoming, DirectionOutgoing:
		return true
	}
	return false
}

// DirectionFor reports how the association points relative to anchorID:
// outgoing when the anchor matches the subject side (directly or through its
// closure), incoming when it matches the object side. The subject side wins
// when the anchor appears on both, which happens for reflexive closures.
func (a *Association) DirectionFor(anchorID string) (AssociationDirection, error) {
	if a.Subject == anchorID || slices.Contains(a.SubjectClosure, anchorID) {
		return DirectionOutgoing, nil
	}
	if a.Object == anchorID || slices.Contains(a.ObjectClosure, anchorID) {
		return DirectionIncoming, nil
	}
	return "", &ForeignAssociationError{AssociationID: a.ID, AnchorID: anchorID}
}

// OtherEntity returns the far side of the association as a minimal Entity,
// given the anchor on the near side. Fails with ErrForeignAssociation when
// the anchor appears on neither side.
func (a *Association) OtherEntity(anchorID string) (Entity, error) {
	dir, err := a.DirectionFor(anchorID)
	if err != nil {
		return Entity{}, err
	}
	if dir == DirectionOutgoing {
		return minimalEntity(a.Object, a.ObjectLabel, a.ObjectCategory), nil
	}
	return minimalEntity(a.Subject, a.SubjectLabel, a.SubjectCategory), nil
}

func minimalEntity(id, label, category string) Entity {
	e := Entity{ID: id, Name: label}
	if category != "" {
		e.Category = []string{category}
	}
	return e
}

// DirectionalAssociation is an Association annotated with its orientation
// relative to the entity a table was requested for.
type DirectionalAssociation struct {
	Association

	Direction AssociationDirection `json:"direction"`
}
