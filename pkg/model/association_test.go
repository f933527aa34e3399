package model

import (
	"errors"
	"testing"
)

func sampleAssociation() Association {
	return Association{
		ID:              "uuid:00001",
		Category:        string(AssociationGeneToPhenotype),
		Subject:         "HGNC:1100",
		SubjectLabel:    "BRCA1",
		SubjectCategory: "biolink:Gene",
		SubjectClosure:  []string{"HGNC:1100"},
		Predicate:       "biolink:has_phenotype",
		Object:          "HP:0003002",
		ObjectLabel:     "Breast carcinoma",
		ObjectCategory:  "biolink:PhenotypicFeature",
		ObjectClosure:   []string{"HP:0003002", "HP:0002664"},
	}
}

func TestDirectionFor_SubjectSide(t *testing.T) {
	assoc := sampleAssociation()

	dir, err := assoc.DirectionFor("HGNC:1100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != DirectionOutgoing {
		t.Fatalf("expected outgoing, got %s", dir)
	}
}

func TestDirectionFor_ObjectClosure(t *testing.T) {
	assoc := sampleAssociation()

	dir, err := assoc.DirectionFor("HP:0002664")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != DirectionIncoming {
		t.Fatalf("expected incoming, got %s", dir)
	}
}

func TestDirectionFor_ForeignEntity(t *testing.T) {
	assoc := sampleAssociation()

	_, err := assoc.DirectionFor("MONDO:0000001")
	if !errors.Is(err, ErrForeignAssociation) {
		t.Fatalf("expected ErrForeignAssociation, got %v", err)
	}

	var fae *ForeignAssociationError
	if !errors.As(err, &fae) {
		t.Fatalf("expected ForeignAssociationError, got %T", err)
	}
	if fae.AssociationID != "uuid:00001" || fae.AnchorID != "MONDO:0000001" {
		t.Fatalf("unexpected error detail: %+v", fae)
	}
}

func TestOtherEntity_Outgoing(t *testing.T) {
	assoc := sampleAssociation()

	other, err := assoc.OtherEntity("HGNC:1100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.ID != "HP:0003002" {
		t.Fatalf("expected object side, got %s", other.ID)
	}
	if other.Name != "Breast carcinoma" {
		t.Fatalf("expected object label, got %q", other.Name)
	}
	if len(other.Category) != 1 || other.Category[0] != "biolink:PhenotypicFeature" {
		t.Fatalf("expected object category, got %v", other.Category)
	}
}

func TestOtherEntity_IncomingViaClosure(t *testing.T) {
	assoc := sampleAssociation()

	other, err := assoc.OtherEntity("HP:0002664")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.ID != "HGNC:1100" {
		t.Fatalf("expected subject side, got %s", other.ID)
	}
}

func TestOtherEntity_ForeignEntity(t *testing.T) {
	assoc := sampleAssociation()

	_, err := assoc.OtherEntity("MONDO:0000001")
	if !errors.Is(err, ErrForeignAssociation) {
		t.Fatalf("expected ErrForeignAssociation, got %v", err)
	}
}
