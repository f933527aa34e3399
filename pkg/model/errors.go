package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that an exact-id lookup matched no document.
	ErrNotFound = errors.New("not found")
	// ErrMissingField signals a backend document without a schema-required field.
	ErrMissingField = errors.New("missing required field")
	// ErrForeignAssociation signals an association that does not reference the anchor entity.
	ErrForeignAssociation = errors.New("association does not reference entity")
	// ErrBackendUnavailable signals an unreachable search backend.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrInvalidParam signals a request parameter outside its accepted range.
	ErrInvalidParam = errors.New("invalid parameter")
)

// MissingFieldError wraps ErrMissingField with the document and field involved.
type MissingFieldError struct {
	ID    string
	Field string
}

func (e *MissingFieldError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s", ErrMissingField.Error(), e.Field)
	}
	return fmt.Sprintf("%s: %s on document %s", ErrMissingField.Error(), e.Field, e.ID)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// NewMissingField creates a missing required field error.
func NewMissingField(id, field string) error {
	return &MissingFieldError{ID: id, Field: field}
}

// ForeignAssociationError wraps ErrForeignAssociation with both identifiers involved.
type ForeignAssociationError struct {
	AssociationID string
	AnchorID      string
}

func (e *ForeignAssociationError) Error() string {
	return fmt.Sprintf("%s: association %s, entity %s", ErrForeignAssociation.Error(), e.AssociationID, e.AnchorID)
}

func (e *ForeignAssociationError) Unwrap() error { return ErrForeignAssociation }
