package drawio

import "fmt"

// DuplicateIDError reports a cell identifier that is not unique within a
// document, or a user cell that reuses a reserved structural id.
type DuplicateIDError struct {
	ID string
}

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate cell identifier %q", e.ID)
}

// NotFoundError reports removal of a page or cell that is not present in
// its container.
type NotFoundError struct {
	Kind string // "page" or "cell"
	ID   string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// UnsupportedValueError reports a style value of a type the encoder does
// not know how to render.
type UnsupportedValueError struct {
	Key   string
	Value any
}

// Error implements the error interface.
func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("style value for %q has unsupported type %T", e.Key, e.Value)
}
