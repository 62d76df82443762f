// Package domain defines error types for the catalog.
package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a fatal import failure
type ErrorKind int

const (
	// ParseFailure means the input could not be tokenized as delimited text
	ParseFailure ErrorKind = iota + 1
	// PersistenceFailure means the replace-all write did not complete
	PersistenceFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ParseFailure:
		return "parse failure"
	case PersistenceFailure:
		return "persistence failure"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ImportError is returned when an import cannot complete
type ImportError struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface for ImportError
func (e *ImportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("import failed: %s", e.Kind)
	}
	return fmt.Sprintf("import failed: %s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying cause
func (e *ImportError) Unwrap() error {
	return e.Err
}

// Is matches another ImportError of the same kind, or any ImportError when the target has no kind
func (e *ImportError) Is(target error) bool {
	t, ok := target.(*ImportError)
	if !ok {
		return false
	}
	return t.Kind == 0 || t.Kind == e.Kind
}

// ProductNotFoundError is returned when no product has the given handle
type ProductNotFoundError struct {
	Handle string
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: handle=%s", e.Handle)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// NewParseFailure wraps a tokenizer error
func NewParseFailure(err error) error {
	return &ImportError{Kind: ParseFailure, Err: err}
}

// NewPersistenceFailure wraps a store error
func NewPersistenceFailure(err error) error {
	return &ImportError{Kind: PersistenceFailure, Err: err}
}

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(handle string) error {
	return &ProductNotFoundError{Handle: handle}
}

// IsParseFailure checks if an error is an ImportError of kind ParseFailure
func IsParseFailure(err error) bool {
	return isKind(err, ParseFailure)
}

// IsPersistenceFailure checks if an error is an ImportError of kind PersistenceFailure
func IsPersistenceFailure(err error) bool {
	return isKind(err, PersistenceFailure)
}

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}

func isKind(err error, kind ErrorKind) bool {
	var ie *ImportError
	return errors.As(err, &ie) && ie.Kind == kind
}
