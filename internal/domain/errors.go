package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by DocumentStore implementations and services.
// Adapters translate driver-specific failures into these so the HTTP layer can
// map them to status codes with errors.Is.
var (
	// ErrDocumentNotFound is returned when no document exists for a key.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDocumentExists is returned when inserting a key that is already present.
	ErrDocumentExists = errors.New("document already exists")

	// ErrInvalidRequest is returned when input fails domain validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStoreUnavailable is returned when the document store cannot be reached
	// or reports an unhealthy endpoint.
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// StoreError describes a failed store operation on a single document or statement.
type StoreError struct {
	// Op is the store operation (get, insert, upsert, remove, query, search)
	Op string

	// Collection is the collection or search index the operation targeted
	Collection string

	// Key is the document key, empty for query and search
	Key string

	// Err is the underlying error
	Err error
}

// NewStoreError creates a StoreError for the given operation.
func NewStoreError(op, collection, key string, err error) *StoreError {
	return &StoreError{Op: op, Collection: collection, Key: key, Err: err}
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	target := e.Collection
	if e.Key != "" {
		target = e.Collection + "/" + e.Key
	}
	if target == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, target, e.Err)
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// ValidationError represents a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes validation errors match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// WrapInvalidRequest creates an error wrapping ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsNotFound reports whether err is or wraps ErrDocumentNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDocumentNotFound)
}

// IsExists reports whether err is or wraps ErrDocumentExists.
func IsExists(err error) bool {
	return errors.Is(err, ErrDocumentExists)
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsStoreUnavailable reports whether err is or wraps ErrStoreUnavailable.
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
