package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")

	ErrOriginQueryFailed = errors.New("origin query failed")
	ErrOriginDataMissing = errors.New("origin data missing")
	ErrQuotaResolution   = errors.New("quota resolution failed")
	ErrCacheWriteFailed  = errors.New("cache write failed")
	ErrCacheReadFailed   = errors.New("cache read failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// OriginError reports a failed fetch of one resource type. Err carries
// ErrOriginQueryFailed or ErrOriginDataMissing in its chain.
type OriginError struct {
	Resource ResourceType
	Err      error
}

func (e *OriginError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource.Label(), e.Err)
}

func (e *OriginError) Unwrap() error { return e.Err }

// NewOriginQueryError wraps a transport or GraphQL error.
func NewOriginQueryError(resource ResourceType, cause error) *OriginError {
	return &OriginError{Resource: resource, Err: fmt.Errorf("%w: %w", ErrOriginQueryFailed, cause)}
}

// NewOriginDataMissingError reports a response without the expected data shape.
func NewOriginDataMissingError(resource ResourceType, detail string) *OriginError {
	return &OriginError{Resource: resource, Err: fmt.Errorf("%w: %s", ErrOriginDataMissing, detail)}
}

// IsOriginFailure reports whether err came from the origin API.
func IsOriginFailure(err error) bool {
	return errors.Is(err, ErrOriginQueryFailed) || errors.Is(err, ErrOriginDataMissing)
}
