// Package apperr defines the error kinds the HTTP boundary maps to statuses.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the boundary.
type Kind int

const (
	// Internal is anything unexpected. Its message is never shown to clients.
	Internal Kind = iota
	// Validation is a bad request: missing, non-numeric or out-of-range input.
	Validation
	// Configuration is a missing server-side secret.
	Configuration
	// Decoding is a server-side secret that is not valid base64.
	Decoding
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Configuration:
		return "configuration"
	case Decoding:
		return "decoding"
	default:
		return "internal"
	}
}

// Error carries a Kind and, for validation failures, the offending field.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation returns a Validation error for field.
func NewValidation(field, message string) *Error {
	return &Error{Kind: Validation, Field: field, Message: message}
}

// NewConfiguration returns a Configuration error wrapping err.
func NewConfiguration(message string, err error) *Error {
	return &Error{Kind: Configuration, Message: message, Err: err}
}

// NewDecoding returns a Decoding error wrapping err.
func NewDecoding(message string, err error) *Error {
	return &Error{Kind: Decoding, Message: message, Err: err}
}

// KindOf reports the Kind of the first *Error in err's chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// FieldOf reports the field of the first *Error in err's chain.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// Is reports whether err is of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
