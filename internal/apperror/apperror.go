package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure for the HTTP layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindUnauthorized
	KindValidationFailed
	KindPersistenceFailed
	KindNotFound
)

// FieldViolation is one field-level validation failure, returned to the
// client so forms can be corrected in place.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type AppError struct {
	Kind       Kind
	Message    string
	Violations []FieldViolation
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Unauthenticated() *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: "not authenticated"}
}

func Unauthorized(message string) *AppError {
	if message == "" {
		message = "not authorized"
	}
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NotFound(message string) *AppError {
	if message == "" {
		message = "not found"
	}
	return &AppError{Kind: KindNotFound, Message: message}
}

func Validation(violations []FieldViolation) *AppError {
	return &AppError{
		Kind:       KindValidationFailed,
		Message:    "content validation failed",
		Violations: violations,
	}
}

// Persistence wraps a store failure. The store's own message is kept so
// it can be surfaced to the caller (constraint violations included).
func Persistence(err error) *AppError {
	return &AppError{Kind: KindPersistenceFailed, Message: "persistence failed", Err: err}
}

// KindOf extracts the taxonomy kind from any error in the chain.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
