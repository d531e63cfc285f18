package errors

import (
	"fmt"
)

// Kind classifies an AppError for user messages and logging
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindStorage      Kind = "storage"
	KindInvalidInput Kind = "invalid_input"
)

// AppError is a classified error carrying log fields.
// Context is emitted as structured log fields alongside the error.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext records a log field on the error and returns it
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}
