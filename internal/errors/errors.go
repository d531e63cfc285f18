package errors

import (
	"errors"
	"fmt"
)

// NewNotFoundError reports that the storage at location has never been written
func NewNotFoundError(resource string, location string) *AppError {
	err := &AppError{
		Kind:    KindNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found: %s", resource, location),
	}
	return err.WithContext("location", location)
}

// NewStorageError creates an error for a failed read or write of task storage.
// Callers attach the location with WithContext.
func NewStorageError(operation string, cause error) *AppError {
	err := &AppError{
		Kind:    KindStorage,
		Code:    "STORAGE_ERROR",
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Cause:   cause,
	}
	return err.WithContext("operation", operation)
}

// NewInvalidInputError creates an error for a rejected command-line argument
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	err := &AppError{
		Kind:    KindInvalidInput,
		Code:    "INVALID_INPUT",
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
	}
	return err.WithContext("field", field).WithContext("value", value)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is, or wraps, an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Kind == kind
	}
	return false
}

// IsNotFound reports whether err is a NotFound AppError
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Kind {
		case KindNotFound, KindInvalidInput:
			return appErr.Message
		case KindStorage:
			return "The task file could not be accessed. Please check its location and permissions."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// LogFields returns the structured fields to log with err
func LogFields(err error) map[string]interface{} {
	fields := map[string]interface{}{"code": GetErrorCode(err)}
	if appErr, ok := AsAppError(err); ok {
		for key, value := range appErr.Context {
			fields[key] = value
		}
	}
	return fields
}

// ShouldLogError determines if an error should be logged based on its kind
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Kind {
		case KindNotFound, KindInvalidInput:
			return false // user errors
		}
	}
	return true
}
