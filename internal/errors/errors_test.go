package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task file", "/tmp/tasks.json")

	if err.Kind != KindNotFound {
		t.Errorf("NewNotFoundError kind = %v, want %v", err.Kind, KindNotFound)
	}
	if err.Message != "task file not found: /tmp/tasks.json" {
		t.Errorf("NewNotFoundError message = %v", err.Message)
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}
	if err.Context["location"] != "/tmp/tasks.json" {
		t.Errorf("NewNotFoundError should set location context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewStorageError("write task file", cause).WithContext("location", "/tmp/tasks.json")

	if err.Kind != KindStorage {
		t.Errorf("NewStorageError kind = %v, want %v", err.Kind, KindStorage)
	}
	if err.Message != "storage operation failed: write task file" {
		t.Errorf("NewStorageError message = %v", err.Message)
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("NewStorageError code = %v, want %v", err.Code, "STORAGE_ERROR")
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewStorageError should wrap its cause")
	}
	if err.Context["operation"] != "write task file" || err.Context["location"] != "/tmp/tasks.json" {
		t.Errorf("NewStorageError context = %v", err.Context)
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("id", "abc", "must be a number")

	if err.Kind != KindInvalidInput {
		t.Errorf("NewInvalidInputError kind = %v, want %v", err.Kind, KindInvalidInput)
	}
	if err.Message != "invalid input for id: must be a number" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}
	if err.Context["value"] != "abc" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", NewNotFoundError("task file", "x"))

	if !IsNotFound(wrapped) {
		t.Errorf("IsNotFound should see through wrapping")
	}
	if IsNotFound(NewStorageError("read", nil)) {
		t.Errorf("IsNotFound should be false for storage errors")
	}
	if IsKind(errors.New("plain"), KindStorage) {
		t.Errorf("IsKind should be false for plain errors")
	}
	if !IsKind(NewInvalidInputError("view", "soon", "unknown view"), KindInvalidInput) {
		t.Errorf("IsKind should match the error kind")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Invalid input error", NewInvalidInputError("command", "start", "unknown command"), "invalid input for command: unknown command"},
		{"Not found error", NewNotFoundError("task", "7"), "task not found: 7"},
		{"Storage error", NewStorageError("read", errors.New("eof")), "The task file could not be accessed. Please check its location and permissions."},
		{"Unknown kind", &AppError{Kind: Kind("other"), Message: "internal"}, "An unexpected error occurred. Please try again."},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := GetUserMessage(tt.err); result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Not found error", NewNotFoundError("task", "1"), false},
		{"Invalid input error", NewInvalidInputError("view", "soon", "unknown view"), false},
		{"Storage error", NewStorageError("write", errors.New("disk full")), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ShouldLogError(tt.err); result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(NewStorageError("read", nil)) != "STORAGE_ERROR" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestLogFields(t *testing.T) {
	err := NewStorageError("read task file", errors.New("eof")).WithContext("location", "/tmp/tasks.json")

	fields := LogFields(fmt.Errorf("load: %w", err))
	if fields["code"] != "STORAGE_ERROR" || fields["operation"] != "read task file" || fields["location"] != "/tmp/tasks.json" {
		t.Errorf("LogFields() = %v", fields)
	}
	if err.Context["code"] != nil {
		t.Errorf("LogFields should not modify the error context")
	}

	plain := LogFields(errors.New("plain"))
	if len(plain) != 1 || plain["code"] != "UNKNOWN_ERROR" {
		t.Errorf("LogFields() for plain error = %v", plain)
	}
}
