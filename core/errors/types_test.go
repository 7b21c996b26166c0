package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "article",
		ID:       "123",
	}

	expected := "article not found: 123"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "url",
		Message: "invalid URL format",
	}

	expected := "validation error on field 'url': invalid URL format"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestStorageError_Error(t *testing.T) {
	err := &StorageError{
		Op:  "write",
		Err: errors.New("disk full"),
	}

	expected := "storage write failed: disk full"
	if err.Error() != expected {
		t.Errorf("StorageError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := &StorageError{Op: "read", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("StorageError should unwrap to the underlying error")
	}
}

func TestIsNotFound_True(t *testing.T) {
	err := &NotFoundError{
		Resource: "article",
		ID:       "abc",
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestIsNotFound_False(t *testing.T) {
	err := errors.New("some other error")

	if IsNotFound(err) {
		t.Error("IsNotFound should return false for non-NotFoundError")
	}
}

func TestIsNotFound_WrappedError(t *testing.T) {
	notFound := &NotFoundError{
		Resource: "article",
		ID:       "123",
	}
	wrapped := fmt.Errorf("failed to update article: %w", notFound)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
}

func TestIsValidation_True(t *testing.T) {
	err := &ValidationError{
		Field:   "url",
		Message: "invalid URL",
	}

	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
}

func TestIsValidation_False(t *testing.T) {
	err := errors.New("some other error")

	if IsValidation(err) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsStorage_True(t *testing.T) {
	err := &StorageError{
		Op:  "write",
		Err: errors.New("write failed"),
	}

	if !IsStorage(err) {
		t.Error("IsStorage should return true for StorageError")
	}
}

func TestIsStorage_False(t *testing.T) {
	err := errors.New("some other error")

	if IsStorage(err) {
		t.Error("IsStorage should return false for non-StorageError")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &NotFoundError{Resource: "article", ID: "abc"}
	wrappedErr := WrapError(originalErr, "failed to delete article")

	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}

	// Check error message contains both context and original error
	expectedMsg := "failed to delete article: article not found: abc"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}

	// Should still be identifiable as NotFoundError
	if !IsNotFound(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as NotFoundError")
	}
}

func TestWrapError_AddsContextMessage(t *testing.T) {
	originalErr := errors.New("network timeout")
	wrappedErr := WrapError(originalErr, "persistence call failed")

	expected := "persistence call failed: network timeout"
	if wrappedErr.Error() != expected {
		t.Errorf("WrapError = %v, want %v", wrappedErr.Error(), expected)
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	wrappedErr := WrapError(nil, "this should not happen")

	if wrappedErr != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
