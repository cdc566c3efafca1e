package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestIsValidationError(t *testing.T) {
	wrapped := fmt.Errorf("add transaction: %w", ErrEmptyDescription)
	if !IsValidationError(wrapped) {
		t.Fatal("expected wrapped validation error to be detected")
	}
	if IsValidationError(io.EOF) {
		t.Fatal("io.EOF is not a validation error")
	}
}

func TestStorageReadErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("load: %w", &StorageReadError{Key: "prospera_user", Err: io.ErrUnexpectedEOF})
	if !IsStorageReadError(err) {
		t.Fatal("expected storage read error")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatal("expected cause to be reachable")
	}
}

func TestAdviceRequestErrorUnwrap(t *testing.T) {
	err := &AdviceRequestError{Err: ErrEmptyAdvice}
	if !errors.Is(err, ErrEmptyAdvice) {
		t.Fatal("expected cause to be reachable")
	}
}
