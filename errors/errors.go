package errors

import (
	"errors"
	"fmt"
)

// ValidationError reports bad user input. It is returned to the caller and
// never persisted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

var (
	ErrEmptyDescription = NewValidationError("description must not be empty")
	ErrInvalidAmount    = NewValidationError("amount must be a finite number greater than or equal to zero")
	ErrInvalidType      = NewValidationError("type must be 'receita' or 'despesa'")
	ErrInvalidCategory  = NewValidationError("unknown category")
	ErrEmptyHabitTitle  = NewValidationError("habit title must not be empty")
)

// StorageReadError wraps a stored value that could not be decoded. Callers
// recover from it by substituting the slice default.
type StorageReadError struct {
	Key string
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("read %q: %v", e.Key, e.Err)
}

func (e *StorageReadError) Unwrap() error {
	return e.Err
}

func IsStorageReadError(err error) bool {
	var readError *StorageReadError
	return errors.As(err, &readError)
}

// AdviceRequestError wraps any failure of the advice generator. It never
// leaves the advisor package.
type AdviceRequestError struct {
	Err error
}

func (e *AdviceRequestError) Error() string {
	return fmt.Sprintf("advice request: %v", e.Err)
}

func (e *AdviceRequestError) Unwrap() error {
	return e.Err
}

// ErrEmptyAdvice is reported when the generator succeeds with no text.
var ErrEmptyAdvice = errors.New("empty advice")
