package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	appErrors "prospera-go-be/errors"
)

// Keys of the four persisted state slices.
const (
	KeyProfile      = "prospera_user"
	KeyTransactions = "prospera_transactions"
	KeyLessons      = "prospera_lessons"
	KeyHabits       = "prospera_habits"
)

// Store serializes values as JSON on top of a Backend.
type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load decodes the value stored under key into dst. It reports false when the
// key is absent or holds JSON null. A value that does not decode yields a
// *errors.StorageReadError and leaves the caller to pick a default.
func (s *Store) Load(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.backend.Load(ctx, key)
	if err != nil {
		return false, &appErrors.StorageReadError{Key: key, Err: err}
	}
	raw = bytes.TrimSpace(raw)
	if !ok || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, &appErrors.StorageReadError{Key: key, Err: err}
	}
	return true, nil
}

func (s *Store) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.backend.Save(ctx, key, raw)
}

func (s *Store) Close() error {
	return s.backend.Close()
}
