package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedValue is returned by GetJSON when a stored value cannot be
// decoded. Containers treat it as an absent snapshot and fall back to their
// defaults instead of propagating it.
var ErrMalformedValue = errors.New("malformed stored value")

// Repository defines the interface for durable key-value snapshot storage.
// Values are opaque byte slices; the store layer keeps them JSON-encoded.
// Writes are synchronous: when Put returns, the snapshot is durable.
type Repository interface {
	// Get retrieves the value stored under key.
	// Returns the value and true if present, or nil and false if absent.
	// Returns an error if the operation fails.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	// Returns an error if the operation fails.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key.
	// Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the repository.
	// Returns an error if cleanup fails.
	Close() error
}

// RepositoryFactory is a function that creates a new Repository instance.
// Returns an error if initialization fails.
type RepositoryFactory func() (Repository, error)

// GetJSON reads the value under key and unmarshals it into v.
// Returns false if the key is absent. A malformed value is returned as an
// error; callers that implement snapshot semantics substitute their default
// instead of propagating it.
func GetJSON(ctx context.Context, repo Repository, key string, v any) (bool, error) {
	raw, ok, err := repo.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %q: %w", key, err)
	}

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, errors.Join(ErrMalformedValue, fmt.Errorf("unmarshal %q: %w", key, err))
	}

	return true, nil
}

// PutJSON marshals v and stores it under key.
func PutJSON(ctx context.Context, repo Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}

	if err := repo.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}

	return nil
}
