package imagecache

import (
	"context"
)

// Repository defines the interface for the rendered-artwork cache. Entries
// are keyed by an opaque string (label, category and width) and hold encoded
// PNG bytes.
type Repository interface {
	// Fetch retrieves a cached rendering.
	// Returns the bytes and true if present, or nil and false if absent.
	Fetch(ctx context.Context, key string) ([]byte, bool, error)

	// Store persists a rendering under key, replacing any previous entry.
	Store(ctx context.Context, key string, data []byte) error
}

// RepositoryFactory is a function that creates a new Repository instance.
// Returns an error if initialization fails.
type RepositoryFactory func() (Repository, error)
