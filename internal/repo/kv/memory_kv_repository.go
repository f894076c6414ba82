package kv

import (
	"context"
	"sync"
)

// MemoryRepository implements Repository with an in-process map. Snapshots do
// not survive a restart; it backs tests and storage-less sessions.
type MemoryRepository struct {
	values map[string][]byte
	m      sync.Mutex
}

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepositoryFactory returns a factory producing fresh MemoryRepository
// instances. The factory function implements the RepositoryFactory type.
func MemoryRepositoryFactory() RepositoryFactory {
	return func() (Repository, error) {
		return NewMemoryRepository(), nil
	}
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		values: make(map[string][]byte),
	}
}

// Get implements Repository.Get.
func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, bool, error) {
	r.m.Lock()
	defer r.m.Unlock()

	value, ok := r.values[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, true, nil
}

// Put implements Repository.Put.
func (r *MemoryRepository) Put(_ context.Context, key string, value []byte) error {
	r.m.Lock()
	defer r.m.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	r.values[key] = stored

	return nil
}

// Delete implements Repository.Delete.
func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.m.Lock()
	defer r.m.Unlock()

	delete(r.values, key)

	return nil
}

// Close implements Repository.Close.
func (r *MemoryRepository) Close() error {
	return nil
}
