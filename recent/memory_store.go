package recent

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	cache *cache.Cache
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	value, found := m.cache.Get(key)
	if !found {
		return "", false, nil
	}
	return value.(string), true, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.cache.Set(key, value, cache.NoExpiration)
	return nil
}
