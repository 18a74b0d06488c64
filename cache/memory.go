package cache

import (
	"fmt"
	"sync"
	"time"
)

// MemoryStorage implements Storage entirely in memory. Entries live only as
// long as the process does; it backs session-scoped caches (like the external
// event feed payload) that must never be persisted.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryStorage creates an empty in-memory cache storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		entries: make(map[string]*Entry),
	}
}

// Get retrieves a cached entry by key
func (ms *MemoryStorage) Get(key string) (*Entry, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	entry, exists := ms.entries[key]
	if !exists {
		return nil, fmt.Errorf("cache entry not found: %s", key)
	}

	// Return a copy so callers can't mutate the stored entry
	copied := Entry{
		Content:   append([]byte(nil), entry.Content...),
		Timestamp: entry.Timestamp,
	}
	return &copied, nil
}

// Set stores content in the cache with the current timestamp
func (ms *MemoryStorage) Set(key string, content []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.entries[key] = &Entry{
		Content:   append([]byte(nil), content...),
		Timestamp: time.Now(),
	}
	return nil
}

// IsExpired checks if a cache entry has exceeded the TTL
// A missing entry is considered expired
func (ms *MemoryStorage) IsExpired(key string, ttl time.Duration) (bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	entry, exists := ms.entries[key]
	if !exists {
		return true, nil
	}
	return time.Since(entry.Timestamp) > ttl, nil
}
