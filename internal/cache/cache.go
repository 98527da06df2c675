// Package cache provides the process-local response cache for upstream
// API payloads. Entries expire by TTL only; there is no size-based
// eviction, which is acceptable for a short-lived stateless process.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	data    any
	expires time.Time
}

// Store keeps a thread-safe map of keyed payloads with per-entry expiry.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewStore constructs an empty Store using the wall clock.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock constructs a Store with an injectable clock for tests.
func NewStoreWithClock(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		entries: make(map[string]entry),
		now:     now,
	}
}

// Get returns the cached payload if present and not expired.
// Expired entries are discarded, never returned.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !s.now().Before(e.expires) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}
	return e.data, true
}

// Set stores a payload under key for ttl from now. A nil payload is a
// valid cacheable value ("no data" responses are cached too).
func (s *Store) Set(key string, data any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{data: data, expires: s.now().Add(ttl)}
}

// Len returns the number of entries currently held, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
