// Package cache provides the klines cache stores: an in-process map and an
// optional Redis-backed tier shared between server replicas.
package cache

import (
	"context"
	"sync"
	"time"

	"crypto_dashboard/internal/feature/candles/domain/entity"
	"crypto_dashboard/internal/feature/candles/usecase"
)

// MemoryStore keeps at most one entry per RequestKey in a map.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[entity.RequestKey]entity.CacheEntry
}

var _ usecase.CacheStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[entity.RequestKey]entity.CacheEntry)}
}

// Get returns the entry for key, if any. Freshness is the caller's decision.
func (s *MemoryStore) Get(_ context.Context, key entity.RequestKey) (entity.CacheEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok
}

// Put replaces the entry for key. Last write wins.
func (s *MemoryStore) Put(_ context.Context, key entity.RequestKey, payload []entity.Candle, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entity.CacheEntry{Payload: payload, FetchedAt: now}
}

// Sweep removes every entry older than maxAge at now and returns how many
// were removed. Entries exactly maxAge old survive.
func (s *MemoryStore) Sweep(_ context.Context, now time.Time, maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for k, e := range s.entries {
		if e.Age(now) > maxAge {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries currently held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
