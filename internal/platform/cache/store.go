package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/esports-club/internal/platform/resilience"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process TTL map. A non-positive ttl keeps entries forever.
// Expired entries are swept on Set at most once per ttl, so keys that are
// never read again do not accumulate.
type Store[V any] struct {
	mu        sync.RWMutex
	entries   map[string]entry[V]
	ttl       time.Duration
	nextSweep time.Time
	flight    resilience.SingleFlight[V]
	now       func() time.Time
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if s.ttl > 0 && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		if current, ok := s.entries[key]; ok && current.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return zero, false
	}

	return e.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	now := s.now()
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	if s.ttl > 0 && !now.Before(s.nextSweep) {
		s.sweepLocked(now)
	}
	s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

func (s *Store[V]) sweepLocked(now time.Time) {
	for key, e := range s.entries {
		if !e.expiresAt.After(now) {
			delete(s.entries, key)
		}
	}
	s.nextSweep = now.Add(s.ttl)
}

func (s *Store[V]) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value for key or runs loader once across
// concurrent callers. Loader errors are returned and never cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (V, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return zero, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	return value, nil
}
