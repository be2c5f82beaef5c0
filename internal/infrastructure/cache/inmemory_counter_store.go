package cache

import (
	"context"
	"sync"
	"time"
)

type counter struct {
	value     int64
	expiresAt time.Time
}

// InMemoryCounterStore implements CounterStore using an in-memory map.
// State is per process; use it for single-instance deployments and tests.
type InMemoryCounterStore struct {
	mu        sync.Mutex
	counters  map[string]counter
	now       func() time.Time
	interval  time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// InMemoryOption configures an InMemoryCounterStore
type InMemoryOption func(*InMemoryCounterStore)

// WithClock overrides the time source
func WithClock(now func() time.Time) InMemoryOption {
	return func(s *InMemoryCounterStore) {
		s.now = now
	}
}

// WithCleanupInterval sets how often expired counters are purged
func WithCleanupInterval(d time.Duration) InMemoryOption {
	return func(s *InMemoryCounterStore) {
		s.interval = d
	}
}

// NewInMemoryCounterStore creates a new in-memory counter store.
// It starts a background goroutine to purge expired counters.
func NewInMemoryCounterStore(opts ...InMemoryOption) *InMemoryCounterStore {
	s := &InMemoryCounterStore{
		counters: make(map[string]counter),
		now:      time.Now,
		interval: time.Minute,
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

// Get returns the current counter value
func (s *InMemoryCounterStore) Get(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[key]
	if !ok || !s.now().Before(c.expiresAt) {
		return 0, nil
	}
	return c.value, nil
}

// Increment adds one to the counter; an expired counter restarts at 1 with a fresh TTL
func (s *InMemoryCounterStore) Increment(_ context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c, ok := s.counters[key]
	if !ok || !now.Before(c.expiresAt) {
		c = counter{expiresAt: now.Add(ttl)}
	}
	c.value++
	s.counters[key] = c
	return c.value, nil
}

// Len returns the number of live counters
func (s *InMemoryCounterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for _, c := range s.counters {
		if now.Before(c.expiresAt) {
			n++
		}
	}
	return n
}

// Close stops the cleanup goroutine
func (s *InMemoryCounterStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
	return nil
}

func (s *InMemoryCounterStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *InMemoryCounterStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, c := range s.counters {
		if !now.Before(c.expiresAt) {
			delete(s.counters, key)
		}
	}
}

// Ensure InMemoryCounterStore implements CounterStore
var _ CounterStore = (*InMemoryCounterStore)(nil)
