package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweepThreshold aşıldığında Incr sırasında süresi geçmiş pencereler
// temizlenir.
const sweepThreshold = 4096

type windowEntry struct {
	count   int64
	resetAt time.Time
}

// MemoryStore süreç içi sabit pencere sayacı. Saat enjekte edilebilir,
// testler sahte saat ile pencere geçişini doğrular.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

// NewMemoryStore gerçek saatle bir MemoryStore kurar.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock verilen saat fonksiyonuyla bir MemoryStore kurar.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*windowEntry),
		now:     now,
	}
}

// Incr Store arayüzünü uygular.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		entry = &windowEntry{resetAt: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++

	if len(s.entries) > sweepThreshold {
		s.sweepLocked(now)
	}
	return entry.count, entry.resetAt, nil
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	for key, entry := range s.entries {
		if !now.Before(entry.resetAt) {
			delete(s.entries, key)
		}
	}
}
