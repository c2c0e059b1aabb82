package verification

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCodeNotFound is returned when no live code exists for an email.
var ErrCodeNotFound = errors.New("verification code not found")

// CodeStore is a short-lived key-value store for verification codes. Entries
// expire on their own; Delete makes consumption single-use.
type CodeStore interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

type memoryEntry struct {
	code   string
	expiry time.Time
}

// MemoryStore is an in-process CodeStore for tests and single-node dev runs.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = memoryEntry{code: code, expiry: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[email]
	if !ok {
		return "", ErrCodeNotFound
	}
	if s.now().After(entry.expiry) {
		delete(s.entries, email)
		return "", ErrCodeNotFound
	}
	return entry.code, nil
}

func (s *MemoryStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}
