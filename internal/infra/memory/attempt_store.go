package memory

import (
	"sync"
	"time"

	"quiz-taker-service/internal/app"
)

// AttemptStore is an in-memory implementation of app.AttemptRepository.
// An attempt not accessed for ttl is dropped; expired entries are swept on Save.
// A ttl <= 0 keeps attempts until they are deleted.
type AttemptStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	clock    func() time.Time
	attempts map[string]*storedAttempt
}

type storedAttempt struct {
	attempt  *app.Attempt
	lastSeen time.Time
}

func NewAttemptStore(ttl time.Duration) *AttemptStore {
	return &AttemptStore{
		ttl:      ttl,
		clock:    time.Now,
		attempts: make(map[string]*storedAttempt),
	}
}

func (s *AttemptStore) Save(attempt *app.Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	s.sweep(now)
	s.attempts[attempt.ID()] = &storedAttempt{attempt: attempt, lastSeen: now}
}

func (s *AttemptStore) Get(attemptID string) (*app.Attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.attempts[attemptID]
	if !ok {
		return nil, false
	}
	now := s.clock()
	if s.expired(entry, now) {
		delete(s.attempts, attemptID)
		return nil, false
	}
	entry.lastSeen = now
	return entry.attempt, true
}

func (s *AttemptStore) Delete(attemptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, attemptID)
}

// Len reports how many live attempts are held.
func (s *AttemptStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep(s.clock())
	return len(s.attempts)
}

func (s *AttemptStore) expired(entry *storedAttempt, now time.Time) bool {
	return s.ttl > 0 && now.Sub(entry.lastSeen) >= s.ttl
}

// sweep must be called with mu held.
func (s *AttemptStore) sweep(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, entry := range s.attempts {
		if s.expired(entry, now) {
			delete(s.attempts, id)
		}
	}
}
