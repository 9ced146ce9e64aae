package redis

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"quiz-taker-service/internal/app"
)

// AttemptStore is a Redis-aware implementation of app.AttemptRepository.
// Notes:
//   - Attempts and their answers stay in process memory; answers are never written to Redis.
//   - Redis holds a liveness key per attempt with a TTL that is refreshed on every access.
//     Once the key expires the attempt counts as abandoned and is dropped locally.
//   - Local entries idle for longer than the TTL are swept on Save, so attempts nobody
//     touches again do not pile up in memory.
type AttemptStore struct {
	client   *redis.Client
	ttl      time.Duration
	clock    func() time.Time
	mu       sync.Mutex
	attempts map[string]*localAttempt
}

type localAttempt struct {
	attempt  *app.Attempt
	lastSeen time.Time
}

func NewAttemptStore(client *redis.Client, ttl time.Duration) *AttemptStore {
	return &AttemptStore{
		client:   client,
		ttl:      ttl,
		clock:    time.Now,
		attempts: make(map[string]*localAttempt),
	}
}

func (s *AttemptStore) Save(attempt *app.Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	s.sweep(now)
	s.attempts[attempt.ID()] = &localAttempt{attempt: attempt, lastSeen: now}
	// best-effort liveness marker
	if err := s.client.Set(context.Background(), s.key(attempt.ID()), attempt.QuizID(), s.ttl).Err(); err != nil {
		log.Printf("mark attempt %s live: %v", attempt.ID(), err)
	}
}

func (s *AttemptStore) Get(attemptID string) (*app.Attempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.attempts[attemptID]
	if !ok {
		return nil, false
	}
	if s.ttl <= 0 {
		return entry.attempt, true
	}
	now := s.clock()
	if s.idle(entry, now) {
		s.drop(attemptID)
		return nil, false
	}
	refreshed, err := s.client.Expire(context.Background(), s.key(attemptID), s.ttl).Result()
	if err != nil {
		// redis unreachable: keep serving the local attempt
		log.Printf("refresh attempt %s: %v", attemptID, err)
		entry.lastSeen = now
		return entry.attempt, true
	}
	if !refreshed {
		delete(s.attempts, attemptID)
		return nil, false
	}
	entry.lastSeen = now
	return entry.attempt, true
}

func (s *AttemptStore) Delete(attemptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(attemptID)
}

// Len reports how many attempts are held locally.
func (s *AttemptStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep(s.clock())
	return len(s.attempts)
}

func (s *AttemptStore) idle(entry *localAttempt, now time.Time) bool {
	return s.ttl > 0 && now.Sub(entry.lastSeen) >= s.ttl
}

// sweep must be called with mu held.
func (s *AttemptStore) sweep(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, entry := range s.attempts {
		if s.idle(entry, now) {
			s.drop(id)
		}
	}
}

func (s *AttemptStore) drop(attemptID string) {
	delete(s.attempts, attemptID)
	_ = s.client.Del(context.Background(), s.key(attemptID)).Err()
}

func (s *AttemptStore) key(attemptID string) string {
	return "quiz:attempt:" + attemptID
}
