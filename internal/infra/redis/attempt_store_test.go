package redis

import (
	"fmt"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"quiz-taker-service/internal/app"
	"quiz-taker-service/internal/grading"
	"quiz-taker-service/internal/infra/memory"
)

func TestAttemptStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewAttemptStore(newClient(mr), time.Minute)
	store.Save(app.NewAttempt("a1", historySheet(t)))
	if !mr.Exists("quiz:attempt:a1") {
		t.Fatalf("expected redis key to be set")
	}
	if got, _ := mr.Get("quiz:attempt:a1"); got != memory.HistoryQuizID {
		t.Fatalf("expected quiz id as key value, got %q", got)
	}

	if _, ok := store.Get("a1"); !ok {
		t.Fatalf("expected attempt present")
	}

	store.Delete("a1")
	if mr.Exists("quiz:attempt:a1") {
		t.Fatalf("expected redis key to be removed")
	}
	if _, ok := store.Get("a1"); ok {
		t.Fatalf("expected attempt removed")
	}
}

func TestAttemptStoreDropsExpiredAttempts(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewAttemptStore(newClient(mr), time.Minute)
	store.Save(app.NewAttempt("a1", historySheet(t)))

	mr.FastForward(30 * time.Second)
	if _, ok := store.Get("a1"); !ok {
		t.Fatalf("expected attempt alive before ttl")
	}
	// access refreshed the ttl, so another 45s keeps it alive
	mr.FastForward(45 * time.Second)
	if _, ok := store.Get("a1"); !ok {
		t.Fatalf("expected ttl refreshed on access")
	}

	mr.FastForward(2 * time.Minute)
	if _, ok := store.Get("a1"); ok {
		t.Fatalf("expected expired attempt to be dropped")
	}
}

func TestAttemptStoreSweepsIdleLocalAttempts(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	now := time.Date(2024, 11, 22, 10, 0, 0, 0, time.UTC)
	store := NewAttemptStore(newClient(mr), time.Minute)
	store.clock = func() time.Time { return now }
	sheet := historySheet(t)

	for i := 0; i < 100; i++ {
		store.Save(app.NewAttempt(fmt.Sprintf("a%d", i), sheet))
	}
	if store.Len() != 100 {
		t.Fatalf("expected 100 attempts, got %d", store.Len())
	}

	now = now.Add(2 * time.Minute)
	store.Save(app.NewAttempt("fresh", sheet))
	if store.Len() != 1 {
		t.Fatalf("expected idle attempts swept, got %d", store.Len())
	}
	if mr.Exists("quiz:attempt:a0") {
		t.Fatalf("expected liveness key of swept attempt removed")
	}
	if !mr.Exists("quiz:attempt:fresh") {
		t.Fatalf("expected liveness key of fresh attempt")
	}
}

func historySheet(t *testing.T) *grading.Sheet {
	t.Helper()
	sheet, err := grading.NewSheet(memory.HistoryQuiz())
	if err != nil {
		t.Fatalf("sheet: %v", err)
	}
	return sheet
}
