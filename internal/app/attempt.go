package app

import (
	"sync"
	"time"

	"quiz-taker-service/internal/domain"
	"quiz-taker-service/internal/grading"
)

// Attempt is one pass through a loaded quiz. It owns its answers; nothing is shared
// between attempts.
type Attempt struct {
	id        string
	sheet     *grading.Sheet
	startedAt time.Time
	now       func() time.Time

	mu      sync.Mutex
	answers grading.Answers
	report  *domain.ScoreReport
}

// NewAttempt is exported for infrastructure layers that need to seed attempts.
func NewAttempt(id string, sheet *grading.Sheet) *Attempt {
	return NewAttemptWithClock(id, sheet, time.Now)
}

// NewAttemptWithClock allows deterministic timestamps in tests.
func NewAttemptWithClock(id string, sheet *grading.Sheet, now func() time.Time) *Attempt {
	return &Attempt{
		id:        id,
		sheet:     sheet,
		startedAt: now(),
		now:       now,
		answers:   grading.Answers{},
	}
}

// ID returns the attempt identifier.
func (a *Attempt) ID() string {
	return a.id
}

// QuizID returns the ID of the quiz being taken.
func (a *Attempt) QuizID() string {
	return a.sheet.Quiz().ID
}

// StartedAt returns when the attempt was created.
func (a *Attempt) StartedAt() time.Time {
	return a.startedAt
}

func (a *Attempt) record(questionID, value string) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.report != nil {
		return nil, domain.ErrAttemptSubmitted
	}
	if err := a.sheet.Record(a.answers, questionID, value); err != nil {
		return nil, err
	}
	return a.answers.Values(questionID), nil
}

func (a *Attempt) submit() domain.ScoreReport {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.report != nil {
		return *a.report
	}
	score, results := a.sheet.Grade(a.answers)
	a.report = &domain.ScoreReport{
		AttemptID:   a.id,
		QuizID:      a.sheet.Quiz().ID,
		Score:       score,
		Total:       len(results),
		Results:     results,
		SubmittedAt: a.now(),
	}
	return *a.report
}

func (a *Attempt) snapshot() grading.Answers {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.answers.Clone()
}

// Submitted reports whether the attempt has been scored.
func (a *Attempt) Submitted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.report != nil
}
