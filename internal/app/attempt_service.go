package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"quiz-taker-service/internal/domain"
	"quiz-taker-service/internal/explain"
	"quiz-taker-service/internal/grading"
)

// AttemptRepository abstracts where in-progress attempts live (in-memory, Redis, etc).
type AttemptRepository interface {
	Save(attempt *Attempt)
	Get(attemptID string) (*Attempt, bool)
	Delete(attemptID string)
}

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// AttemptService contains the quiz-taking use cases.
type AttemptService struct {
	attempts  AttemptRepository
	quizzes   QuizRepository
	explainer explain.Explainer
	newID     func() string
}

func NewAttemptService(attempts AttemptRepository, quizzes QuizRepository, explainer explain.Explainer) *AttemptService {
	if explainer == nil {
		explainer = explain.Sample{}
	}
	return &AttemptService{
		attempts:  attempts,
		quizzes:   quizzes,
		explainer: explainer,
		newID:     uuid.NewString,
	}
}

// Quiz returns the quiz without its answer key.
func (s *AttemptService) Quiz(ctx context.Context, quizID string) (domain.PublicQuiz, error) {
	sheet, err := s.load(ctx, quizID)
	if err != nil {
		return domain.PublicQuiz{}, err
	}
	return sheet.Quiz().Public(), nil
}

// Start loads and validates the quiz, then opens a fresh attempt with empty answers.
// No attempt exists if loading fails.
func (s *AttemptService) Start(ctx context.Context, quizID string) (domain.AttemptView, error) {
	sheet, err := s.load(ctx, quizID)
	if err != nil {
		return domain.AttemptView{}, err
	}
	attempt := NewAttempt(s.newID(), sheet)
	s.attempts.Save(attempt)
	return domain.AttemptView{
		AttemptID: attempt.ID(),
		Quiz:      sheet.Quiz().Public(),
		StartedAt: attempt.StartedAt(),
	}, nil
}

// RecordAnswer applies one answer-change event and returns the question's current values.
func (s *AttemptService) RecordAnswer(_ context.Context, attemptID, questionID, value string) ([]string, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return nil, domain.ErrAttemptNotFound
	}
	return attempt.record(questionID, value)
}

// Answers returns a copy of the attempt's answers.
func (s *AttemptService) Answers(_ context.Context, attemptID string) (grading.Answers, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return nil, domain.ErrAttemptNotFound
	}
	return attempt.snapshot(), nil
}

// Submit scores the attempt. The report is computed once; later calls return it unchanged.
func (s *AttemptService) Submit(_ context.Context, attemptID string) (domain.ScoreReport, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return domain.ScoreReport{}, domain.ErrAttemptNotFound
	}
	return attempt.submit(), nil
}

// Abandon discards the attempt and its answers.
func (s *AttemptService) Abandon(_ context.Context, attemptID string) {
	s.attempts.Delete(attemptID)
}

// Explain asks the explainer about one question of the attempt's quiz.
func (s *AttemptService) Explain(ctx context.Context, attemptID, questionID string) (string, error) {
	attempt, ok := s.attempts.Get(attemptID)
	if !ok {
		return "", domain.ErrAttemptNotFound
	}
	question, ok := attempt.sheet.Quiz().Question(questionID)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrQuestionNotFound, questionID)
	}
	return s.explainer.Explain(ctx, question.Text)
}

func (s *AttemptService) load(ctx context.Context, quizID string) (*grading.Sheet, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		if errors.Is(err, domain.ErrQuizNotFound) || errors.Is(err, domain.ErrQuizUnavailable) || errors.Is(err, domain.ErrInvalidQuiz) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrQuizUnavailable, err)
	}
	return grading.NewSheet(quiz)
}
