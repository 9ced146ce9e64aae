package file

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"quiz-taker-service/internal/domain"
)

// Document is the layout of a quiz fixture file.
type Document struct {
	Quizzes []domain.Quiz `yaml:"quizzes"`
}

// QuizLoader serves quizzes read from a YAML fixture file. The file is read once.
type QuizLoader struct {
	quizzes map[string]domain.Quiz
}

// NewQuizLoader reads and indexes the fixture at path.
func NewQuizLoader(path string) (*QuizLoader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read fixtures: %v", domain.ErrQuizUnavailable, err)
	}
	return ParseQuizzes(data)
}

// ParseQuizzes indexes the quizzes in a YAML document by ID.
func ParseQuizzes(data []byte) (*QuizLoader, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse fixtures: %v", domain.ErrInvalidQuiz, err)
	}
	quizzes := make(map[string]domain.Quiz, len(doc.Quizzes))
	for i, quiz := range doc.Quizzes {
		if quiz.ID == "" {
			return nil, fmt.Errorf("%w: quiz %d has no id", domain.ErrInvalidQuiz, i)
		}
		if _, dup := quizzes[quiz.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate quiz id %q", domain.ErrInvalidQuiz, quiz.ID)
		}
		quizzes[quiz.ID] = quiz
	}
	return &QuizLoader{quizzes: quizzes}, nil
}

func (l *QuizLoader) LoadQuiz(_ context.Context, quizID string) (domain.Quiz, error) {
	quiz, ok := l.quizzes[quizID]
	if !ok {
		return domain.Quiz{}, fmt.Errorf("%w: %s", domain.ErrQuizNotFound, quizID)
	}
	return quiz, nil
}

// Quizzes returns every quiz in the fixture.
func (l *QuizLoader) Quizzes() []domain.Quiz {
	out := make([]domain.Quiz, 0, len(l.quizzes))
	for _, quiz := range l.quizzes {
		out = append(out, quiz)
	}
	return out
}
