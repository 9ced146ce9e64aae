package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeLimit is shown to clients when a quiz does not set its own limit.
const DefaultTimeLimit = 300

// Option represents a possible answer for a question.
type Option struct {
	Text      string `json:"text" yaml:"text"`
	IsCorrect bool   `json:"isCorrect" yaml:"isCorrect"`
}

// Question is immutable once loaded. CorrectAnswer is unused for multi-select.
type Question struct {
	ID            string       `json:"id" yaml:"id"`
	Text          string       `json:"text" yaml:"text"`
	Type          QuestionType `json:"type" yaml:"type"`
	Options       []Option     `json:"options,omitempty" yaml:"options"`
	CorrectAnswer string       `json:"correctAnswer,omitempty" yaml:"correctAnswer"`
}

// Quiz is an ordered collection of questions; order is display and scoring order.
type Quiz struct {
	ID               string     `json:"id" yaml:"id"`
	Title            string     `json:"title" yaml:"title"`
	Description      string     `json:"description" yaml:"description"`
	TimeLimitSeconds int        `json:"timeLimitSeconds,omitempty" yaml:"timeLimitSeconds"`
	Questions        []Question `json:"questions" yaml:"questions"`
}

// Question returns the question with the given ID.
func (q Quiz) Question(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// Validate checks the quiz against the data model before any answers are accepted.
func (q Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: quiz %q has no questions", ErrInvalidQuiz, q.ID)
	}
	seen := make(map[string]struct{}, len(q.Questions))
	for i, question := range q.Questions {
		if question.ID == "" {
			return fmt.Errorf("%w: question %d has no id", ErrInvalidQuiz, i)
		}
		if _, dup := seen[question.ID]; dup {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidQuiz, question.ID)
		}
		seen[question.ID] = struct{}{}
		if err := question.validate(); err != nil {
			return fmt.Errorf("%w: question %q: %v", ErrInvalidQuiz, question.ID, err)
		}
	}
	return nil
}

func (q Question) validate() error {
	switch q.Type {
	case SingleChoice:
		if len(q.Options) == 0 {
			return fmt.Errorf("single-choice question needs options")
		}
		if !q.hasOption(q.CorrectAnswer) {
			return fmt.Errorf("correct answer %q is not an option", q.CorrectAnswer)
		}
	case Binary:
		if q.CorrectAnswer != BinaryTrue && q.CorrectAnswer != BinaryFalse {
			return fmt.Errorf("binary correct answer must be %s or %s", BinaryTrue, BinaryFalse)
		}
	case FreeText:
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			return fmt.Errorf("free-text question needs a correct answer")
		}
	case MultiSelect:
		if len(q.Options) == 0 {
			return fmt.Errorf("multi-select question needs options")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQuestionType, q.Type)
	}
	return nil
}

func (q Question) hasOption(text string) bool {
	for _, opt := range q.Options {
		if opt.Text == text {
			return true
		}
	}
	return false
}

// OptionIndex finds the option whose trimmed text equals the trimmed value.
func (q Question) OptionIndex(value string) (int, bool) {
	value = strings.TrimSpace(value)
	for i, opt := range q.Options {
		if strings.TrimSpace(opt.Text) == value {
			return i, true
		}
	}
	return -1, false
}

// PublicOption is an option without its correctness flag.
type PublicOption struct {
	Text string `json:"text"`
}

// PublicQuestion is what clients see; the answer key is stripped.
type PublicQuestion struct {
	ID      string         `json:"id"`
	Text    string         `json:"text"`
	Type    QuestionType   `json:"type"`
	Options []PublicOption `json:"options,omitempty"`
}

// PublicQuiz is a quiz safe to send to the quiz taker.
type PublicQuiz struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	TimeLimitSeconds int              `json:"timeLimitSeconds"`
	Questions        []PublicQuestion `json:"questions"`
}

// Public strips correctness data. Binary questions expose the implicit True/False options
// and free-text questions expose none.
func (q Quiz) Public() PublicQuiz {
	limit := q.TimeLimitSeconds
	if limit <= 0 {
		limit = DefaultTimeLimit
	}
	out := PublicQuiz{
		ID:               q.ID,
		Title:            q.Title,
		Description:      q.Description,
		TimeLimitSeconds: limit,
		Questions:        make([]PublicQuestion, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		pq := PublicQuestion{ID: question.ID, Text: question.Text, Type: question.Type}
		switch question.Type {
		case Binary:
			pq.Options = []PublicOption{{Text: BinaryTrue}, {Text: BinaryFalse}}
		case SingleChoice, MultiSelect:
			for _, opt := range question.Options {
				pq.Options = append(pq.Options, PublicOption{Text: opt.Text})
			}
		}
		out.Questions = append(out.Questions, pq)
	}
	return out
}

// QuestionResult records whether one question earned its point.
type QuestionResult struct {
	QuestionID string `json:"questionId"`
	Answered   bool   `json:"answered"`
	Correct    bool   `json:"correct"`
}

// ScoreReport is the outcome of a submitted attempt.
type ScoreReport struct {
	AttemptID   string           `json:"attemptId"`
	QuizID      string           `json:"quizId"`
	Score       int              `json:"score"`
	Total       int              `json:"total"`
	Results     []QuestionResult `json:"results"`
	SubmittedAt time.Time        `json:"submittedAt"`
}

// AttemptView is returned when an attempt starts.
type AttemptView struct {
	AttemptID string     `json:"attemptId"`
	Quiz      PublicQuiz `json:"quiz"`
	StartedAt time.Time  `json:"startedAt"`
}
