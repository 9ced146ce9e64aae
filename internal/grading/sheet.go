package grading

import (
	"fmt"
	"strings"

	"quiz-taker-service/internal/domain"
)

// rule is the per-variant behaviour of a question: how answer events mutate the
// recorded values and whether the recorded values earn the point.
type rule interface {
	record(answers Answers, questionID, value string) error
	correct(answers Answers, questionID string) bool
}

// Sheet is a validated quiz compiled into one rule per question.
type Sheet struct {
	quiz  domain.Quiz
	rules map[string]rule
}

// NewSheet validates the quiz and compiles its questions.
func NewSheet(quiz domain.Quiz) (*Sheet, error) {
	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	rules := make(map[string]rule, len(quiz.Questions))
	for _, q := range quiz.Questions {
		r, err := compile(q)
		if err != nil {
			return nil, fmt.Errorf("%w: question %q: %v", domain.ErrInvalidQuiz, q.ID, err)
		}
		rules[q.ID] = r
	}
	return &Sheet{quiz: quiz, rules: rules}, nil
}

func compile(q domain.Question) (rule, error) {
	switch q.Type {
	case domain.SingleChoice:
		return singleChoice{question: q}, nil
	case domain.Binary:
		return binary{correctAnswer: q.CorrectAnswer}, nil
	case domain.FreeText:
		return freeText{correctAnswer: q.CorrectAnswer}, nil
	case domain.MultiSelect:
		return newMultiSelect(q), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownQuestionType, q.Type)
	}
}

// Quiz returns the quiz the sheet was compiled from.
func (s *Sheet) Quiz() domain.Quiz {
	return s.quiz
}

// Record applies one answer-change event. Unknown questions are rejected and leave
// answers untouched.
func (s *Sheet) Record(answers Answers, questionID, value string) error {
	r, ok := s.rules[questionID]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrQuestionNotFound, questionID)
	}
	return r.record(answers, questionID, value)
}

// Grade scores every question in quiz order. It does not modify answers.
func (s *Sheet) Grade(answers Answers) (int, []domain.QuestionResult) {
	score := 0
	results := make([]domain.QuestionResult, 0, len(s.quiz.Questions))
	for _, q := range s.quiz.Questions {
		ok := s.rules[q.ID].correct(answers, q.ID)
		if ok {
			score++
		}
		results = append(results, domain.QuestionResult{
			QuestionID: q.ID,
			Answered:   len(answers[q.ID]) > 0,
			Correct:    ok,
		})
	}
	return score, results
}

// Score returns the number of questions that earned their point.
func (s *Sheet) Score(answers Answers) int {
	score, _ := s.Grade(answers)
	return score
}

// Score compiles quiz and scores answers against it. It fails with domain.ErrInvalidQuiz
// when the quiz does not validate, which includes a quiz without questions.
func Score(quiz domain.Quiz, answers Answers) (int, error) {
	sheet, err := NewSheet(quiz)
	if err != nil {
		return 0, err
	}
	return sheet.Score(answers), nil
}

type singleChoice struct {
	question domain.Question
}

func (r singleChoice) record(answers Answers, questionID, value string) error {
	option, err := optionText(r.question, value)
	if err != nil {
		return err
	}
	answers.Replace(questionID, option)
	return nil
}

func (r singleChoice) correct(answers Answers, questionID string) bool {
	last, ok := answers.Last(questionID)
	return ok && last == r.question.CorrectAnswer
}

// optionText maps a submitted value to the option it names, so that recorded values
// always spell the option the same way.
func optionText(q domain.Question, value string) (string, error) {
	i, ok := q.OptionIndex(value)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrOptionNotFound, value)
	}
	return q.Options[i].Text, nil
}

type binary struct {
	correctAnswer string
}

func (r binary) record(answers Answers, questionID, value string) error {
	if value != domain.BinaryTrue && value != domain.BinaryFalse {
		return fmt.Errorf("%w: binary answer must be %s or %s, got %q",
			domain.ErrInvalidAnswer, domain.BinaryTrue, domain.BinaryFalse, value)
	}
	answers.Replace(questionID, value)
	return nil
}

func (r binary) correct(answers Answers, questionID string) bool {
	last, ok := answers.Last(questionID)
	return ok && last == r.correctAnswer
}

// freeText events carry the whole current content of the input box.
type freeText struct {
	correctAnswer string
}

func (r freeText) record(answers Answers, questionID, value string) error {
	if strings.TrimSpace(value) == "" {
		answers.Clear(questionID)
		return nil
	}
	answers.Replace(questionID, value)
	return nil
}

func (r freeText) correct(answers Answers, questionID string) bool {
	last, ok := answers.Last(questionID)
	return ok && last == r.correctAnswer
}

type multiSelect struct {
	question   domain.Question
	correctSet map[string]struct{}
}

func newMultiSelect(q domain.Question) multiSelect {
	set := make(map[string]struct{})
	for _, opt := range q.Options {
		if opt.IsCorrect {
			set[strings.TrimSpace(opt.Text)] = struct{}{}
		}
	}
	return multiSelect{question: q, correctSet: set}
}

func (r multiSelect) record(answers Answers, questionID, value string) error {
	option, err := optionText(r.question, value)
	if err != nil {
		return err
	}
	answers.Toggle(questionID, option)
	return nil
}

func (r multiSelect) correct(answers Answers, questionID string) bool {
	values := answers[questionID]
	selected := make(map[string]struct{}, len(values))
	for _, v := range values {
		selected[strings.TrimSpace(v)] = struct{}{}
	}
	if len(selected) != len(r.correctSet) {
		return false
	}
	for v := range selected {
		if _, ok := r.correctSet[v]; !ok {
			return false
		}
	}
	return true
}
