package domain

import "errors"

var (
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizUnavailable is returned when the content provider failed for reasons other than a missing quiz.
	ErrQuizUnavailable = errors.New("quiz content unavailable")
	// ErrInvalidQuiz marks quiz content that does not satisfy the data model.
	ErrInvalidQuiz = errors.New("invalid quiz")
	// ErrQuestionNotFound indicates a submitted question ID is invalid.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrOptionNotFound indicates a submitted value does not name an option of the question.
	ErrOptionNotFound = errors.New("option not found")
	// ErrInvalidAnswer indicates a value the question type cannot accept.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrUnknownQuestionType is returned when parsing an unsupported question type tag.
	ErrUnknownQuestionType = errors.New("unknown question type")
	// ErrAttemptNotFound is returned when an attempt was never started or has been discarded.
	ErrAttemptNotFound = errors.New("attempt not found")
	// ErrAttemptSubmitted is returned when answers are recorded after submission.
	ErrAttemptSubmitted = errors.New("attempt already submitted")
)
