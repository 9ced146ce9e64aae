package memory

import "quiz-taker-service/internal/domain"

// HistoryQuizID identifies the built-in demo quiz.
const HistoryQuizID = "history-gk"

// SampleQuizzes is the content served when no fixture file or database is configured.
func SampleQuizzes() map[string]domain.Quiz {
	return map[string]domain.Quiz{
		HistoryQuizID: HistoryQuiz(),
	}
}

// HistoryQuiz covers every question type once.
func HistoryQuiz() domain.Quiz {
	return domain.Quiz{
		ID:               HistoryQuizID,
		Title:            "History GK Test",
		Description:      "History GK Test created by a@gmail.com",
		TimeLimitSeconds: domain.DefaultTimeLimit,
		Questions: []domain.Question{
			{
				ID:   "56",
				Text: "When was the 'Battle of Tukaroi' fought?",
				Type: domain.SingleChoice,
				Options: []domain.Option{
					{Text: "1532"},
					{Text: "232"},
					{Text: "1575", IsCorrect: true},
					{Text: "1579"},
				},
				CorrectAnswer: "1575",
			},
			{
				ID:            "58",
				Text:          "Lion is king of the jungle",
				Type:          domain.Binary,
				CorrectAnswer: domain.BinaryTrue,
			},
			{
				ID:            "59",
				Text:          "There _____ a cat",
				Type:          domain.FreeText,
				CorrectAnswer: "was",
			},
			{
				ID:   "57",
				Text: "Which of the movies released in 2022?",
				Type: domain.MultiSelect,
				Options: []domain.Option{
					{Text: "ff", IsCorrect: true},
					{Text: "ss"},
					{Text: "ee"},
					{Text: "ww", IsCorrect: true},
				},
			},
		},
	}
}
