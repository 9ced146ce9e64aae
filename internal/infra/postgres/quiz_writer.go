package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"quiz-taker-service/internal/domain"
)

type quizRow struct {
	bun.BaseModel `bun:"table:quizzes"`

	ID        string      `bun:"id,pk"`
	Data      domain.Quiz `bun:"data,type:jsonb"`
	CreatedAt time.Time   `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// QuizWriter stores quiz content for the loader to read.
type QuizWriter struct {
	db *bun.DB
}

func NewQuizWriter(db *bun.DB) *QuizWriter {
	return &QuizWriter{db: db}
}

// Upsert validates the quiz and inserts or replaces it.
func (w *QuizWriter) Upsert(ctx context.Context, quiz domain.Quiz) error {
	if err := quiz.Validate(); err != nil {
		return err
	}
	row := &quizRow{ID: quiz.ID, Data: quiz}
	_, err := w.db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert quiz %s: %w", quiz.ID, err)
	}
	return nil
}
