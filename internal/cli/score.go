package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"quiz-taker-service/internal/domain"
	"quiz-taker-service/internal/grading"
	"quiz-taker-service/internal/infra/file"
	"quiz-taker-service/internal/infra/memory"
)

// answerEvent is one line of an answers file: the same change event a client would send.
type answerEvent struct {
	QuestionID string `yaml:"questionId"`
	Value      string `yaml:"value"`
}

type answersFile struct {
	QuizID string        `yaml:"quizId"`
	Events []answerEvent `yaml:"events"`
}

// NewScoreCmd replays recorded answer events against a quiz offline.
func NewScoreCmd() *cobra.Command {
	var fixtures string
	cmd := &cobra.Command{
		Use:   "score ANSWERS_FILE",
		Short: "Score a YAML file of answer events against a quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := scoreFile(cmd.Context(), fixtures, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range report.Results {
				mark := "wrong"
				switch {
				case r.Correct:
					mark = "correct"
				case !r.Answered:
					mark = "unanswered"
				}
				fmt.Fprintf(out, "%-12s %s\n", r.QuestionID, mark)
			}
			fmt.Fprintf(out, "Score: %d / %d\n", report.Score, report.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "YAML fixture file (defaults to the built-in sample quiz)")
	return cmd
}

func scoreFile(ctx context.Context, fixtures, answersPath string) (domain.ScoreReport, error) {
	data, err := os.ReadFile(answersPath)
	if err != nil {
		return domain.ScoreReport{}, err
	}
	var af answersFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return domain.ScoreReport{}, fmt.Errorf("parse answers: %w", err)
	}
	if af.QuizID == "" {
		af.QuizID = memory.HistoryQuizID
	}

	var loader memory.QuizLoader = memory.NewStaticQuizLoader(memory.SampleQuizzes())
	if fixtures != "" {
		if loader, err = file.NewQuizLoader(fixtures); err != nil {
			return domain.ScoreReport{}, err
		}
	}
	quiz, err := loader.LoadQuiz(ctx, af.QuizID)
	if err != nil {
		return domain.ScoreReport{}, err
	}
	sheet, err := grading.NewSheet(quiz)
	if err != nil {
		return domain.ScoreReport{}, err
	}

	answers := grading.Answers{}
	for i, ev := range af.Events {
		if err := sheet.Record(answers, ev.QuestionID, ev.Value); err != nil {
			return domain.ScoreReport{}, fmt.Errorf("event %d: %w", i+1, err)
		}
	}
	score, results := sheet.Grade(answers)
	return domain.ScoreReport{QuizID: quiz.ID, Score: score, Total: len(results), Results: results}, nil
}
