package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"quiz-taker-service/internal/config"
	"quiz-taker-service/internal/infra/file"
	pgstore "quiz-taker-service/internal/infra/postgres"
)

// NewImportCmd copies quizzes from a YAML fixture file into Postgres.
func NewImportCmd(configPath *string) *cobra.Command {
	var fixtures string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import quiz fixtures into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), *configPath, fixtures)
		},
	}
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "YAML fixture file (defaults to quiz.fixtures from config)")
	return cmd
}

func runImport(ctx context.Context, configPath, fixtures string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if fixtures == "" {
		fixtures = cfg.Quiz.Fixtures
	}
	if fixtures == "" {
		return fmt.Errorf("no fixture file given")
	}
	loader, err := file.NewQuizLoader(fixtures)
	if err != nil {
		return err
	}

	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}
	db, err := openBunDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	writer := pgstore.NewQuizWriter(db)
	for _, quiz := range loader.Quizzes() {
		if err := writer.Upsert(ctx, quiz); err != nil {
			return err
		}
		log.Printf("imported quiz %s (%d questions)", quiz.ID, len(quiz.Questions))
	}
	return nil
}
