package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"quiz-taker-service/internal/app"
	"quiz-taker-service/internal/config"
	"quiz-taker-service/internal/explain"
	"quiz-taker-service/internal/infra/file"
	"quiz-taker-service/internal/infra/memory"
	pgloader "quiz-taker-service/internal/infra/postgres"
	rediscache "quiz-taker-service/internal/infra/redis"
	transport "quiz-taker-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	service, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	server := &http.Server{
		Addr: ":" + finalPort,
		Handler: transport.NewRouter(service, transport.RouterOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestLogging: true,
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildService picks the quiz source (Postgres, fixture file, or the built-in sample) and
// the cache/attempt stores (Redis when configured, memory otherwise).
func buildService(ctx context.Context, cfg config.Config) (*app.AttemptService, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var loader memory.QuizLoader = memory.NewStaticQuizLoader(memory.SampleQuizzes())
	switch {
	case cfg.Postgres.URL != "":
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, pool.Close)
		loader = pgloader.NewQuizLoader(pool)
	case cfg.Quiz.Fixtures != "":
		fileLoader, err := file.NewQuizLoader(cfg.Quiz.Fixtures)
		if err != nil {
			return nil, cleanup, err
		}
		loader = fileLoader
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	attemptTTL := config.TTLDuration(cfg.Attempt.TTL, config.TTLDuration(cfg.Redis.TTL, 30*time.Minute))

	var quizRepo app.QuizRepository
	var attempts app.AttemptRepository
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = redisClient.Close() })
		quizRepo = rediscache.NewQuizRepository(redisClient, loader, quizTTL)
		attempts = rediscache.NewAttemptStore(redisClient, attemptTTL)
	} else {
		quizRepo = memory.NewQuizRepository(loader, quizTTL)
		attempts = memory.NewAttemptStore(attemptTTL)
	}

	return app.NewAttemptService(attempts, quizRepo, explain.Sample{}), cleanup, nil
}
