package integration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"quiz-taker-service/internal/app"
	"quiz-taker-service/internal/domain"
	"quiz-taker-service/internal/infra/memory"
	pgstore "quiz-taker-service/internal/infra/postgres"
	pgmigrations "quiz-taker-service/internal/infra/postgres/migrations"
	infraredis "quiz-taker-service/internal/infra/redis"
)

func TestAttemptEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedQuiz(t, ctx, pgURL, memory.HistoryQuiz())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgstore.NewQuizLoader(pool)
	if _, err := loader.LoadQuiz(ctx, "missing"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer redisClient.Close()

	quizRepo := infraredis.NewQuizRepository(redisClient, loader, 5*time.Minute)
	attempts := infraredis.NewAttemptStore(redisClient, 5*time.Minute)
	service := app.NewAttemptService(attempts, quizRepo, nil)

	view, err := service.Start(ctx, memory.HistoryQuizID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(view.Quiz.Questions) != 4 || view.Quiz.Questions[3].Type != domain.MultiSelect {
		t.Fatalf("quiz did not survive the jsonb round trip: %+v", view.Quiz)
	}

	events := [][2]string{
		{"56", "1575"},
		{"58", "True"},
		{"59", "was"},
		{"57", "ff"},
		{"57", "ww"},
	}
	for _, ev := range events {
		if _, err := service.RecordAnswer(ctx, view.AttemptID, ev[0], ev[1]); err != nil {
			t.Fatalf("record %v: %v", ev, err)
		}
	}

	report, err := service.Submit(ctx, view.AttemptID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if report.Score != 4 || report.Total != 4 {
		t.Fatalf("expected 4/4, got %d/%d", report.Score, report.Total)
	}

	cached, err := redisClient.Exists(ctx, "quiz:"+memory.HistoryQuizID+":content").Result()
	if err != nil || cached != 1 {
		t.Fatalf("expected quiz content cached in redis, got %d (%v)", cached, err)
	}

	service.Abandon(ctx, view.AttemptID)
	if _, err := service.Answers(ctx, view.AttemptID); !errors.Is(err, domain.ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound after abandon, got %v", err)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedQuiz(t *testing.T, ctx context.Context, dsn string, quiz domain.Quiz) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	writer := pgstore.NewQuizWriter(db)
	if err := writer.Upsert(ctx, quiz); err != nil {
		t.Fatalf("insert quiz: %v", err)
	}
	// A second upsert replaces the content instead of failing on the primary key.
	if err := writer.Upsert(ctx, quiz); err != nil {
		t.Fatalf("re-insert quiz: %v", err)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
