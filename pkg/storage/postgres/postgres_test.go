package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	root "github.com/nailuj1992/polls-api"
	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/storage/postgres"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)

	err = runMigrations(pgSQL.DB.(*sql.DB))
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

// seedUser stores a user named after username.
func seedUser(t *testing.T, pg *postgres.PgSQL, username string) *domain.User {
	t.Helper()

	user, err := pg.StoreUser(context.Background(), domain.User{
		Name:         "User " + username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)

	return user
}

// seedPoll stores a poll owned by owner with one question per text, all of
// the "text" type.
func seedPoll(t *testing.T, pg *postgres.PgSQL, owner domain.UserID, link string, texts ...string) (*domain.Poll, []domain.Question) {
	t.Helper()
	ctx := context.Background()

	qt, err := pg.QuestionTypeByCode(ctx, "text")
	require.NoError(t, err)
	require.NotNil(t, qt)

	poll, err := pg.StorePoll(ctx, domain.Poll{
		Title:       "Poll " + link,
		Description: "seeded",
		Link:        link,
		OwnerID:     owner,
	})
	require.NoError(t, err)

	questions := make([]domain.Question, len(texts))
	for i, text := range texts {
		questions[i] = domain.Question{PollID: poll.ID, Text: text, TypeID: qt.ID, Position: i}
	}
	stored, err := pg.StoreQuestions(ctx, questions...)
	require.NoError(t, err)

	return poll, stored
}
