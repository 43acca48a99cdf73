// Package testhelpers provides a shared PostgreSQL container for
// integration tests.
package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql (migrations)
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/database"
)

// postgresImage is the PostgreSQL image used for integration tests.
const postgresImage = "postgres:16-alpine"

// TestDB holds a shared test database container and connection pool.
type TestDB struct {
	Container testcontainers.Container
	DB        *database.DB
	ConnStr   string
}

var (
	sharedTestDB     *TestDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

// GetTestDB returns a shared PostgreSQL container with migrations applied.
// The container is created once and reused across all tests in the run.
func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})

	if sharedTestDBErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedTestDBErr)
	}

	return sharedTestDB
}

func setupTestDB() (*TestDB, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "monsterdash_test",
			"POSTGRES_USER":     "monsterdash",
			"POSTGRES_PASSWORD": "test_password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	connStr := fmt.Sprintf(
		"host=%s port=%s user=monsterdash password=test_password dbname=monsterdash_test sslmode=disable",
		host, port.Port(),
	)

	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := database.NewConnection(ctx, &database.Config{URL: connStr, MaxConnections: 5}, zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	return &TestDB{Container: container, DB: db, ConnStr: connStr}, nil
}

// Pool exposes the raw pgx pool for tests that clean up tables directly.
func (tdb *TestDB) Pool() *pgxpool.Pool {
	return tdb.DB.Pool
}

// TruncateAll empties every application table between tests.
func (tdb *TestDB) TruncateAll(t *testing.T) {
	t.Helper()

	_, err := tdb.Pool().Exec(context.Background(), `TRUNCATE notes, hit_points, logs RESTART IDENTITY`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}
