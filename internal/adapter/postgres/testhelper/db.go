// Package testhelper runs integration tests against a throwaway PostgreSQL
// container. One container is shared by every test in the process; tests
// isolate themselves by seeding rows with unique ids.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres"
)

const (
	defaultImage = "postgres:17-alpine"
	dbUser       = "petmemorial"
	dbPassword   = "petmemorial"
	dbName       = "petmemorial_test"
)

// sharedDSN starts the container and applies migrations on first use.
var sharedDSN = sync.OnceValues(startPostgres)

// DSN returns the connection string of the shared, migrated database.
func DSN(t *testing.T) string {
	t.Helper()

	dsn, err := sharedDSN()
	if err != nil {
		t.Fatalf("testhelper: postgres unavailable: %v", err)
	}
	return dsn
}

// SetupTestDB returns a pool on the shared database, closed on test cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	cfg, err := pgxpool.ParseConfig(DSN(t))
	if err != nil {
		t.Fatalf("testhelper: parse dsn: %v", err)
	}
	// Concurrency tests open one connection per worker.
	cfg.MaxConns = 16

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// startPostgres honours TEST_POSTGRES_IMAGE so CI can pin a mirrored image.
func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	image := os.Getenv("TEST_POSTGRES_IMAGE")
	if image == "" {
		image = defaultImage
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPassword,
				"POSTGRES_DB":       dbName,
			},
			// The entrypoint restarts postgres once after init; wait for the second start.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", image, err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("resolve endpoint: %w", err)
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", dbUser, dbPassword, endpoint, dbName)

	if err := postgres.Migrate(ctx, dsn, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}
