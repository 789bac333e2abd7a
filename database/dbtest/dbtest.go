//go:build integration

// Package dbtest starts a throwaway Postgres for repository tests.
package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jungle-app/jungle-booking/config"
	"github.com/jungle-app/jungle-booking/database"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

func startContainer() (testcontainers.Container, error) {
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:16-alpine",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       "postgres",
				},
				WaitingFor: wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(time.Minute),
			},
			Started: true,
		})
	})

	return container, containerErr
}

// NewPool creates a fresh database with the schema applied and returns a pool
// connected to it. The database is dropped when the test ends.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	c, err := startContainer()
	require.NoError(t, err, "failed to start postgres container")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	host, err := c.Host(ctx)
	require.NoError(t, err)

	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := func(name string) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", testUser, testPassword, host, port.Port(), name)
	}

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	admin, err := pgxpool.New(ctx, dsn("postgres"))
	require.NoError(t, err)
	defer admin.Close()

	_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	pool, err := database.Connect(ctx, config.DBConfig{URL: dsn(dbName)})
	require.NoError(t, err)

	require.NoError(t, database.Init(ctx, pool), "failed to apply schema")

	t.Cleanup(func() {
		pool.Close()

		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanup, err := pgxpool.New(cleanupCtx, dsn("postgres"))
		if err != nil {
			slog.Warn("failed to connect for cleanup", "database", dbName, "err", err)
			return
		}
		defer cleanup.Close()

		if _, err := cleanup.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "err", err)
		}
	})

	return pool
}
