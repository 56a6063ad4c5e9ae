// Package util provides shared helpers for integration tests that need a
// real PostgreSQL instance.
package util

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	// One container serves every test in a binary; the testcontainers
	// reaper removes it when the process exits.
	sharedConnStr string
	containerOnce sync.Once
	containerErr  error
)

// PostgresConnString returns a connection string for integration tests.
// In CI (CI_DATABASE_URL set) it points at the external service container;
// locally it starts one shared throwaway testcontainer per test binary.
// Schema migrations are left to the caller, which runs them through
// database.NewClient the same way production does.
func PostgresConnString(t *testing.T) string {
	t.Helper()

	if ci := os.Getenv("CI_DATABASE_URL"); ci != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		return ci
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared PostgreSQL testcontainer")

		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("delver_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}

		connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			containerErr = fmt.Errorf("failed to get connection string: %w", err)
			return
		}
		sharedConnStr = connStr
	})

	require.NoError(t, containerErr, "failed to set up shared test container")
	return sharedConnStr
}
