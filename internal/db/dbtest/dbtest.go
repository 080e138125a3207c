// Package dbtest provides a migrated postgres pool for repository integration tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/gymtrack/internal/db"
	testhelpers "github.com/2beens/gymtrack/pkg/testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// NewPool starts postgres in docker, applies the schema and returns a pool.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pg := testhelpers.RunPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     pg.Host,
		DBPort:     pg.Port,
		DBName:     pg.DBName,
		DBUser:     pg.User,
		DBPassword: pg.Password,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool))
	// applying twice must be a no-op
	require.NoError(t, db.Migrate(ctx, pool))

	return pool
}

// Truncate wipes all rows, keeping the schema.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `
		TRUNCATE exercise_sets, exercise_sessions, workouts, workout_types, users RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}
