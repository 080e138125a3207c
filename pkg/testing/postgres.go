package testing

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const TestPostgresDBName = "gymtrack_test"

type PostgresContainer struct {
	Host     string
	Port     string
	DBName   string
	User     string
	Password string
}

// RunPostgres starts a throwaway postgres container and waits until it accepts
// connections. The container is removed when the test finishes.
func RunPostgres(t *testing.T) PostgresContainer {
	t.Helper()

	pool := DockerPool(t)
	pgResource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_DB=" + TestPostgresDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "dockerpool run postgres")
	t.Cleanup(func() {
		if err := pool.Purge(pgResource); err != nil {
			t.Logf("postgres teardown: %s", err)
		}
	})
	_ = pgResource.Expire(120)

	c := PostgresContainer{
		Host:     "localhost",
		Port:     pgResource.GetPort("5432/tcp"),
		DBName:   TestPostgresDBName,
		User:     "postgres",
		Password: "postgres",
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName,
	)
	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Ping()
	})
	require.NoError(t, err, "wait for postgres")
	t.Logf("postgres container ready on port %s", c.Port)

	return c
}
