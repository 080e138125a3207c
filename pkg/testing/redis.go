package testing

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

type RedisContainer struct {
	Host string
	Port string
}

func (c RedisContainer) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// RunRedis starts a throwaway redis container and waits until it answers PING.
func RunRedis(t *testing.T) RedisContainer {
	t.Helper()

	pool := DockerPool(t)
	redisResource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	require.NoError(t, err, "run redis")
	t.Cleanup(func() {
		if err := pool.Purge(redisResource); err != nil {
			t.Logf("redis teardown: %s", err)
		}
	})
	_ = redisResource.Expire(120)

	c := RedisContainer{
		Host: "localhost",
		Port: redisResource.GetPort("6379/tcp"),
	}

	err = pool.Retry(func() error {
		rdb := redis.NewClient(&redis.Options{Addr: c.Addr()})
		defer rdb.Close()
		return rdb.Ping(context.Background()).Err()
	})
	require.NoError(t, err, "wait for redis")

	return c
}

// GetRedisClientAndCtx starts redis and returns a connected client with a bounded context.
func GetRedisClientAndCtx(t *testing.T) (context.Context, *redis.Client) {
	t.Helper()

	c := RunRedis(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	rdb := redis.NewClient(&redis.Options{
		Addr: c.Addr(),
		DB:   0, // use default DB
	})
	t.Cleanup(func() { _ = rdb.Close() })

	pingRes, err := rdb.Ping(ctx).Result()
	require.NoError(t, err)
	t.Logf("redis ping res: %s", pingRes)

	return ctx, rdb
}
