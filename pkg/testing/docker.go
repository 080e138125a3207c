package testing

import (
	"sync"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
)

var (
	dockerPool     *dockertest.Pool
	dockerPoolErr  error
	dockerPoolOnce sync.Once
)

// DockerPool returns a shared dockertest pool, failing the test if docker is unreachable.
func DockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	dockerPoolOnce.Do(func() {
		// uses a sensible default on windows (tcp/http) and linux/osx (socket)
		dockerPool, dockerPoolErr = dockertest.NewPool("")
		if dockerPoolErr != nil {
			return
		}
		dockerPoolErr = dockerPool.Client.Ping()
	})
	require.NoError(t, dockerPoolErr, "docker not available")

	return dockerPool
}
