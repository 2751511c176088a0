// Package suite gives integration tests a clean Redis database. One container
// serves the whole test binary; call Run from TestMain to remove it afterwards.
package suite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-peer/internal/config"
	"github.com/rocketscienceinc/tictactoe-peer/internal/repository/storage"
)

const (
	expireDuration  = 300
	maxWaitDuration = 120 * time.Second
	testTimeout     = 30 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

var errDockerUnavailable = errors.New("docker is not available")

var (
	startOnce sync.Once
	startErr  error
	pool      *dockertest.Pool
	resource  *dockertest.Resource
	redisConf config.Redis
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
	Config  config.Redis
}

// Run runs the tests and purges the container they shared.
func Run(m *testing.M) int {
	code := m.Run()

	if resource != nil {
		if err := pool.Purge(resource); err != nil {
			fmt.Fprintf(os.Stderr, "could not purge resource: %v\n", err)
		}
	}

	return code
}

// New returns a connection to an empty database. Tests are skipped when
// docker is not reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	startOnce.Do(func() { startErr = start() })

	if errors.Is(startErr, errDockerUnavailable) {
		t.Skipf("skipping integration test: %v", startErr)
	}

	if startErr != nil {
		t.Fatalf("could not start redis: %v", startErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)

	redisStorage, err := storage.NewRedisStorage(ctx, redisConf)
	if err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() {
		_ = redisStorage.Close()
	})

	if err = redisStorage.Connection.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Storage: redisStorage.Connection,
		Config:  redisConf,
	}
}

func start() error {
	var err error

	pool, err = dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("%w: %w", errDockerUnavailable, err)
	}

	if err = pool.Client.Ping(); err != nil {
		return fmt.Errorf("%w: %w", errDockerUnavailable, err)
	}

	resource, err = pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		// stopped containers remove themselves
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("failed to run container: %w", err)
	}

	// hard kill if Run is never reached
	_ = resource.Expire(expireDuration)

	host, port, err := net.SplitHostPort(resource.GetHostPort(redisPort))
	if err != nil {
		return fmt.Errorf("failed to read container address: %w", err)
	}

	redisConf = config.Redis{Host: host, Port: port}

	// the server in the container may need a moment before it accepts connections
	pool.MaxWait = maxWaitDuration

	return pool.Retry(func() error {
		client := redis.NewClient(&redis.Options{Addr: redisConf.GetRedisAddr()})
		defer client.Close()

		return client.Ping(context.Background()).Err()
	})
}
