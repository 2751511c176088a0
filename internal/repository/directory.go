package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
)

const directoryKeyPrefix = "peer:"

// refreshScript extends our own registration, recreates it if it expired and
// refuses when somebody else registered the code in the meantime.
var refreshScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if current == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
if not current then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
	return 1
end
return 0
`)

// deregisterScript deletes the key only when it still points at our endpoint.
var deregisterScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// DirectoryRepository maps short game codes to connectable peer endpoints.
type DirectoryRepository interface {
	Register(ctx context.Context, code, endpoint string) error
	Refresh(ctx context.Context, code, endpoint string) error
	Lookup(ctx context.Context, code string) (string, error)
	Deregister(ctx context.Context, code, endpoint string) error
	Ping(ctx context.Context) error
}

type dbDirectory struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDirectoryRepository(client *redis.Client, ttl time.Duration) DirectoryRepository {
	return &dbDirectory{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbDirectory) Register(ctx context.Context, code, endpoint string) error {
	ok, err := that.client.SetNX(ctx, directoryKeyPrefix+code, endpoint, that.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to register code: %w", err)
	}

	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrIdentityCollision, code)
	}

	return nil
}

func (that *dbDirectory) Refresh(ctx context.Context, code, endpoint string) error {
	res, err := refreshScript.Run(ctx, that.client, []string{directoryKeyPrefix + code}, endpoint, that.ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("failed to refresh code: %w", err)
	}

	if res == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrIdentityCollision, code)
	}

	return nil
}

func (that *dbDirectory) Lookup(ctx context.Context, code string) (string, error) {
	endpoint, err := that.client.Get(ctx, directoryKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", apperror.ErrIdentityUnavailable, code)
	}

	if err != nil {
		return "", fmt.Errorf("failed to look up code: %w", err)
	}

	return endpoint, nil
}

func (that *dbDirectory) Deregister(ctx context.Context, code, endpoint string) error {
	if err := deregisterScript.Run(ctx, that.client, []string{directoryKeyPrefix + code}, endpoint).Err(); err != nil {
		return fmt.Errorf("failed to deregister code: %w", err)
	}

	return nil
}

func (that *dbDirectory) Ping(ctx context.Context) error {
	if err := that.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping directory: %w", err)
	}

	return nil
}
