package guard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"

	"github.com/uzochukwuV/massacombat/internal/errors"
	redisclient "github.com/uzochukwuV/massacombat/internal/redis"
)

const (
	lockKeyPrefix = "battle:lock:"

	// DefaultTTL bounds how long a crashed holder can block a battle
	DefaultTTL = 10 * time.Second
)

// only the holder that set the token may delete the key
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig contains configuration for the Redis guard
type RedisConfig struct {
	Client redisclient.Client
	TTL    time.Duration
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// Redis is a Guard shared by every server pointed at the same Redis
type Redis struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a Redis backed guard
func NewRedis(cfg *RedisConfig) (*Redis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: cfg.Client, ttl: ttl}, nil
}

// LockKey returns the Redis key holding a battle's lock
func LockKey(key string) string {
	return lockKeyPrefix + key
}

// Acquire takes the hold on key with SET NX PX
func (g *Redis) Acquire(ctx context.Context, key string) (Release, error) {
	if key == "" {
		return nil, errors.InvalidArgument("guard key cannot be empty")
	}

	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, LockKey(key), token, g.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to lock battle %s", key)
	}
	if !ok {
		return nil, errors.Reentrant(key)
	}

	var once sync.Once
	return func(ctx context.Context) {
		once.Do(func() {
			// the caller's context may already be cancelled
			ctx = context.WithoutCancel(ctx)
			if err := releaseScript.Run(ctx, g.client, []string{LockKey(key)}, token).Err(); err != nil {
				slog.WarnContext(ctx, "failed to release battle lock",
					"battle_id", key,
					"error", err.Error())
			}
		})
	}, nil
}
