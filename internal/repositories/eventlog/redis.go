package eventlog

import (
	"context"
	"encoding/json"

	"github.com/uzochukwuV/massacombat/internal/errors"
	redisclient "github.com/uzochukwuV/massacombat/internal/redis"
)

const (
	logKeyPrefix = "battle:events:"

	errBattleIDEmpty = "battle ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis event log
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis list backed event log
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.BattleID == "" {
		return nil, errors.InvalidArgument(errBattleIDEmpty)
	}
	key := logKeyPrefix + input.BattleID
	if len(input.Entries) == 0 {
		n, err := r.client.LLen(ctx, key).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read event log for battle %s", input.BattleID)
		}
		return &AppendOutput{Length: n}, nil
	}

	values := make([]interface{}, 0, len(input.Entries))
	for _, e := range input.Entries {
		data, err := json.Marshal(e)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal event")
		}
		values = append(values, data)
	}

	n, err := r.client.RPush(ctx, key, values...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to append events for battle %s", input.BattleID)
	}
	return &AppendOutput{Length: n}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.BattleID == "" {
		return nil, errors.InvalidArgument(errBattleIDEmpty)
	}
	if input.Offset < 0 {
		return nil, errors.InvalidArgumentf("offset %d cannot be negative", input.Offset)
	}

	raw, err := r.client.LRange(ctx, logKeyPrefix+input.BattleID, input.Offset, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list events for battle %s", input.BattleID)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal event").
				WithReason(errors.ReasonCorruptState)
		}
		entries = append(entries, e)
	}
	return &ListOutput{Entries: entries}, nil
}
