package battle

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	redisclient "github.com/uzochukwuV/massacombat/internal/redis"
	"github.com/uzochukwuV/massacombat/internal/wire"
)

const (
	battleKeyPrefix    = "battle:"
	characterIndexKey  = "battles:character:"
	defaultListLimit   = 20
	errBattleNil       = "battle cannot be nil"
	errBattleIDEmpty   = "battle ID cannot be empty"
	errCharacterIDNone = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis battle repository
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

// NewRedis creates a Redis-backed battle repository. Battles are stored in the
// binary wire layout.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

// GetKey returns the Redis key for a battle
func GetKey(id string) string {
	return battleKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}
	b := input.Battle

	created, err := r.client.SetNX(ctx, GetKey(b.ID), wire.EncodeBattle(b), 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create battle %s", b.ID)
	}
	if !created {
		return nil, errors.AlreadyExistsf("battle %s already exists", b.ID).
			WithReason(errors.ReasonBattleExists)
	}

	pipe := r.client.TxPipeline()
	for _, id := range uniqueCharacters(b) {
		pipe.ZAdd(ctx, characterIndexKey+id, redis.Z{Score: float64(b.StartTimestamp), Member: b.ID})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		slog.WarnContext(ctx, "failed to index battle",
			"battle_id", b.ID,
			"error", err.Error())
	}

	return &CreateOutput{Battle: b}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBattleIDEmpty)
	}

	data, err := r.client.Get(ctx, GetKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("battle %s not found", input.ID).
				WithReason(errors.ReasonBattleNotFound)
		}
		return nil, errors.Wrapf(err, "failed to get battle %s", input.ID)
	}

	b, err := wire.DecodeBattle(data)
	if err != nil {
		slog.ErrorContext(ctx, "stored battle is corrupt",
			"battle_id", input.ID,
			"error", err.Error())
		return nil, err
	}

	return &GetOutput{Battle: b}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}
	b := input.Battle

	updated, err := r.client.SetXX(ctx, GetKey(b.ID), wire.EncodeBattle(b), 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update battle %s", b.ID)
	}
	if !updated {
		return nil, errors.NotFoundf("battle %s not found", b.ID).
			WithReason(errors.ReasonBattleNotFound)
	}

	return &UpdateOutput{Battle: b}, nil
}

func (r *redisRepository) ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDNone)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	ids, err := r.client.ZRevRange(ctx, characterIndexKey+input.CharacterID, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battles for character %s", input.CharacterID)
	}

	return &ListByCharacterOutput{BattleIDs: ids}, nil
}

func validateBattle(b *entities.Battle) error {
	if b == nil {
		return errors.InvalidArgument(errBattleNil)
	}
	if b.ID == "" {
		return errors.InvalidArgument(errBattleIDEmpty)
	}
	return nil
}

func uniqueCharacters(b *entities.Battle) []string {
	if b.Player1.CharacterID == b.Player2.CharacterID {
		return []string{b.Player1.CharacterID}
	}
	return []string{b.Player1.CharacterID, b.Player2.CharacterID}
}
