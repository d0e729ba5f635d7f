package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	redisclient "github.com/uzochukwuV/massacombat/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	ownerIndexPrefix   = "character:owner:"
	settlementPrefix   = "settlement:"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

// applySettlementScript writes the settlement record and every character or
// nothing. KEYS[1] is the record, the rest are characters; ARGV matches KEYS.
var applySettlementScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
for i = 2, #KEYS do
	if redis.call("EXISTS", KEYS[i]) == 0 then
		return -(i - 1)
	end
end
for i = 1, #KEYS do
	redis.call("SET", KEYS[i], ARGV[i])
end
return 1
`)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func ownerKey(c *entities.Character) string {
	return ownerIndexPrefix + c.Owner.Hex()
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	c := input.Character

	data, err := json.Marshal(toData(c))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	created, err := r.client.SetNX(ctx, characterKeyPrefix+c.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}
	if !created {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", c.ID).
			WithReason(errors.ReasonCharacterExists)
	}

	if err := r.client.SAdd(ctx, ownerKey(c), c.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index character %s", c.ID)
	}

	slog.DebugContext(ctx, "created character",
		"character_id", c.ID,
		"owner", c.Owner.Hex(),
		"class", c.Class.String())

	return &CreateOutput{Character: c}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID).
				WithReason(errors.ReasonCharacterNotFound)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var d characterData
	if err := json.Unmarshal(result, &d); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal character data").
			WithReason(errors.ReasonCorruptState)
	}

	c, err := fromData(&d)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: c}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	c := input.Character

	existing, err := r.Get(ctx, GetInput{ID: c.ID})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(toData(c))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+c.ID, data, 0)

	// ownership moves when the token is transferred
	if existing.Character.Owner != c.Owner {
		pipe.SRem(ctx, ownerKey(existing.Character), c.ID)
		pipe.SAdd(ctx, ownerKey(c), c.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: c}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	indexKey := ownerIndexPrefix + input.Owner.Hex()

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	characters := make([]*entities.Character, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, out.Character)
	}
	sortByID(characters)

	slog.DebugContext(ctx, "listed characters by owner",
		"owner", input.Owner.Hex(),
		"count", len(characters))

	return &ListByOwnerOutput{Characters: characters}, nil
}

func (r *redisRepository) ApplySettlement(ctx context.Context, input ApplySettlementInput) (*ApplySettlementOutput, error) {
	if err := validateSettlement(input); err != nil {
		return nil, err
	}
	s := input.Settlement

	record, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal settlement for battle %s", s.BattleID)
	}
	keys := []string{settlementPrefix + s.BattleID}
	args := []any{record}
	for _, c := range input.Characters {
		data, err := json.Marshal(toData(c))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal character data")
		}
		keys = append(keys, characterKeyPrefix+c.ID)
		args = append(args, data)
	}

	res, err := applySettlementScript.Run(ctx, r.client, keys, args...).Int()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply battle %s to its characters", s.BattleID)
	}
	switch {
	case res == 0:
		return nil, settlementExists(s.BattleID)
	case res < 0:
		id := input.Characters[-res-1].ID
		return nil, errors.NotFoundf("character with ID %s not found", id).
			WithReason(errors.ReasonCharacterNotFound)
	}

	slog.DebugContext(ctx, "applied battle to characters",
		"battle_id", s.BattleID,
		"count", len(input.Characters))

	return &ApplySettlementOutput{Settlement: s}, nil
}

func (r *redisRepository) GetSettlement(ctx context.Context, input GetSettlementInput) (*GetSettlementOutput, error) {
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID cannot be empty")
	}

	result, err := r.client.Get(ctx, settlementPrefix+input.BattleID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, settlementNotFound(input.BattleID)
		}
		return nil, errors.Wrapf(err, "failed to get settlement for battle %s", input.BattleID)
	}

	var s Settlement
	if err := json.Unmarshal(result, &s); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal settlement").
			WithReason(errors.ReasonCorruptState)
	}
	return &GetSettlementOutput{Settlement: &s}, nil
}
