package equipment

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	redisclient "github.com/uzochukwuV/massacombat/internal/redis"
)

const (
	// all items live in one hash keyed by item ID
	itemsKey = "equipment:items"

	// Error messages
	errEquipmentNil     = "equipment cannot be nil"
	errEquipmentIDEmpty = "equipment ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis equipment repository.
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

// NewRedis creates a new Redis-backed equipment repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// equipmentData is the storage structure for an item
type equipmentData struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slot           string `json:"slot"`
	HPBonus        uint32 `json:"hp_bonus,omitempty"`
	DamageMinBonus uint32 `json:"damage_min_bonus,omitempty"`
	DamageMaxBonus uint32 `json:"damage_max_bonus,omitempty"`
	CritBonus      uint8  `json:"crit_bonus,omitempty"`
	DodgeBonus     uint8  `json:"dodge_bonus,omitempty"`
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateEquipment(input.Equipment); err != nil {
		return nil, err
	}
	e := input.Equipment

	data, err := json.Marshal(equipmentData{
		ID:             e.ID,
		Name:           e.Name,
		Slot:           e.Slot.String(),
		HPBonus:        e.HPBonus,
		DamageMinBonus: e.DamageMinBonus,
		DamageMaxBonus: e.DamageMaxBonus,
		CritBonus:      e.CritBonus,
		DodgeBonus:     e.DodgeBonus,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal equipment data")
	}

	created, err := r.client.HSetNX(ctx, itemsKey, e.ID, data).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create equipment %s", e.ID)
	}
	if !created {
		return nil, errors.AlreadyExistsf("equipment with ID %s already exists", e.ID)
	}

	return &CreateOutput{Equipment: e}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEquipmentIDEmpty)
	}

	result, err := r.client.HGet(ctx, itemsKey, input.ID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, notFound(input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get equipment %s", input.ID)
	}

	e, err := decode(result)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Equipment: e}, nil
}

func (r *redisRepository) GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error) {
	ids := nonEmpty(input.IDs)
	if len(ids) == 0 {
		return &GetManyOutput{}, nil
	}

	values, err := r.client.HMGet(ctx, itemsKey, ids...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get equipment")
	}

	items := make([]*entities.Equipment, 0, len(ids))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			return nil, notFound(ids[i])
		}
		e, err := decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return &GetManyOutput{Equipment: items}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	all, err := r.client.HGetAll(ctx, itemsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list equipment")
	}

	items := make([]*entities.Equipment, 0, len(all))
	for _, raw := range all {
		e, err := decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		if input.Slot != nil && e.Slot != *input.Slot {
			continue
		}
		items = append(items, e)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return &ListOutput{Equipment: items}, nil
}

func decode(raw []byte) (*entities.Equipment, error) {
	var d equipmentData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal equipment data").
			WithReason(errors.ReasonCorruptState)
	}
	slot, ok := parseSlot(d.Slot)
	if !ok {
		return nil, errors.DataLossf("equipment %s has unknown slot %q", d.ID, d.Slot).
			WithReason(errors.ReasonCorruptState)
	}
	return &entities.Equipment{
		ID:             d.ID,
		Name:           d.Name,
		Slot:           slot,
		HPBonus:        d.HPBonus,
		DamageMinBonus: d.DamageMinBonus,
		DamageMaxBonus: d.DamageMaxBonus,
		CritBonus:      d.CritBonus,
		DodgeBonus:     d.DodgeBonus,
	}, nil
}

func parseSlot(name string) (entities.EquipmentSlot, bool) {
	for _, s := range []entities.EquipmentSlot{entities.SlotWeapon, entities.SlotArmor, entities.SlotAccessory} {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

func notFound(id string) error {
	return errors.NotFoundf("equipment %s not found", id).
		WithReason(errors.ReasonEquipmentNotFound)
}

func nonEmpty(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

func validateEquipment(e *entities.Equipment) error {
	if e == nil {
		return errors.InvalidArgument(errEquipmentNil)
	}
	if e.ID == "" {
		return errors.InvalidArgument(errEquipmentIDEmpty)
	}
	if _, ok := parseSlot(e.Slot.String()); !ok {
		return errors.InvalidArgumentf("equipment %s has invalid slot %d", e.ID, e.Slot)
	}
	return nil
}
