package engine

import (
	"context"
	"time"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

// Defaults used by DefaultConfig
const (
	DefaultWildcardChance = 10
	DefaultWildcardWindow = 5 * time.Minute
	DefaultMaxTurns       = 100
)

type engine struct {
	wildcardChance uint8
	wildcardWindow int64
	maxTurns       uint32
	newSource      SourceFactory
}

// Config tunes the rules engine
type Config struct {
	// WildcardChance is the percent chance a turn triggers a wildcard
	WildcardChance uint8
	// WildcardWindow is how long players have to answer a wildcard
	WildcardWindow time.Duration
	// MaxTurns ends a battle on hit point percentage once reached
	MaxTurns uint32
	// NewSource resumes the random source from a battle's seed.
	// Defaults to NewXorShiftSource.
	NewSource SourceFactory
}

// DefaultConfig returns the production rule set
func DefaultConfig() *Config {
	return &Config{
		WildcardChance: DefaultWildcardChance,
		WildcardWindow: DefaultWildcardWindow,
		MaxTurns:       DefaultMaxTurns,
		NewSource:      NewXorShiftSource,
	}
}

// Validate checks the configuration
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.WildcardChance > 100 {
		vb.Field("WildcardChance", "must be at most 100")
	}
	if cfg.WildcardWindow < time.Second {
		vb.Field("WildcardWindow", "must be at least one second")
	}
	if cfg.MaxTurns == 0 {
		vb.RequiredField("MaxTurns")
	}
	return vb.Build()
}

// New creates an engine from cfg
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	newSource := cfg.NewSource
	if newSource == nil {
		newSource = NewXorShiftSource
	}

	return &engine{
		wildcardChance: cfg.WildcardChance,
		wildcardWindow: int64(cfg.WildcardWindow / time.Second),
		maxTurns:       cfg.MaxTurns,
		newSource:      newSource,
	}, nil
}

func (e *engine) StartBattle(_ context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BattleID", input.BattleID, vb)
	validateFighter("Player1", input.Player1, vb)
	validateFighter("Player2", input.Player2, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	battle := &entities.Battle{
		ID:                  input.BattleID,
		Player1:             newBattlePlayer(input.Player1),
		Player2:             newBattlePlayer(input.Player2),
		CurrentTurn:         1,
		State:               entities.BattleStateActive,
		StartTimestamp:      input.Now,
		LastActionTimestamp: input.Now,
		RandomSeed:          Seed(input.BattleID, input.Now, input.Caller),
	}

	return &StartBattleOutput{Battle: battle}, nil
}

func validateFighter(field string, f *Fighter, vb *errors.ValidationBuilder) {
	if f == nil || f.Character == nil {
		vb.RequiredField(field)
		return
	}
	if f.Stats.HP == 0 {
		vb.Field(field+".Stats.HP", "must be positive")
	}
}

func newBattlePlayer(f *Fighter) entities.BattlePlayer {
	return entities.BattlePlayer{
		CharacterID: f.Character.ID,
		CurrentHP:   f.Stats.HP,
		MaxHP:       f.Stats.HP,
		Energy:      entities.MaxEnergy,
	}
}
