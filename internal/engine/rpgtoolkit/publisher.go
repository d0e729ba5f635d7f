// Package rpgtoolkit publishes resolved battle activity onto an rpg-toolkit event bus
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/uzochukwuV/massacombat/internal/engine"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

// Event types
const (
	EventBattleCreated    = "battle.created"
	EventTurnResolved     = "battle.turn.resolved"
	EventWildcardOffered  = "battle.wildcard.offered"
	EventWildcardResolved = "battle.wildcard.resolved"
	EventBattleCompleted  = "battle.completed"
	EventBattleFinalized  = "battle.finalized"
)

// Context keys set on published events
const (
	KeyBattleID   = "battle_id"
	KeyTurn       = "turn"
	KeyOutcome    = "outcome"
	KeyDamage     = "damage"
	KeyCritical   = "critical"
	KeySkill      = "skill"
	KeyWildcard   = "wildcard"
	KeyApplied    = "applied"
	KeyWinnerID   = "winner_id"
	KeyMMRChange1 = "player1_mmr_delta"
	KeyMMRChange2 = "player2_mmr_delta"
)

// Publisher turns engine results into bus events
type Publisher struct {
	bus events.EventBus
}

// PublisherConfig contains configuration for creating a Publisher
type PublisherConfig struct {
	EventBus events.EventBus
}

// Validate checks that all required dependencies are provided
func (c *PublisherConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// NewPublisher creates a new event publisher
func NewPublisher(cfg *PublisherConfig) (*Publisher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Publisher{bus: cfg.EventBus}, nil
}

// PublishCreated announces a new battle
func (p *Publisher) PublishCreated(ctx context.Context, b *entities.Battle) error {
	event := events.NewGameEvent(EventBattleCreated, wrapPlayer(&b.Player1), wrapPlayer(&b.Player2))
	event.Context().Set(KeyBattleID, b.ID)
	return p.publish(ctx, event)
}

// PublishTurn announces a resolved turn and anything it triggered
func (p *Publisher) PublishTurn(ctx context.Context, b *entities.Battle, r *engine.TurnResult) error {
	event := events.NewGameEvent(EventTurnResolved, wrapPlayer(b.Player(r.Side)), wrapPlayer(b.Opponent(r.Side)))
	event.Context().Set(KeyBattleID, b.ID)
	event.Context().Set(KeyTurn, r.TurnNumber)
	event.Context().Set(KeyOutcome, r.Outcome.String())
	event.Context().Set(KeyDamage, r.Damage)
	event.Context().Set(KeyCritical, r.Critical)
	if r.SkillUsed != 0 {
		event.Context().Set(KeySkill, engine.SkillName(r.SkillUsed))
	}
	if err := p.publish(ctx, event); err != nil {
		return err
	}

	if r.Wildcard != entities.WildcardNone {
		offered := events.NewGameEvent(EventWildcardOffered, wrapBattle(b), nil)
		offered.Context().Set(KeyBattleID, b.ID)
		offered.Context().Set(KeyWildcard, r.Wildcard.String())
		if err := p.publish(ctx, offered); err != nil {
			return err
		}
	}

	if r.Completed {
		return p.publishCompleted(ctx, b)
	}
	return nil
}

// PublishWildcard announces a resolved wildcard
func (p *Publisher) PublishWildcard(ctx context.Context, b *entities.Battle, res *engine.WildcardResolution) error {
	if !res.Resolved {
		return nil
	}
	event := events.NewGameEvent(EventWildcardResolved, wrapBattle(b), nil)
	event.Context().Set(KeyBattleID, b.ID)
	event.Context().Set(KeyWildcard, res.Type.String())
	event.Context().Set(KeyApplied, res.Applied)
	return p.publish(ctx, event)
}

// PublishFinalized announces a settled battle
func (p *Publisher) PublishFinalized(ctx context.Context, b *entities.Battle, s *engine.Settlement) error {
	event := events.NewGameEvent(EventBattleFinalized, wrapBattle(b), nil)
	event.Context().Set(KeyBattleID, b.ID)
	event.Context().Set(KeyWinnerID, s.WinnerID)
	event.Context().Set(KeyMMRChange1, s.Player1.Delta)
	event.Context().Set(KeyMMRChange2, s.Player2.Delta)
	return p.publish(ctx, event)
}

func (p *Publisher) publishCompleted(ctx context.Context, b *entities.Battle) error {
	event := events.NewGameEvent(EventBattleCompleted, wrapBattle(b), nil)
	event.Context().Set(KeyBattleID, b.ID)
	event.Context().Set(KeyWinnerID, b.WinnerID)
	return p.publish(ctx, event)
}

func (p *Publisher) publish(ctx context.Context, event events.Event) error {
	if err := p.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", event.Type())
	}
	return nil
}
