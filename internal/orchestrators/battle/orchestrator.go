// Package battle coordinates battle operations. Each mutating call takes the
// battle's guard, loads state, runs the rules engine and persists only when the
// engine succeeded, then logs and publishes what happened.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/uzochukwuV/massacombat/internal/orchestrators/battle Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uzochukwuV/massacombat/internal/engine"
	"github.com/uzochukwuV/massacombat/internal/engine/rpgtoolkit"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/metrics"
	"github.com/uzochukwuV/massacombat/internal/pkg/clock"
	"github.com/uzochukwuV/massacombat/internal/pkg/guard"
	"github.com/uzochukwuV/massacombat/internal/pkg/idgen"
	battlerepo "github.com/uzochukwuV/massacombat/internal/repositories/battle"
	characterrepo "github.com/uzochukwuV/massacombat/internal/repositories/character"
	"github.com/uzochukwuV/massacombat/internal/repositories/eventlog"
	"github.com/uzochukwuV/massacombat/internal/repositories/leaderboard"
)

// Operation names used in metrics and logs
const (
	opCreateBattle    = "create_battle"
	opExecuteTurn     = "execute_turn"
	opDecideWildcard  = "decide_wildcard"
	opTimeoutWildcard = "timeout_wildcard"
	opFinalizeBattle  = "finalize_battle"
)

// Service defines the battle operations
type Service interface {
	CreateBattle(ctx context.Context, input *CreateBattleInput) (*CreateBattleOutput, error)
	ExecuteTurn(ctx context.Context, input *ExecuteTurnInput) (*ExecuteTurnOutput, error)
	DecideWildcard(ctx context.Context, input *DecideWildcardInput) (*DecideWildcardOutput, error)
	TimeoutWildcard(ctx context.Context, input *TimeoutWildcardInput) (*TimeoutWildcardOutput, error)
	FinalizeBattle(ctx context.Context, input *FinalizeBattleInput) (*FinalizeBattleOutput, error)
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)
	ListBattles(ctx context.Context, input *ListBattlesInput) (*ListBattlesOutput, error)
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Engine        engine.Engine
	BattleRepo    battlerepo.Repository
	CharacterRepo characterrepo.Repository
	Stats         StatsProvider
	EventLog      eventlog.Repository
	Leaderboard   leaderboard.Repository
	Guard         guard.Guard
	IDGenerator   idgen.Generator

	// Clock defaults to the system clock
	Clock clock.Clock
	// Publisher and Metrics are optional
	Publisher *rpgtoolkit.Publisher
	Metrics   *metrics.Metrics

	// AllowSelfBattle lets a character be both players
	AllowSelfBattle bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Stats == nil {
		vb.RequiredField("Stats")
	}
	if c.EventLog == nil {
		vb.RequiredField("EventLog")
	}
	if c.Leaderboard == nil {
		vb.RequiredField("Leaderboard")
	}
	if c.Guard == nil {
		vb.RequiredField("Guard")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

var _ Service = (*Orchestrator)(nil)

// Orchestrator implements Service
type Orchestrator struct {
	engine      engine.Engine
	battles     battlerepo.Repository
	characters  characterrepo.Repository
	stats       StatsProvider
	eventLog    eventlog.Repository
	leaderboard leaderboard.Repository
	guard       guard.Guard
	idGen       idgen.Generator
	clock       clock.Clock
	publisher   *rpgtoolkit.Publisher
	metrics     *metrics.Metrics

	allowSelfBattle bool
}

// New creates a battle orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		engine:          cfg.Engine,
		battles:         cfg.BattleRepo,
		characters:      cfg.CharacterRepo,
		stats:           cfg.Stats,
		eventLog:        cfg.EventLog,
		leaderboard:     cfg.Leaderboard,
		guard:           cfg.Guard,
		idGen:           cfg.IDGenerator,
		clock:           c,
		publisher:       cfg.Publisher,
		metrics:         cfg.Metrics,
		allowSelfBattle: cfg.AllowSelfBattle,
	}, nil
}

// CreateBattle starts a new battle between two characters
func (o *Orchestrator) CreateBattle(ctx context.Context, input *CreateBattleInput) (*CreateBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Character1ID", input.Character1ID, vb)
	errors.ValidateRequired("Character2ID", input.Character2ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if input.Character1ID == input.Character2ID && !o.allowSelfBattle {
		return nil, o.reject(ctx, opCreateBattle,
			errors.InvalidArgumentReason(errors.ReasonSelfBattle, "a character cannot fight itself"))
	}

	battleID := input.BattleID
	if battleID == "" {
		battleID = o.idGen.Generate()
	}

	var out *CreateBattleOutput
	err := guard.Do(ctx, o.guard, battleID, func() error {
		p1, err := o.stats.Fighter(ctx, input.Character1ID)
		if err != nil {
			return err
		}
		if p1.Character.Owner != input.Caller {
			return errors.Unauthorized(fmt.Sprintf("caller does not own %s", input.Character1ID))
		}
		p2, err := o.stats.Fighter(ctx, input.Character2ID)
		if err != nil {
			return err
		}

		now := o.now()
		started, err := o.engine.StartBattle(ctx, &engine.StartBattleInput{
			BattleID: battleID,
			Player1:  p1,
			Player2:  p2,
			Caller:   input.Caller.Bytes(),
			Now:      now,
		})
		if err != nil {
			return err
		}
		b := started.Battle

		if _, err := o.battles.Create(ctx, battlerepo.CreateInput{Battle: b}); err != nil {
			return err
		}

		slog.Info("battle created",
			"battle_id", b.ID,
			"player1", b.Player1.CharacterID,
			"player2", b.Player2.CharacterID,
			"player1_equipment", equipmentIDs(p1.Character),
			"player2_equipment", equipmentIDs(p2.Character))

		o.appendEvents(ctx, b, now, fmt.Sprintf("battle started: %s (%d hp) vs %s (%d hp)",
			b.Player1.CharacterID, b.Player1.MaxHP, b.Player2.CharacterID, b.Player2.MaxHP))
		if o.publisher != nil {
			o.logPublishError(ctx, b.ID, o.publisher.PublishCreated(ctx, b))
		}
		o.metrics.BattleCreated()

		out = &CreateBattleOutput{Battle: b}
		return nil
	})
	if err != nil {
		return nil, o.reject(ctx, opCreateBattle, err)
	}
	return out, nil
}

// ExecuteTurn resolves one action by the player whose turn it is
func (o *Orchestrator) ExecuteTurn(ctx context.Context, input *ExecuteTurnInput) (*ExecuteTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BattleID", input.BattleID, vb)
	errors.ValidateRequired("CharacterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	started := time.Now()
	var out *ExecuteTurnOutput
	err := guard.Do(ctx, o.guard, input.BattleID, func() error {
		b, err := o.loadBattle(ctx, input.BattleID)
		if err != nil {
			return err
		}
		side, ok := b.SideOf(input.CharacterID)
		if !ok {
			return notParticipant(b, input.CharacterID)
		}

		attacker, err := o.stats.Fighter(ctx, input.CharacterID)
		if err != nil {
			return err
		}
		if attacker.Character.Owner != input.Caller {
			return errors.Unauthorized(fmt.Sprintf("caller does not own %s", input.CharacterID))
		}
		defender, err := o.stats.Fighter(ctx, b.Opponent(side).CharacterID)
		if err != nil {
			return err
		}

		now := o.now()
		resolved, err := o.engine.ResolveTurn(ctx, &engine.ResolveTurnInput{
			Battle:   b,
			Attacker: attacker,
			Defender: defender,
			Action: engine.Action{
				Stance:    input.Stance,
				UseSkill:  input.UseSkill,
				SkillSlot: input.SkillSlot,
			},
			Now: now,
		})
		if err != nil {
			return err
		}
		r := resolved.Result

		if _, err := o.battles.Update(ctx, battlerepo.UpdateInput{Battle: b}); err != nil {
			return err
		}

		slog.DebugContext(ctx, "turn resolved",
			"battle_id", b.ID,
			"turn", r.TurnNumber,
			"character_id", input.CharacterID,
			"outcome", r.Outcome.String(),
			"damage", r.Damage,
			"critical", r.Critical)

		o.appendEvents(ctx, b, now, r.Events...)
		if o.publisher != nil {
			o.logPublishError(ctx, b.ID, o.publisher.PublishTurn(ctx, b, r))
		}
		o.metrics.TurnResolved(r.Outcome.String(), time.Since(started))
		if r.Wildcard != entities.WildcardNone {
			o.metrics.WildcardOffered(r.Wildcard.String())
		}
		if r.Completed {
			slog.Info("battle completed", "battle_id", b.ID, "winner_id", b.WinnerID, "turns", b.TurnNumber)
			o.metrics.BattleCompleted(b.IsTie())
		}

		out = &ExecuteTurnOutput{Battle: b, Result: r}
		return nil
	})
	if err != nil {
		return nil, o.reject(ctx, opExecuteTurn, err)
	}
	return out, nil
}

// DecideWildcard records one player's answer to the pending wildcard
func (o *Orchestrator) DecideWildcard(ctx context.Context, input *DecideWildcardInput) (*DecideWildcardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BattleID", input.BattleID, vb)
	errors.ValidateRequired("CharacterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var out *DecideWildcardOutput
	err := guard.Do(ctx, o.guard, input.BattleID, func() error {
		b, err := o.loadBattle(ctx, input.BattleID)
		if err != nil {
			return err
		}
		// non participants are turned away by the engine with NotYourDecision
		if _, ok := b.SideOf(input.CharacterID); ok {
			if err := o.checkOwner(ctx, input.CharacterID, input); err != nil {
				return err
			}
		}

		now := o.now()
		decided, err := o.engine.DecideWildcard(ctx, &engine.DecideWildcardInput{
			Battle:      b,
			CharacterID: input.CharacterID,
			Accept:      input.Accept,
			Now:         now,
		})
		if err != nil {
			return err
		}

		if _, err := o.battles.Update(ctx, battlerepo.UpdateInput{Battle: b}); err != nil {
			return err
		}
		o.afterWildcard(ctx, b, now, decided.Resolution)

		out = &DecideWildcardOutput{Battle: b, Resolution: decided.Resolution}
		return nil
	})
	if err != nil {
		return nil, o.reject(ctx, opDecideWildcard, err)
	}
	return out, nil
}

// TimeoutWildcard closes a wildcard whose answer window has passed
func (o *Orchestrator) TimeoutWildcard(ctx context.Context, input *TimeoutWildcardInput) (*TimeoutWildcardOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	var out *TimeoutWildcardOutput
	err := guard.Do(ctx, o.guard, input.BattleID, func() error {
		b, err := o.loadBattle(ctx, input.BattleID)
		if err != nil {
			return err
		}

		now := o.now()
		timedOut, err := o.engine.TimeoutWildcard(ctx, &engine.TimeoutWildcardInput{Battle: b, Now: now})
		if err != nil {
			return err
		}

		if _, err := o.battles.Update(ctx, battlerepo.UpdateInput{Battle: b}); err != nil {
			return err
		}
		o.afterWildcard(ctx, b, now, timedOut.Resolution)

		out = &TimeoutWildcardOutput{Battle: b, Resolution: timedOut.Resolution}
		return nil
	})
	if err != nil {
		return nil, o.reject(ctx, opTimeoutWildcard, err)
	}
	return out, nil
}

// FinalizeBattle settles ratings, records and experience for a completed battle.
// A self battle is marked finalized without touching ratings. The battle is
// written last, so a retry after a partial failure finishes the same settlement
// without applying any part of it twice.
func (o *Orchestrator) FinalizeBattle(ctx context.Context, input *FinalizeBattleInput) (*FinalizeBattleOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	var out *FinalizeBattleOutput
	err := guard.Do(ctx, o.guard, input.BattleID, func() error {
		b, err := o.loadBattle(ctx, input.BattleID)
		if err != nil {
			return err
		}
		if b.Finalized {
			return errors.AlreadyFinalized(b.ID)
		}

		keys := []string{
			guard.CharacterKey(b.Player1.CharacterID),
			guard.CharacterKey(b.Player2.CharacterID),
		}
		return guard.DoAll(ctx, o.guard, keys, func() error {
			s, err := o.settle(ctx, b)
			if err != nil {
				return err
			}

			if _, err := o.battles.Update(ctx, battlerepo.UpdateInput{Battle: b}); err != nil {
				return err
			}

			now := o.now()
			if b.Player1.CharacterID == b.Player2.CharacterID {
				o.appendEvents(ctx, b, now, "battle finalized without rating change")
			} else {
				o.appendEvents(ctx, b, now, fmt.Sprintf("battle finalized: %s %+d mmr, %s %+d mmr",
					s.Player1.CharacterID, s.Player1.Delta, s.Player2.CharacterID, s.Player2.Delta))
			}

			if o.publisher != nil {
				o.logPublishError(ctx, b.ID, o.publisher.PublishFinalized(ctx, b, s))
			}
			o.metrics.BattleFinalized()

			slog.Info("battle finalized",
				"battle_id", b.ID,
				"winner_id", s.WinnerID,
				"player1_delta", s.Player1.Delta,
				"player2_delta", s.Player2.Delta)

			out = &FinalizeBattleOutput{Battle: b, Settlement: s}
			return nil
		})
	})
	if err != nil {
		return nil, o.reject(ctx, opFinalizeBattle, err)
	}
	return out, nil
}

// GetBattle returns the battle read model
func (o *Orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}
	b, err := o.loadBattle(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}
	return &GetBattleOutput{Battle: b}, nil
}

// ListBattles returns a character's battles, newest first
func (o *Orchestrator) ListBattles(ctx context.Context, input *ListBattlesInput) (*ListBattlesOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	out, err := o.battles.ListByCharacter(ctx, battlerepo.ListByCharacterInput{
		CharacterID: input.CharacterID,
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, err
	}
	return &ListBattlesOutput{BattleIDs: out.BattleIDs}, nil
}

// ListEvents returns a battle's event log
func (o *Orchestrator) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}
	if _, err := o.loadBattle(ctx, input.BattleID); err != nil {
		return nil, err
	}
	out, err := o.eventLog.List(ctx, eventlog.ListInput{BattleID: input.BattleID, Offset: input.Offset})
	if err != nil {
		return nil, err
	}
	return &ListEventsOutput{Entries: out.Entries}, nil
}

// GetLeaderboard returns the top rated characters
func (o *Orchestrator) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	var limit int
	if input != nil {
		limit = input.Limit
	}
	out, err := o.leaderboard.Top(ctx, leaderboard.TopInput{Limit: limit})
	if err != nil {
		return nil, err
	}
	return &GetLeaderboardOutput{Standings: out.Standings}, nil
}

// settle computes the battle's settlement and writes it to the characters and
// the leaderboard. Each store keeps a per-battle marker; when the characters
// already carry this battle, the ratings recorded before it are reused so the
// settlement comes out the same as on the first attempt.
func (o *Orchestrator) settle(ctx context.Context, b *entities.Battle) (*engine.Settlement, error) {
	c1, err := o.getCharacter(ctx, b.Player1.CharacterID)
	if err != nil {
		return nil, err
	}
	c2, err := o.getCharacter(ctx, b.Player2.CharacterID)
	if err != nil {
		return nil, err
	}

	if c1.ID == c2.ID {
		settled, err := o.engine.Settle(ctx, &engine.SettleInput{Battle: b, Player1MMR: c1.MMR, Player2MMR: c2.MMR})
		if err != nil {
			return nil, err
		}
		return settled.Settlement, nil
	}

	mmr1, mmr2 := c1.MMR, c2.MMR
	applied := false
	prior, err := o.characters.GetSettlement(ctx, characterrepo.GetSettlementInput{BattleID: b.ID})
	switch {
	case err == nil:
		applied = true
		mmr1 = prior.Settlement.PriorMMR[c1.ID]
		mmr2 = prior.Settlement.PriorMMR[c2.ID]
	case !errors.IsNotFound(err):
		return nil, err
	}

	settled, err := o.engine.Settle(ctx, &engine.SettleInput{Battle: b, Player1MMR: mmr1, Player2MMR: mmr2})
	if err != nil {
		return nil, err
	}
	s := settled.Settlement

	if !applied {
		s.Player1.Apply(c1)
		s.Player2.Apply(c2)
		if _, err := o.characters.ApplySettlement(ctx, characterrepo.ApplySettlementInput{
			Settlement: &characterrepo.Settlement{
				BattleID: b.ID,
				PriorMMR: map[string]uint32{c1.ID: mmr1, c2.ID: mmr2},
			},
			Characters: []*entities.Character{c1, c2},
		}); err != nil {
			return nil, errors.Wrapf(err, "failed to record battle %s on its characters", b.ID)
		}
	}

	if _, err := o.leaderboard.SettleBattle(ctx, leaderboard.SettleBattleInput{
		BattleID: b.ID,
		Updates: []leaderboard.MMRUpdate{
			{CharacterID: c1.ID, Owner: c1.Owner.Hex(), MMR: s.Player1.NewMMR},
			{CharacterID: c2.ID, Owner: c2.Owner.Hex(), MMR: s.Player2.NewMMR},
		},
		Results: []leaderboard.RecordResultInput{
			{CharacterID: c1.ID, Owner: c1.Owner.Hex(), Result: leaderboardResult(s.Player1.Result)},
			{CharacterID: c2.ID, Owner: c2.Owner.Hex(), Result: leaderboardResult(s.Player2.Result)},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to push ratings for battle %s", b.ID)
	}
	return s, nil
}

func leaderboardResult(r engine.MatchResult) leaderboard.Result {
	switch r {
	case engine.ResultWin:
		return leaderboard.ResultWin
	case engine.ResultTie:
		return leaderboard.ResultTie
	default:
		return leaderboard.ResultLoss
	}
}

func (o *Orchestrator) afterWildcard(ctx context.Context, b *entities.Battle, now int64, res *engine.WildcardResolution) {
	o.appendEvents(ctx, b, now, res.Events...)
	if o.publisher != nil {
		o.logPublishError(ctx, b.ID, o.publisher.PublishWildcard(ctx, b, res))
	}
	if res.Resolved {
		o.metrics.WildcardResolved(res.Applied)
	}
}

func (o *Orchestrator) checkOwner(ctx context.Context, characterID string, input *DecideWildcardInput) error {
	c, err := o.getCharacter(ctx, characterID)
	if err != nil {
		return err
	}
	if c.Owner != input.Caller {
		return errors.Unauthorized(fmt.Sprintf("caller does not own %s", characterID))
	}
	return nil
}

func (o *Orchestrator) loadBattle(ctx context.Context, id string) (*entities.Battle, error) {
	out, err := o.battles.Get(ctx, battlerepo.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Battle, nil
}

func (o *Orchestrator) getCharacter(ctx context.Context, id string) (*entities.Character, error) {
	out, err := o.characters.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

// appendEvents writes to the event log. The battle is already saved, so a
// failure here is logged rather than returned.
func (o *Orchestrator) appendEvents(ctx context.Context, b *entities.Battle, now int64, messages ...string) {
	if len(messages) == 0 {
		return
	}
	entries := make([]eventlog.Entry, 0, len(messages))
	for _, m := range messages {
		entries = append(entries, eventlog.Entry{Timestamp: now, Turn: b.TurnNumber, Message: m})
	}
	if _, err := o.eventLog.Append(ctx, eventlog.AppendInput{BattleID: b.ID, Entries: entries}); err != nil {
		slog.WarnContext(ctx, "failed to append battle events",
			"battle_id", b.ID,
			"count", len(entries),
			"error", err.Error())
	}
}

func (o *Orchestrator) logPublishError(ctx context.Context, battleID string, err error) {
	if err != nil {
		slog.WarnContext(ctx, "failed to publish battle event",
			"battle_id", battleID,
			"error", err.Error())
	}
}

// reject counts rule violations before handing the error back
func (o *Orchestrator) reject(ctx context.Context, op string, err error) error {
	if reason := errors.GetReason(err); reason != "" {
		o.metrics.Rejected(op, reason.String())
		slog.DebugContext(ctx, "battle call rejected", "operation", op, "reason", reason.String())
	}
	return err
}

func (o *Orchestrator) now() int64 {
	return o.clock.Now().Unix()
}

func notParticipant(b *entities.Battle, characterID string) error {
	return errors.PermissionDenied(fmt.Sprintf("%s is not in battle %s", characterID, b.ID)).
		WithReason(errors.ReasonNotParticipant)
}
