// Package v1alpha1 handles the battle and character grpc service interfaces
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/uzochukwuV/massacombat/internal/api/v1alpha1"
	"github.com/uzochukwuV/massacombat/internal/engine"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/orchestrators/battle"
	"github.com/uzochukwuV/massacombat/internal/repositories/eventlog"
	"github.com/uzochukwuV/massacombat/internal/repositories/leaderboard"
)

// BattleHandlerConfig holds dependencies for the battle handler
type BattleHandlerConfig struct {
	BattleService battle.Service
}

// Validate ensures all required dependencies are present
func (c *BattleHandlerConfig) Validate() error {
	if c.BattleService == nil {
		return errors.InvalidArgument("battle service is required")
	}
	return nil
}

// BattleHandler implements the battle gRPC service
type BattleHandler struct {
	apiv1alpha1.UnimplementedBattleServiceServer
	battleService battle.Service
}

// NewBattleHandler creates a new battle handler with the given configuration
func NewBattleHandler(cfg *BattleHandlerConfig) (*BattleHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &BattleHandler{
		battleService: cfg.BattleService,
	}, nil
}

// CreateBattle starts a battle between two characters
func (h *BattleHandler) CreateBattle(
	ctx context.Context,
	req *apiv1alpha1.CreateBattleRequest,
) (*apiv1alpha1.BattleResponse, error) {
	if req.Character1ID == "" || req.Character2ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("both character ids are required"))
	}

	out, err := h.battleService.CreateBattle(ctx, &battle.CreateBattleInput{
		BattleID:     req.BattleID,
		Character1ID: req.Character1ID,
		Character2ID: req.Character2ID,
		Caller:       req.Caller,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.BattleResponse{Battle: out.Battle}, nil
}

// ExecuteTurn resolves the current player's action
func (h *BattleHandler) ExecuteTurn(
	ctx context.Context,
	req *apiv1alpha1.ExecuteTurnRequest,
) (*apiv1alpha1.ExecuteTurnResponse, error) {
	if req.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.battleService.ExecuteTurn(ctx, &battle.ExecuteTurnInput{
		BattleID:    req.BattleID,
		CharacterID: req.CharacterID,
		Stance:      req.Stance,
		UseSkill:    req.UseSkill,
		SkillSlot:   req.SkillSlot,
		Caller:      req.Caller,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ExecuteTurnResponse{
		Battle: out.Battle,
		Turn:   convertTurnResult(out.Result),
	}, nil
}

// DecideWildcard records a player's answer to the pending wildcard
func (h *BattleHandler) DecideWildcard(
	ctx context.Context,
	req *apiv1alpha1.DecideWildcardRequest,
) (*apiv1alpha1.WildcardResponse, error) {
	if req.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.battleService.DecideWildcard(ctx, &battle.DecideWildcardInput{
		BattleID:    req.BattleID,
		CharacterID: req.CharacterID,
		Accept:      req.Accept,
		Caller:      req.Caller,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.WildcardResponse{
		Battle:     out.Battle,
		Resolution: convertResolution(out.Resolution),
	}, nil
}

// TimeoutWildcard closes a wildcard whose window has passed
func (h *BattleHandler) TimeoutWildcard(
	ctx context.Context,
	req *apiv1alpha1.TimeoutWildcardRequest,
) (*apiv1alpha1.WildcardResponse, error) {
	if req.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	out, err := h.battleService.TimeoutWildcard(ctx, &battle.TimeoutWildcardInput{BattleID: req.BattleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.WildcardResponse{
		Battle:     out.Battle,
		Resolution: convertResolution(out.Resolution),
	}, nil
}

// FinalizeBattle settles ratings for a completed battle
func (h *BattleHandler) FinalizeBattle(
	ctx context.Context,
	req *apiv1alpha1.FinalizeBattleRequest,
) (*apiv1alpha1.FinalizeBattleResponse, error) {
	if req.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	out, err := h.battleService.FinalizeBattle(ctx, &battle.FinalizeBattleInput{BattleID: req.BattleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.FinalizeBattleResponse{
		Battle:     out.Battle,
		Settlement: convertSettlement(out.Settlement),
	}, nil
}

// GetBattle reads a battle
func (h *BattleHandler) GetBattle(
	ctx context.Context,
	req *apiv1alpha1.GetBattleRequest,
) (*apiv1alpha1.BattleResponse, error) {
	if req.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	out, err := h.battleService.GetBattle(ctx, &battle.GetBattleInput{BattleID: req.BattleID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.BattleResponse{Battle: out.Battle}, nil
}

// ListBattles lists a character's battles
func (h *BattleHandler) ListBattles(
	ctx context.Context,
	req *apiv1alpha1.ListBattlesRequest,
) (*apiv1alpha1.ListBattlesResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.battleService.ListBattles(ctx, &battle.ListBattlesInput{
		CharacterID: req.CharacterID,
		Limit:       int(req.Limit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ListBattlesResponse{BattleIDs: out.BattleIDs}, nil
}

// ListEvents reads a battle's event log
func (h *BattleHandler) ListEvents(
	ctx context.Context,
	req *apiv1alpha1.ListEventsRequest,
) (*apiv1alpha1.ListEventsResponse, error) {
	if req.BattleID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	out, err := h.battleService.ListEvents(ctx, &battle.ListEventsInput{
		BattleID: req.BattleID,
		Offset:   int64(req.Offset),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ListEventsResponse{Entries: convertEntries(out.Entries)}, nil
}

// GetLeaderboard lists the top rated characters
func (h *BattleHandler) GetLeaderboard(
	ctx context.Context,
	req *apiv1alpha1.GetLeaderboardRequest,
) (*apiv1alpha1.GetLeaderboardResponse, error) {
	out, err := h.battleService.GetLeaderboard(ctx, &battle.GetLeaderboardInput{Limit: int(req.Limit)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetLeaderboardResponse{Standings: convertStandings(out.Standings)}, nil
}

func convertTurnResult(r *engine.TurnResult) apiv1alpha1.TurnResult {
	if r == nil {
		return apiv1alpha1.TurnResult{}
	}
	return apiv1alpha1.TurnResult{
		Side:       r.Side,
		TurnNumber: r.TurnNumber,
		Outcome:    uint8(r.Outcome),
		Stance:     r.Stance,
		SkillUsed:  r.SkillUsed,
		Damage:     r.Damage,
		DOTDamage:  r.DOTDamage,
		Critical:   r.Critical,
		Completed:  r.Completed,
		WinnerID:   r.WinnerID,
		Wildcard:   r.Wildcard,
		Events:     r.Events,
	}
}

func convertResolution(res *engine.WildcardResolution) apiv1alpha1.WildcardResolution {
	if res == nil {
		return apiv1alpha1.WildcardResolution{}
	}
	return apiv1alpha1.WildcardResolution{
		Type:     res.Type,
		Resolved: res.Resolved,
		Applied:  res.Applied,
		Events:   res.Events,
	}
}

func convertSettlement(s *engine.Settlement) apiv1alpha1.Settlement {
	if s == nil {
		return apiv1alpha1.Settlement{}
	}
	return apiv1alpha1.Settlement{
		BattleID: s.BattleID,
		WinnerID: s.WinnerID,
		Player1:  convertSettlementEntry(s.Player1),
		Player2:  convertSettlementEntry(s.Player2),
	}
}

func convertSettlementEntry(e engine.SettlementEntry) apiv1alpha1.SettlementEntry {
	return apiv1alpha1.SettlementEntry{
		CharacterID: e.CharacterID,
		Result:      uint8(e.Result),
		OldMMR:      e.OldMMR,
		NewMMR:      e.NewMMR,
		Delta:       e.Delta,
		XP:          e.XP,
	}
}

func convertEntries(entries []eventlog.Entry) []apiv1alpha1.LogEntry {
	out := make([]apiv1alpha1.LogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, apiv1alpha1.LogEntry{
			Timestamp: e.Timestamp,
			Turn:      e.Turn,
			Message:   e.Message,
		})
	}
	return out
}

func convertStandings(standings []leaderboard.Standing) []apiv1alpha1.Standing {
	out := make([]apiv1alpha1.Standing, 0, len(standings))
	for _, s := range standings {
		out = append(out, apiv1alpha1.Standing{
			CharacterID: s.CharacterID,
			Owner:       s.Owner,
			MMR:         s.MMR,
			Wins:        s.Wins,
			Losses:      s.Losses,
			Ties:        s.Ties,
			WinStreak:   s.WinStreak,
		})
	}
	return out
}
