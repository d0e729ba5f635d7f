package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

// Rating and experience constants
const (
	KFactor     = 32
	StartingMMR = 1000
	XPWin       = 50
	XPTie       = 30
	XPLoss      = 20
)

// MatchResult is one side's result
type MatchResult uint8

// Match results
const (
	ResultLoss MatchResult = iota
	ResultTie
	ResultWin
)

// String returns the result name
func (r MatchResult) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultTie:
		return "tie"
	default:
		return "loss"
	}
}

func (r MatchResult) score() float64 {
	switch r {
	case ResultWin:
		return 1
	case ResultTie:
		return 0.5
	default:
		return 0
	}
}

// SettlementEntry is one character's share of a settlement
type SettlementEntry struct {
	CharacterID string
	Result      MatchResult
	OldMMR      uint32
	NewMMR      uint32
	Delta       int32
	XP          uint64
}

// Apply updates the character's record with this entry
func (s SettlementEntry) Apply(c *entities.Character) {
	c.MMR = s.NewMMR
	c.XP += s.XP
	switch s.Result {
	case ResultWin:
		c.TotalWins++
		c.WinStreak++
	case ResultLoss:
		c.TotalLosses++
		c.WinStreak = 0
	default:
		c.WinStreak = 0
	}
}

// Settlement is the outcome of finalizing a battle
type Settlement struct {
	BattleID string
	WinnerID string
	Player1  SettlementEntry
	Player2  SettlementEntry
}

// Tie reports whether the battle had no winner
func (s *Settlement) Tie() bool {
	return s.WinnerID == ""
}

// ExpectedScore is the Elo expectation of a player rated mine against opp
func ExpectedScore(mine, opp uint32) float64 {
	return 1 / (1 + math.Pow(10, (float64(opp)-float64(mine))/400))
}

// RatingDelta is the rounded Elo change for the given score
func RatingDelta(mine, opp uint32, score float64) int32 {
	return int32(math.Round(KFactor * (score - ExpectedScore(mine, opp))))
}

// ApplyDelta adds delta to rating with a floor of zero
func ApplyDelta(rating uint32, delta int32) uint32 {
	r := int64(rating) + int64(delta)
	if r < 0 {
		return 0
	}
	return uint32(r)
}

// Settle marks the battle finalized, clears both players' effects, and returns the
// rating changes. It fails on battles that are not completed or already finalized.
func (e *engine) Settle(_ context.Context, input *SettleInput) (*SettleOutput, error) {
	if input == nil || input.Battle == nil {
		return nil, errors.InvalidArgument("battle is required")
	}
	b := input.Battle
	if b.State != entities.BattleStateCompleted {
		return nil, errors.InvalidState(errors.ReasonNotCompleted,
			fmt.Sprintf("battle %s is %s", b.ID, b.State))
	}
	if b.Finalized {
		return nil, errors.AlreadyFinalized(b.ID)
	}

	r1, r2 := ResultTie, ResultTie
	switch b.WinnerID {
	case "":
	case b.Player1.CharacterID:
		r1, r2 = ResultWin, ResultLoss
	case b.Player2.CharacterID:
		r1, r2 = ResultLoss, ResultWin
	default:
		return nil, errors.DataLossf("battle %s winner %s is not a participant", b.ID, b.WinnerID).
			WithReason(errors.ReasonCorruptState)
	}

	settlement := &Settlement{
		BattleID: b.ID,
		WinnerID: b.WinnerID,
		Player1:  settleSide(b.Player1.CharacterID, input.Player1MMR, input.Player2MMR, r1),
		Player2:  settleSide(b.Player2.CharacterID, input.Player2MMR, input.Player1MMR, r2),
	}

	ClearAllStatus(&b.Player1)
	ClearAllStatus(&b.Player2)
	b.Finalized = true

	return &SettleOutput{Settlement: settlement}, nil
}

func settleSide(characterID string, mine, opp uint32, result MatchResult) SettlementEntry {
	delta := RatingDelta(mine, opp, result.score())
	xp := uint64(XPLoss)
	switch result {
	case ResultWin:
		xp = XPWin
	case ResultTie:
		xp = XPTie
	}
	return SettlementEntry{
		CharacterID: characterID,
		Result:      result,
		OldMMR:      mine,
		NewMMR:      ApplyDelta(mine, delta),
		Delta:       delta,
		XP:          xp,
	}
}
