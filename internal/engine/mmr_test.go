package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

func completedBattle(winner string) *entities.Battle {
	b := &entities.Battle{
		ID:       "battle-1",
		State:    entities.BattleStateCompleted,
		WinnerID: winner,
		Player1:  entities.BattlePlayer{CharacterID: "char-p1", MaxHP: 120, CurrentHP: 40},
		Player2:  entities.BattlePlayer{CharacterID: "char-p2", MaxHP: 120},
	}
	ApplyStatus(&b.Player1, entities.StatusRage, 2)
	ApplyStatus(&b.Player2, entities.StatusBurn, 1)
	return b
}

func TestRatingDelta(t *testing.T) {
	assert.Equal(t, int32(16), RatingDelta(1000, 1000, 1))
	assert.Equal(t, int32(-16), RatingDelta(1000, 1000, 0))
	assert.Equal(t, int32(0), RatingDelta(1000, 1000, 0.5))
	assert.Less(t, RatingDelta(1400, 1000, 1), int32(16))
	assert.Greater(t, RatingDelta(1000, 1400, 1), int32(16))
	assert.Equal(t, uint32(0), ApplyDelta(10, -16))
}

func TestSettle(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	t.Run("winner and loser", func(t *testing.T) {
		b := completedBattle("char-p1")
		out, err := eng.Settle(ctx, &SettleInput{Battle: b, Player1MMR: 1000, Player2MMR: 1000})
		require.NoError(t, err)

		s := out.Settlement
		assert.False(t, s.Tie())
		assert.Equal(t, ResultWin, s.Player1.Result)
		assert.Equal(t, uint32(1016), s.Player1.NewMMR)
		assert.Equal(t, uint64(XPWin), s.Player1.XP)
		assert.Equal(t, ResultLoss, s.Player2.Result)
		assert.Equal(t, uint32(984), s.Player2.NewMMR)
		assert.Equal(t, uint64(XPLoss), s.Player2.XP)

		assert.True(t, b.Finalized)
		assert.Zero(t, b.Player1.Status.Mask())
		assert.Zero(t, b.Player2.Status.Mask())
	})

	t.Run("second settle is refused", func(t *testing.T) {
		b := completedBattle("char-p2")
		_, err := eng.Settle(ctx, &SettleInput{Battle: b, Player1MMR: 1000, Player2MMR: 1000})
		require.NoError(t, err)

		_, err = eng.Settle(ctx, &SettleInput{Battle: b, Player1MMR: 1000, Player2MMR: 1000})
		assert.True(t, errors.IsAlreadyExists(err))
		assert.True(t, errors.HasReason(err, errors.ReasonAlreadyFinalized))
	})

	t.Run("tie", func(t *testing.T) {
		b := completedBattle("")
		out, err := eng.Settle(ctx, &SettleInput{Battle: b, Player1MMR: 1100, Player2MMR: 1000})
		require.NoError(t, err)

		assert.True(t, out.Settlement.Tie())
		assert.Equal(t, ResultTie, out.Settlement.Player1.Result)
		assert.Negative(t, out.Settlement.Player1.Delta)
		assert.Positive(t, out.Settlement.Player2.Delta)
		assert.Equal(t, uint64(XPTie), out.Settlement.Player2.XP)
	})

	t.Run("requires a completed battle", func(t *testing.T) {
		b := completedBattle("")
		b.State = entities.BattleStateActive
		_, err := eng.Settle(ctx, &SettleInput{Battle: b})
		assert.True(t, errors.HasReason(err, errors.ReasonNotCompleted))
		assert.False(t, b.Finalized)
	})

	t.Run("unknown winner is corrupt state", func(t *testing.T) {
		b := completedBattle("char-x")
		_, err := eng.Settle(ctx, &SettleInput{Battle: b})
		assert.True(t, errors.HasReason(err, errors.ReasonCorruptState))
	})
}

func TestSettlementEntryApply(t *testing.T) {
	c := newWarrior("char-p1")
	c.WinStreak = 2

	SettlementEntry{Result: ResultWin, NewMMR: 1016, XP: XPWin}.Apply(c)
	assert.Equal(t, uint32(1), c.TotalWins)
	assert.Equal(t, uint32(3), c.WinStreak)
	assert.Equal(t, uint32(1016), c.MMR)

	SettlementEntry{Result: ResultTie, NewMMR: 1016, XP: XPTie}.Apply(c)
	assert.Zero(t, c.WinStreak)
	assert.Equal(t, uint64(XPWin+XPTie), c.XP)

	SettlementEntry{Result: ResultLoss, NewMMR: 1000, XP: XPLoss}.Apply(c)
	assert.Equal(t, uint32(1), c.TotalLosses)
}
