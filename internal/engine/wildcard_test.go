package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

const wildcardDeadline = 1700000300

func pendingWildcard(t entities.WildcardType) *entities.Battle {
	return &entities.Battle{
		ID:          "battle-1",
		State:       entities.BattleStateWildcard,
		CurrentTurn: 2,
		Player1:     entities.BattlePlayer{CharacterID: "char-p1", CurrentHP: 30, MaxHP: 120, Energy: 50},
		Player2:     entities.BattlePlayer{CharacterID: "char-p2", CurrentHP: 100, MaxHP: 100, Energy: 90},
		Wildcard: entities.Wildcard{
			Active:   true,
			Type:     t,
			Deadline: wildcardDeadline,
		},
	}
}

func newTestEngine(t *testing.T) Engine {
	eng, err := New(DefaultConfig())
	require.NoError(t, err)
	return eng
}

func decide(t *testing.T, eng Engine, b *entities.Battle, id string, accept bool) (*WildcardResolution, error) {
	t.Helper()
	out, err := eng.DecideWildcard(context.Background(), &DecideWildcardInput{
		Battle: b, CharacterID: id, Accept: accept, Now: wildcardDeadline - 1,
	})
	if err != nil {
		return nil, err
	}
	return out.Resolution, nil
}

func TestDecideWildcard(t *testing.T) {
	eng := newTestEngine(t)

	t.Run("a single reject discards the effect", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardHealthSwap)
		_, err := decide(t, eng, b, "char-p1", true)
		require.NoError(t, err)
		res, err := decide(t, eng, b, "char-p2", false)
		require.NoError(t, err)

		assert.True(t, res.Resolved)
		assert.False(t, res.Applied)
		assert.Equal(t, uint32(30), b.Player1.CurrentHP)
		assert.Equal(t, entities.BattleStateActive, b.State)
		assert.Equal(t, entities.Wildcard{}, b.Wildcard)
	})

	t.Run("rejects outsiders", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardCleanse)
		_, err := decide(t, eng, b, "char-x", true)
		assert.True(t, errors.IsPermissionDenied(err))
		assert.True(t, errors.HasReason(err, errors.ReasonNotYourDecision))
	})

	t.Run("rejects a second answer", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardCleanse)
		_, err := decide(t, eng, b, "char-p1", true)
		require.NoError(t, err)
		_, err = decide(t, eng, b, "char-p1", false)
		assert.True(t, errors.HasReason(err, errors.ReasonAlreadyDecided))
		assert.Equal(t, entities.DecisionAccept, b.Wildcard.Player1Decision)
	})

	t.Run("rejects answers after the deadline", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardCleanse)
		_, err := eng.DecideWildcard(context.Background(), &DecideWildcardInput{
			Battle: b, CharacterID: "char-p1", Accept: true, Now: wildcardDeadline + 1,
		})
		assert.True(t, errors.HasReason(err, errors.ReasonWildcardExpired))
	})

	t.Run("requires a pending wildcard", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardCleanse)
		b.State = entities.BattleStateActive
		_, err := decide(t, eng, b, "char-p1", true)
		assert.True(t, errors.IsFailedPrecondition(err))
		assert.True(t, errors.HasReason(err, errors.ReasonWrongState))
	})

	t.Run("a character fighting itself answers both sides", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardCleanse)
		b.Player2.CharacterID = "char-p1"
		_, err := decide(t, eng, b, "char-p1", true)
		require.NoError(t, err)
		res, err := decide(t, eng, b, "char-p1", true)
		require.NoError(t, err)
		assert.True(t, res.Applied)
	})
}

func TestTimeoutWildcard(t *testing.T) {
	eng := newTestEngine(t)

	t.Run("not before the deadline", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardCataclysm)
		_, err := eng.TimeoutWildcard(context.Background(), &TimeoutWildcardInput{Battle: b, Now: wildcardDeadline})
		assert.True(t, errors.HasReason(err, errors.ReasonWildcardNotExpired))
		assert.Equal(t, entities.BattleStateWildcard, b.State)
	})

	t.Run("missing answers count as rejections", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardCataclysm)
		_, err := decide(t, eng, b, "char-p1", true)
		require.NoError(t, err)

		out, err := eng.TimeoutWildcard(context.Background(), &TimeoutWildcardInput{Battle: b, Now: wildcardDeadline + 1})
		require.NoError(t, err)

		assert.True(t, out.Resolution.Resolved)
		assert.False(t, out.Resolution.Applied)
		assert.Equal(t, entities.BattleStateActive, b.State)
		assert.Equal(t, uint32(30), b.Player1.CurrentHP)
	})
}

func TestApplyWildcard(t *testing.T) {
	t.Run("health swap clamps to each max", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardHealthSwap)
		b.Player1.CurrentHP = 110
		b.Player2.CurrentHP = 40
		ApplyWildcard(b, entities.WildcardHealthSwap)
		assert.Equal(t, uint32(40), b.Player1.CurrentHP)
		assert.Equal(t, uint32(100), b.Player2.CurrentHP)
	})

	t.Run("energy surge", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardEnergySurge)
		ApplyWildcard(b, entities.WildcardEnergySurge)
		assert.Equal(t, uint8(80), b.Player1.Energy)
		assert.Equal(t, uint8(100), b.Player2.Energy)
		assert.Equal(t, uint32(42), b.Player1.CurrentHP)
		assert.Equal(t, uint32(100), b.Player2.CurrentHP)
	})

	t.Run("cleanse", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardCleanse)
		ApplyStatus(&b.Player1, entities.StatusPoison, 2)
		ApplyStatus(&b.Player2, entities.StatusRage, 2)
		ApplyWildcard(b, entities.WildcardCleanse)
		assert.Zero(t, b.Player1.Status.Mask())
		assert.Zero(t, b.Player2.Status.Mask())
	})

	t.Run("cataclysm never kills", func(t *testing.T) {
		b := pendingWildcard(entities.WildcardCataclysm)
		b.Player1.CurrentHP = 5
		ApplyWildcard(b, entities.WildcardCataclysm)
		assert.Equal(t, uint32(1), b.Player1.CurrentHP)
		assert.Equal(t, uint32(85), b.Player2.CurrentHP)
	})
}
