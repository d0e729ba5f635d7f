package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uzochukwuV/massacombat/internal/entities"
)

func TestTickDurations(t *testing.T) {
	for _, effect := range entities.AllStatusEffects {
		t.Run(effect.String(), func(t *testing.T) {
			p := &entities.BattlePlayer{CurrentHP: 100, MaxHP: 100}
			ApplyStatus(p, effect, 3)

			for i := 0; i < 2; i++ {
				TickDurations(p)
				assert.True(t, p.Status.Has(effect), "cleared early after %d ticks", i+1)
				assert.NotZero(t, p.Status.Mask()&effect.Bit())
			}
			TickDurations(p)
			assert.False(t, p.Status.Has(effect))
			assert.Zero(t, p.Status.Mask())
		})
	}
}

func TestApplyStatusKeepsLongerDuration(t *testing.T) {
	p := &entities.BattlePlayer{}
	ApplyStatus(p, entities.StatusRage, 3)
	ApplyStatus(p, entities.StatusRage, 1)
	assert.Equal(t, uint8(3), p.Status.Turns(entities.StatusRage))
}

func TestApplyDOT(t *testing.T) {
	t.Run("poison and burn stack", func(t *testing.T) {
		p := &entities.BattlePlayer{CurrentHP: 120, MaxHP: 120}
		ApplyStatus(p, entities.StatusPoison, 2)
		ApplyStatus(p, entities.StatusBurn, 2)

		assert.Equal(t, uint32(15), ApplyDOT(p))
		assert.Equal(t, uint32(105), p.CurrentHP)
	})

	t.Run("floors at zero", func(t *testing.T) {
		p := &entities.BattlePlayer{CurrentHP: 3, MaxHP: 120}
		ApplyStatus(p, entities.StatusBurn, 1)

		assert.Equal(t, uint32(3), ApplyDOT(p))
		assert.Zero(t, p.CurrentHP)
	})

	t.Run("nothing without effects", func(t *testing.T) {
		p := &entities.BattlePlayer{CurrentHP: 50, MaxHP: 120}
		assert.Zero(t, ApplyDOT(p))
		assert.Equal(t, uint32(50), p.CurrentHP)
	})
}

func TestDodgeBoost(t *testing.T) {
	p := &entities.BattlePlayer{DodgeBoost: 40, DodgeBoostTurns: 2}
	assert.Equal(t, uint8(45), TotalDodgeChance(5, p))
	assert.Equal(t, uint8(100), TotalDodgeChance(90, p))

	TickDurations(p)
	assert.Equal(t, uint8(45), TotalDodgeChance(5, p))
	TickDurations(p)
	assert.Equal(t, uint8(5), TotalDodgeChance(5, p))
	assert.Zero(t, p.DodgeBoost)
}

func TestMultipliers(t *testing.T) {
	p := &entities.BattlePlayer{}
	assert.Equal(t, uint32(100), RageMultiplier(p))
	assert.Equal(t, uint32(100), ShieldMultiplier(p))

	ApplyStatus(p, entities.StatusRage, 1)
	ApplyStatus(p, entities.StatusShield, 1)
	assert.Equal(t, uint32(150), RageMultiplier(p))
	assert.Equal(t, uint32(50), ShieldMultiplier(p))
}

func TestClearAllStatus(t *testing.T) {
	p := &entities.BattlePlayer{DodgeBoost: 40, DodgeBoostTurns: 2, GuaranteedCrit: true}
	for _, e := range entities.AllStatusEffects {
		ApplyStatus(p, e, 2)
	}

	ClearAllStatus(p)

	assert.Zero(t, p.Status.Mask())
	assert.Equal(t, [5]uint8{}, p.Status.Counters())
	assert.Zero(t, p.DodgeBoostTurns)
	assert.True(t, p.GuaranteedCrit)
}
