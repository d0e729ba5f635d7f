package engine

import (
	"github.com/uzochukwuV/massacombat/internal/entities"
)

// Percentages applied by the status effects
const (
	PoisonDamagePercent = 5
	BurnDamagePercent   = 8
	RageDamagePercent   = 150
	ShieldDamagePercent = 50
	basePercent         = 100
)

// ApplyStatus activates an effect, keeping the longer of the current and new durations
func ApplyStatus(p *entities.BattlePlayer, effect entities.StatusEffect, turns uint8) {
	if p.Status.Turns(effect) >= turns {
		return
	}
	p.Status.Set(effect, turns)
}

// ApplyDOT deals poison and burn damage to the player and returns the total dealt
func ApplyDOT(p *entities.BattlePlayer) uint32 {
	var total uint32
	if p.Status.Has(entities.StatusPoison) {
		total += percentOf(p.MaxHP, PoisonDamagePercent)
	}
	if p.Status.Has(entities.StatusBurn) {
		total += percentOf(p.MaxHP, BurnDamagePercent)
	}
	return dealDamage(p, total)
}

// TickDurations counts one turn off every active effect and the dodge boost.
// An effect whose counter reaches zero is no longer active.
func TickDurations(p *entities.BattlePlayer) {
	for _, e := range entities.AllStatusEffects {
		if turns := p.Status.Turns(e); turns > 0 {
			p.Status.Set(e, turns-1)
		}
	}
	if p.DodgeBoostTurns > 0 {
		p.DodgeBoostTurns--
		if p.DodgeBoostTurns == 0 {
			p.DodgeBoost = 0
		}
	}
}

// IsStunned reports whether the player loses their next action
func IsStunned(p *entities.BattlePlayer) bool {
	return p.Status.Has(entities.StatusStun)
}

// RageMultiplier is the outgoing damage percentage
func RageMultiplier(p *entities.BattlePlayer) uint32 {
	if p.Status.Has(entities.StatusRage) {
		return RageDamagePercent
	}
	return basePercent
}

// ShieldMultiplier is the incoming damage percentage
func ShieldMultiplier(p *entities.BattlePlayer) uint32 {
	if p.Status.Has(entities.StatusShield) {
		return ShieldDamagePercent
	}
	return basePercent
}

// TotalDodgeChance adds the player's temporary boost to their base dodge, capped at 100
func TotalDodgeChance(base uint8, p *entities.BattlePlayer) uint8 {
	total := uint32(base)
	if p.DodgeBoostTurns > 0 {
		total += uint32(p.DodgeBoost)
	}
	if total > 100 {
		return 100
	}
	return uint8(total)
}

// ClearAllStatus removes every effect and duration counter, including the dodge boost
func ClearAllStatus(p *entities.BattlePlayer) {
	p.Status.ClearAll()
	p.DodgeBoost = 0
	p.DodgeBoostTurns = 0
}

func percentOf(v uint32, percent uint32) uint32 {
	return uint32(uint64(v) * uint64(percent) / 100)
}

// dealDamage lowers hp with a floor of zero and returns what was actually removed
func dealDamage(p *entities.BattlePlayer, amount uint32) uint32 {
	if amount >= p.CurrentHP {
		dealt := p.CurrentHP
		p.CurrentHP = 0
		return dealt
	}
	p.CurrentHP -= amount
	return amount
}

func heal(p *entities.BattlePlayer, amount uint32) uint32 {
	room := p.MaxHP - p.CurrentHP
	if p.CurrentHP > p.MaxHP {
		room = 0
	}
	if amount > room {
		amount = room
	}
	p.CurrentHP += amount
	return amount
}
