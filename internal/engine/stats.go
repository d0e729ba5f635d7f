package engine

import "github.com/uzochukwuV/massacombat/internal/entities"

// EffectiveStats sums a character's base stats with the bonuses of its equipped
// items. Missing items contribute nothing; chances are capped at 100.
func EffectiveStats(c *entities.Character, items ...*entities.Equipment) entities.Stats {
	hp := c.MaxHP
	dmgMin := c.DamageMin
	dmgMax := c.DamageMax
	crit := uint32(c.CritChance)
	dodge := uint32(c.DodgeChance)

	for _, item := range items {
		if item == nil {
			continue
		}
		hp += item.HPBonus
		dmgMin += item.DamageMinBonus
		dmgMax += item.DamageMaxBonus
		crit += uint32(item.CritBonus)
		dodge += uint32(item.DodgeBonus)
	}

	if dmgMax < dmgMin {
		dmgMax = dmgMin
	}

	return entities.Stats{
		HP:          hp,
		DamageMin:   dmgMin,
		DamageMax:   dmgMax,
		CritChance:  capPercent(crit),
		DodgeChance: capPercent(dodge),
		Defense:     c.Defense,
	}
}

func capPercent(v uint32) uint8 {
	if v > 100 {
		return 100
	}
	return uint8(v)
}
