package engine

import "github.com/uzochukwuV/massacombat/internal/entities"

// Stance damage percentages
const (
	StanceAdvantagePercent = 150
	// StanceClashPercent is the house rule for mirrored committed stances
	StanceClashPercent = 75
)

// beats maps each stance to the one it counters
var beats = map[entities.Stance]entities.Stance{
	entities.StanceAggressive: entities.StanceDefensive,
	entities.StanceDefensive:  entities.StanceCounter,
	entities.StanceCounter:    entities.StanceAggressive,
}

// StanceMultiplier is the damage percentage for an attacker stance against the
// defender's last stance. A winning matchup deals 150% and everything else deals
// 100%, except that two identical committed stances clash for 75%. The clash is
// a house rule layered on the rock-paper-scissors table; it ranks a mirror match
// below a losing matchup so the three outcomes order strictly.
func StanceMultiplier(attacker, defender entities.Stance) uint32 {
	if target, ok := beats[attacker]; ok && target == defender {
		return StanceAdvantagePercent
	}
	if attacker == defender && attacker != entities.StanceNeutral {
		return StanceClashPercent
	}
	return basePercent
}
