package entities

// StatusEffect is one of the five timed effects a combatant can carry
type StatusEffect uint8

// Status effects, in bitmask order (Poison=1, Stun=2, Shield=4, Rage=8, Burn=16)
const (
	StatusPoison StatusEffect = iota
	StatusStun
	StatusShield
	StatusRage
	StatusBurn

	statusEffectCount
)

// AllStatusEffects lists every effect in bitmask order
var AllStatusEffects = [statusEffectCount]StatusEffect{
	StatusPoison, StatusStun, StatusShield, StatusRage, StatusBurn,
}

// String returns the effect name
func (e StatusEffect) String() string {
	switch e {
	case StatusPoison:
		return "poison"
	case StatusStun:
		return "stun"
	case StatusShield:
		return "shield"
	case StatusRage:
		return "rage"
	case StatusBurn:
		return "burn"
	default:
		return "unknown"
	}
}

// Bit is the effect's flag in the storage bitmask
func (e StatusEffect) Bit() uint8 {
	return 1 << e
}

// StatusEffects holds the remaining turns for each effect.
// An effect is active exactly while its remaining turns are above zero.
type StatusEffects struct {
	turns [statusEffectCount]uint8
}

// Has reports whether the effect is active
func (s StatusEffects) Has(e StatusEffect) bool {
	return e < statusEffectCount && s.turns[e] > 0
}

// Turns returns the remaining turns of an effect
func (s StatusEffects) Turns(e StatusEffect) uint8 {
	if e >= statusEffectCount {
		return 0
	}
	return s.turns[e]
}

// Set activates an effect for the given number of turns; zero clears it
func (s *StatusEffects) Set(e StatusEffect, turns uint8) {
	if e < statusEffectCount {
		s.turns[e] = turns
	}
}

// Clear removes a single effect
func (s *StatusEffects) Clear(e StatusEffect) {
	s.Set(e, 0)
}

// ClearAll removes every effect
func (s *StatusEffects) ClearAll() {
	s.turns = [statusEffectCount]uint8{}
}

// Mask encodes the active effects as the storage bitmask
func (s StatusEffects) Mask() uint8 {
	var mask uint8
	for _, e := range AllStatusEffects {
		if s.Has(e) {
			mask |= e.Bit()
		}
	}
	return mask
}

// StatusEffectsFromStorage rebuilds the set from its bitmask and counters.
// It returns false when a bit and its counter disagree.
func StatusEffectsFromStorage(mask uint8, turns [5]uint8) (StatusEffects, bool) {
	var s StatusEffects
	for _, e := range AllStatusEffects {
		bitSet := mask&e.Bit() != 0
		if bitSet != (turns[e] > 0) {
			return StatusEffects{}, false
		}
		s.turns[e] = turns[e]
	}
	return s, mask>>statusEffectCount == 0
}

// Counters returns the per-effect counters in bitmask order
func (s StatusEffects) Counters() [5]uint8 {
	return s.turns
}
