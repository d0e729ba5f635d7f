package engine

import (
	"github.com/uzochukwuV/massacombat/internal/entities"
)

// Fighter is a character together with its equipment-adjusted stats
type Fighter struct {
	Character *entities.Character
	Stats     entities.Stats
}

// Action is what the acting player chose this turn
type Action struct {
	Stance    entities.Stance
	UseSkill  bool
	SkillSlot uint8
}

// StartBattleInput describes a new battle
type StartBattleInput struct {
	BattleID string
	Player1  *Fighter
	Player2  *Fighter
	// Caller is the creator's address, folded into the random seed
	Caller []byte
	Now    int64
}

// StartBattleOutput holds the created battle
type StartBattleOutput struct {
	Battle *entities.Battle
}

// ResolveTurnInput is one action against a battle
type ResolveTurnInput struct {
	Battle   *entities.Battle
	Attacker *Fighter
	Defender *Fighter
	Action   Action
	Now      int64
}

// ResolveTurnOutput describes what happened
type ResolveTurnOutput struct {
	Result *TurnResult
}

// TurnOutcome is the kind of turn that was played
type TurnOutcome uint8

// Turn outcomes
const (
	// OutcomeHit is an attack or offensive skill that connected
	OutcomeHit TurnOutcome = iota
	// OutcomeDodged is an attack the defender evaded
	OutcomeDodged
	// OutcomeSkillEffect is a self or debuff skill with no damage roll
	OutcomeSkillEffect
	// OutcomeStunned is a turn lost to stun
	OutcomeStunned
	// OutcomeDOTKnockout is a player dying to poison or burn before the action resolves
	OutcomeDOTKnockout
)

// String returns the outcome name
func (o TurnOutcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeDodged:
		return "dodged"
	case OutcomeSkillEffect:
		return "skill_effect"
	case OutcomeStunned:
		return "stunned"
	case OutcomeDOTKnockout:
		return "dot_knockout"
	default:
		return "unknown"
	}
}

// TurnResult is the resolved turn
type TurnResult struct {
	Side       uint8
	TurnNumber uint32
	Outcome    TurnOutcome
	Stance     entities.Stance
	SkillUsed  entities.SkillID
	Damage     uint32
	// DOTDamage is the poison and burn dealt to both players before the action
	DOTDamage uint32
	Critical  bool
	Completed bool
	WinnerID  string
	// Wildcard is set when this turn triggered one
	Wildcard entities.WildcardType
	Events   []string
}

// DecideWildcardInput is one player's wildcard answer
type DecideWildcardInput struct {
	Battle      *entities.Battle
	CharacterID string
	Accept      bool
	Now         int64
}

// DecideWildcardOutput reports whether the wildcard resolved
type DecideWildcardOutput struct {
	Resolution *WildcardResolution
}

// TimeoutWildcardInput asks to resolve an expired wildcard
type TimeoutWildcardInput struct {
	Battle *entities.Battle
	Now    int64
}

// TimeoutWildcardOutput reports the forced resolution
type TimeoutWildcardOutput struct {
	Resolution *WildcardResolution
}

// WildcardResolution is the state of a wildcard after a decision or timeout
type WildcardResolution struct {
	Type entities.WildcardType
	// Resolved is false while one player has yet to answer
	Resolved bool
	// Applied is true only when both players accepted
	Applied bool
	Events  []string
}

// SettleInput carries the ratings going into settlement
type SettleInput struct {
	Battle     *entities.Battle
	Player1MMR uint32
	Player2MMR uint32
}

// SettleOutput holds the computed settlement
type SettleOutput struct {
	Settlement *Settlement
}
