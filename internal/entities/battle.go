package entities

// BattleState is the lifecycle position of a battle
type BattleState uint8

// Battle states. Completed is terminal.
const (
	BattleStatePending BattleState = iota
	BattleStateActive
	BattleStateWildcard
	BattleStateCompleted
)

// String returns the state name
func (s BattleState) String() string {
	switch s {
	case BattleStatePending:
		return "pending"
	case BattleStateActive:
		return "active"
	case BattleStateWildcard:
		return "wildcard"
	case BattleStateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Stance is the per-turn tactical choice
type Stance uint8

// Stances. Aggressive beats Defensive, Defensive beats Counter, Counter beats Aggressive.
const (
	StanceNeutral Stance = iota
	StanceAggressive
	StanceDefensive
	StanceCounter
)

// Valid reports whether the stance is known
func (s Stance) Valid() bool {
	return s <= StanceCounter
}

// String returns the stance name
func (s Stance) String() string {
	switch s {
	case StanceNeutral:
		return "neutral"
	case StanceAggressive:
		return "aggressive"
	case StanceDefensive:
		return "defensive"
	case StanceCounter:
		return "counter"
	default:
		return "unknown"
	}
}

// WildcardType selects the effect a resolved wildcard applies
type WildcardType uint8

// Wildcard events
const (
	WildcardNone WildcardType = iota
	WildcardHealthSwap
	WildcardEnergySurge
	WildcardCleanse
	WildcardCataclysm
)

// WildcardTypeCount is the number of drawable wildcard events
const WildcardTypeCount = 4

// String returns the wildcard name
func (w WildcardType) String() string {
	switch w {
	case WildcardNone:
		return "none"
	case WildcardHealthSwap:
		return "health_swap"
	case WildcardEnergySurge:
		return "energy_surge"
	case WildcardCleanse:
		return "cleanse"
	case WildcardCataclysm:
		return "cataclysm"
	default:
		return "unknown"
	}
}

// Decision is a player's answer to a wildcard
type Decision uint8

// Decisions
const (
	DecisionNone Decision = iota
	DecisionReject
	DecisionAccept
)

// MaxEnergy is the energy ceiling
const MaxEnergy = 100

// CooldownSlots is the number of per-skill cooldown counters
const CooldownSlots = int(MaxSkillID)

// BattlePlayer is one side of a battle. It is owned by its Battle and refers to
// its character by id only.
type BattlePlayer struct {
	CharacterID     string
	CurrentHP       uint32
	MaxHP           uint32
	Energy          uint8
	Status          StatusEffects
	ComboCount      uint8
	GuaranteedCrit  bool
	DodgeBoost      uint8
	DodgeBoostTurns uint8
	Cooldowns       [CooldownSlots]uint8
	Stance          Stance
}

// Alive reports whether the player has hit points left
func (p *BattlePlayer) Alive() bool {
	return p.CurrentHP > 0
}

// Wildcard is the paused mid-battle event awaiting both decisions
type Wildcard struct {
	Active          bool
	Type            WildcardType
	Deadline        int64
	Player1Decision Decision
	Player2Decision Decision
}

// Decided reports whether both players have answered
func (w *Wildcard) Decided() bool {
	return w.Player1Decision != DecisionNone && w.Player2Decision != DecisionNone
}

// Battle is the complete persisted state of one fight.
// It contains no slices or maps, so assigning a Battle copies it fully.
type Battle struct {
	ID                  string
	Player1             BattlePlayer
	Player2             BattlePlayer
	CurrentTurn         uint8
	TurnNumber          uint32
	State               BattleState
	WinnerID            string
	StartTimestamp      int64
	LastActionTimestamp int64
	Wildcard            Wildcard
	RandomSeed          uint64
	Finalized           bool
}

// Player returns the player for side 1 or 2
func (b *Battle) Player(side uint8) *BattlePlayer {
	if side == 2 {
		return &b.Player2
	}
	return &b.Player1
}

// Opponent returns the player on the other side
func (b *Battle) Opponent(side uint8) *BattlePlayer {
	return b.Player(OtherSide(side))
}

// SideOf returns which side a character fights on, preferring the side whose turn
// it is when both sides hold the same character
func (b *Battle) SideOf(characterID string) (uint8, bool) {
	current := b.CurrentTurn
	if b.Player(current).CharacterID == characterID {
		return current, true
	}
	other := OtherSide(current)
	if b.Player(other).CharacterID == characterID {
		return other, true
	}
	return 0, false
}

// OtherSide flips 1 and 2
func OtherSide(side uint8) uint8 {
	if side == 1 {
		return 2
	}
	return 1
}

// IsTie reports whether a completed battle ended without a winner
func (b *Battle) IsTie() bool {
	return b.State == BattleStateCompleted && b.WinnerID == ""
}
