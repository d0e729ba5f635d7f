package battle

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/uzochukwuV/massacombat/internal/engine"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/repositories/eventlog"
	"github.com/uzochukwuV/massacombat/internal/repositories/leaderboard"
)

// CreateBattleInput starts a fight between two characters
type CreateBattleInput struct {
	// BattleID is generated when empty
	BattleID     string
	Character1ID string
	Character2ID string
	// Caller must own Character1
	Caller common.Address
}

// CreateBattleOutput holds the new battle
type CreateBattleOutput struct {
	Battle *entities.Battle
}

// ExecuteTurnInput is one player's action
type ExecuteTurnInput struct {
	BattleID    string
	CharacterID string
	Stance      entities.Stance
	UseSkill    bool
	SkillSlot   uint8
	// Caller must own the acting character
	Caller common.Address
}

// ExecuteTurnOutput holds the resolved turn and the battle after it
type ExecuteTurnOutput struct {
	Battle *entities.Battle
	Result *engine.TurnResult
}

// DecideWildcardInput is one player's answer to a pending wildcard
type DecideWildcardInput struct {
	BattleID    string
	CharacterID string
	Accept      bool
	Caller      common.Address
}

// DecideWildcardOutput holds the battle after the decision
type DecideWildcardOutput struct {
	Battle     *entities.Battle
	Resolution *engine.WildcardResolution
}

// TimeoutWildcardInput asks to close an expired wildcard. Anyone may call it.
type TimeoutWildcardInput struct {
	BattleID string
}

// TimeoutWildcardOutput holds the battle after the forced resolution
type TimeoutWildcardOutput struct {
	Battle     *entities.Battle
	Resolution *engine.WildcardResolution
}

// FinalizeBattleInput settles a completed battle. Anyone may call it.
type FinalizeBattleInput struct {
	BattleID string
}

// FinalizeBattleOutput holds the settlement that was applied
type FinalizeBattleOutput struct {
	Battle     *entities.Battle
	Settlement *engine.Settlement
}

// GetBattleInput identifies a battle
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput is the battle read model
type GetBattleOutput struct {
	Battle *entities.Battle
}

// ListBattlesInput lists a character's battles, newest first
type ListBattlesInput struct {
	CharacterID string
	Limit       int
}

// ListBattlesOutput holds battle IDs
type ListBattlesOutput struct {
	BattleIDs []string
}

// ListEventsInput reads a battle's event log
type ListEventsInput struct {
	BattleID string
	Offset   int64
}

// ListEventsOutput holds log entries in write order
type ListEventsOutput struct {
	Entries []eventlog.Entry
}

// GetLeaderboardInput limits the standings returned; zero uses the store default
type GetLeaderboardInput struct {
	Limit int
}

// GetLeaderboardOutput holds standings ordered by rating
type GetLeaderboardOutput struct {
	Standings []leaderboard.Standing
}
