package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/uzochukwuV/massacombat/internal/entities"
)

// Entity types published on the bus
const (
	EntityTypeCombatant = "combatant"
	EntityTypeBattle    = "battle"
)

// CombatantEntity wraps a battle player to implement core.Entity
type CombatantEntity struct {
	*entities.BattlePlayer
}

// GetID returns the character id fighting on this side
func (c *CombatantEntity) GetID() string {
	return c.CharacterID
}

// GetType returns the entity type for rpg-toolkit
func (c *CombatantEntity) GetType() string {
	return EntityTypeCombatant
}

// BattleEntity wraps a battle to implement core.Entity
type BattleEntity struct {
	*entities.Battle
}

// GetID returns the battle id
func (b *BattleEntity) GetID() string {
	return b.ID
}

// GetType returns the entity type for rpg-toolkit
func (b *BattleEntity) GetType() string {
	return EntityTypeBattle
}

var (
	_ core.Entity = (*CombatantEntity)(nil)
	_ core.Entity = (*BattleEntity)(nil)
)

func wrapPlayer(p *entities.BattlePlayer) *CombatantEntity {
	return &CombatantEntity{BattlePlayer: p}
}

func wrapBattle(b *entities.Battle) *BattleEntity {
	return &BattleEntity{Battle: b}
}
