package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uzochukwuV/massacombat/internal/entities"
)

func TestCombatantEntity(t *testing.T) {
	player := &entities.BattlePlayer{CharacterID: "char-123", CurrentHP: 40}

	entity := wrapPlayer(player)

	assert.Equal(t, "char-123", entity.GetID())
	assert.Equal(t, "combatant", entity.GetType())
	assert.Equal(t, uint32(40), entity.CurrentHP)
}

func TestBattleEntity(t *testing.T) {
	battle := &entities.Battle{ID: "battle-456"}

	entity := wrapBattle(battle)

	assert.Equal(t, "battle-456", entity.GetID())
	assert.Equal(t, "battle", entity.GetType())
	assert.Equal(t, battle, entity.Battle)
}
