package character

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/uzochukwuV/massacombat/internal/entities"
)

// MintInput describes a new character. An empty CharacterID is generated.
type MintInput struct {
	CharacterID string
	Owner       common.Address
	Name        string
	Class       entities.Class
}

// MintOutput holds the minted character
type MintOutput struct {
	Character *entities.Character
}

// GetInput identifies a character
type GetInput struct {
	CharacterID string
}

// GetOutput holds the character
type GetOutput struct {
	Character *entities.Character
}

// ListByOwnerInput selects an owner's characters
type ListByOwnerInput struct {
	Owner common.Address
}

// ListByOwnerOutput holds the owner's characters sorted by ID
type ListByOwnerOutput struct {
	Characters []*entities.Character
}

// LearnSkillInput adds a skill to a character's learned set
type LearnSkillInput struct {
	CharacterID string
	Skill       entities.SkillID
	Caller      common.Address
}

// LearnSkillOutput holds the updated character
type LearnSkillOutput struct {
	Character *entities.Character
}

// EquipSkillInput puts a learned skill into a slot. Skill zero empties the slot.
type EquipSkillInput struct {
	CharacterID string
	Slot        uint8
	Skill       entities.SkillID
	Caller      common.Address
}

// EquipSkillOutput holds the updated character
type EquipSkillOutput struct {
	Character *entities.Character
}

// EquipItemInput puts an item into an equipment slot. An empty EquipmentID
// empties the slot.
type EquipItemInput struct {
	CharacterID string
	Slot        entities.EquipmentSlot
	EquipmentID string
	Caller      common.Address
}

// EquipItemOutput holds the updated character
type EquipItemOutput struct {
	Character *entities.Character
}

// HealInput restores a character to full hit points
type HealInput struct {
	CharacterID string
	Caller      common.Address
}

// HealOutput holds the updated character
type HealOutput struct {
	Character *entities.Character
}

// ListEquipmentInput optionally filters the catalog by slot
type ListEquipmentInput struct {
	Slot *entities.EquipmentSlot
}

// ListEquipmentOutput holds the matching items sorted by ID
type ListEquipmentOutput struct {
	Equipment []*entities.Equipment
}
