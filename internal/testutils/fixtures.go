package testutils

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/uzochukwuV/massacombat/internal/entities"
)

// Test wallet addresses
var (
	AliceAddress = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	BobAddress   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

// CreateTestCharacter creates a level 1 warrior with three learned and equipped skills
func CreateTestCharacter(id string, owner common.Address) *entities.Character {
	skills := [entities.SkillSlotCount]entities.SkillID{
		entities.SkillHeal,
		entities.SkillPowerStrike,
		entities.SkillStunStrike,
	}
	return &entities.Character{
		ID:            id,
		Owner:         owner,
		Name:          "Test " + id,
		Class:         entities.ClassWarrior,
		Level:         1,
		HP:            120,
		MaxHP:         120,
		DamageMin:     10,
		DamageMax:     20,
		CritChance:    10,
		DodgeChance:   5,
		Defense:       10,
		SkillSlots:    skills,
		LearnedSkills: entities.NewSkillSet(skills[:]...),
		MMR:           1000,
		CreatedAt:     1700000000,
	}
}

// CreateTestEquipment creates an item for the given slot
func CreateTestEquipment(id string, slot entities.EquipmentSlot) *entities.Equipment {
	e := &entities.Equipment{ID: id, Name: "Test " + id, Slot: slot}
	switch slot {
	case entities.SlotWeapon:
		e.DamageMinBonus = 2
		e.DamageMaxBonus = 4
	case entities.SlotArmor:
		e.HPBonus = 20
	case entities.SlotAccessory:
		e.CritBonus = 5
		e.DodgeBonus = 5
	}
	return e
}
