package entities

import (
	"github.com/ethereum/go-ethereum/common"
)

// Class is a character archetype
type Class uint8

// Character classes
const (
	ClassWarrior Class = iota
	ClassAssassin
	ClassMage
	ClassTank
	ClassTrickster
)

var classNames = map[Class]string{
	ClassWarrior:   "warrior",
	ClassAssassin:  "assassin",
	ClassMage:      "mage",
	ClassTank:      "tank",
	ClassTrickster: "trickster",
}

// String returns the lowercase class name
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether c is a known class
func (c Class) Valid() bool {
	_, ok := classNames[c]
	return ok
}

// ParseClass converts a class name to a Class
func ParseClass(name string) (Class, bool) {
	for c, n := range classNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// SkillSlotCount is the number of equipped skill slots on a character
const SkillSlotCount = 3

// Character is the persistent fighter a player owns.
// The engine only ever reads it; battle outcomes are applied by the finalize step.
type Character struct {
	ID            string
	Owner         common.Address
	Name          string
	Class         Class
	Level         uint32
	XP            uint64
	HP            uint32
	MaxHP         uint32
	DamageMin     uint32
	DamageMax     uint32
	CritChance    uint8
	DodgeChance   uint8
	Defense       uint32
	WeaponID      string
	ArmorID       string
	AccessoryID   string
	SkillSlots    [SkillSlotCount]SkillID
	LearnedSkills SkillSet
	TotalWins     uint32
	TotalLosses   uint32
	MMR           uint32
	WinStreak     uint32
	CreatedAt     int64
}

// SkillInSlot returns the skill equipped in slot, or false when the slot is out of
// range or empty
func (c *Character) SkillInSlot(slot uint8) (SkillID, bool) {
	if int(slot) >= SkillSlotCount {
		return 0, false
	}
	id := c.SkillSlots[slot]
	if !id.Valid() {
		return 0, false
	}
	return id, true
}

// ClassTemplate holds the stats a freshly minted character of a class starts with
type ClassTemplate struct {
	Class          Class
	HP             uint32
	DamageMin      uint32
	DamageMax      uint32
	CritChance     uint8
	DodgeChance    uint8
	Defense        uint32
	StartingSkills []SkillID
}
