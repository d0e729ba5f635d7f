package wire

import (
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

// WriteCharacter appends a character; learned skills travel as their bitmask
func WriteCharacter(w *Writer, c *entities.Character) {
	w.String(c.ID)
	w.Address(c.Owner)
	w.String(c.Name)
	w.U8(uint8(c.Class))
	w.U32(c.Level)
	w.U64(c.XP)
	w.U32(c.HP)
	w.U32(c.MaxHP)
	w.U32(c.DamageMin)
	w.U32(c.DamageMax)
	w.U8(c.CritChance)
	w.U8(c.DodgeChance)
	w.U32(c.Defense)
	w.String(c.WeaponID)
	w.String(c.ArmorID)
	w.String(c.AccessoryID)
	for _, id := range c.SkillSlots {
		w.U8(uint8(id))
	}
	w.U16(c.LearnedSkills.Mask())
	w.U32(c.TotalWins)
	w.U32(c.TotalLosses)
	w.U32(c.MMR)
	w.U32(c.WinStreak)
	w.I64(c.CreatedAt)
}

// ReadCharacter reads a character written by WriteCharacter
func ReadCharacter(r *Reader) *entities.Character {
	c := &entities.Character{}
	c.ID = r.String()
	c.Owner = r.Address()
	c.Name = r.String()
	c.Class = entities.Class(r.U8())
	c.Level = r.U32()
	c.XP = r.U64()
	c.HP = r.U32()
	c.MaxHP = r.U32()
	c.DamageMin = r.U32()
	c.DamageMax = r.U32()
	c.CritChance = r.U8()
	c.DodgeChance = r.U8()
	c.Defense = r.U32()
	c.WeaponID = r.String()
	c.ArmorID = r.String()
	c.AccessoryID = r.String()
	for i := range c.SkillSlots {
		c.SkillSlots[i] = entities.SkillID(r.U8())
	}
	c.LearnedSkills = entities.SkillSetFromMask(r.U16())
	c.TotalWins = r.U32()
	c.TotalLosses = r.U32()
	c.MMR = r.U32()
	c.WinStreak = r.U32()
	c.CreatedAt = r.I64()

	if r.Err() == nil && !c.Class.Valid() {
		r.Fail(errors.InvalidArgumentf("unknown class %d", c.Class))
	}
	return c
}

// WriteEquipment appends an item
func WriteEquipment(w *Writer, e *entities.Equipment) {
	w.String(e.ID)
	w.String(e.Name)
	w.U8(uint8(e.Slot))
	w.U32(e.HPBonus)
	w.U32(e.DamageMinBonus)
	w.U32(e.DamageMaxBonus)
	w.U8(e.CritBonus)
	w.U8(e.DodgeBonus)
}

// ReadEquipment reads an item written by WriteEquipment
func ReadEquipment(r *Reader) *entities.Equipment {
	e := &entities.Equipment{}
	e.ID = r.String()
	e.Name = r.String()
	e.Slot = entities.EquipmentSlot(r.U8())
	e.HPBonus = r.U32()
	e.DamageMinBonus = r.U32()
	e.DamageMaxBonus = r.U32()
	e.CritBonus = r.U8()
	e.DodgeBonus = r.U8()

	if r.Err() == nil && e.Slot > entities.SlotAccessory {
		r.Fail(errors.InvalidArgumentf("unknown equipment slot %d", e.Slot))
	}
	return e
}
