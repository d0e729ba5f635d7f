package character

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

// characterData is the JSON shape stored for a character
type characterData struct {
	ID            string                                    `json:"id"`
	Owner         common.Address                            `json:"owner"`
	Name          string                                    `json:"name"`
	Class         string                                    `json:"class"`
	Level         uint32                                    `json:"level"`
	XP            uint64                                    `json:"xp"`
	HP            uint32                                    `json:"hp"`
	MaxHP         uint32                                    `json:"max_hp"`
	DamageMin     uint32                                    `json:"damage_min"`
	DamageMax     uint32                                    `json:"damage_max"`
	CritChance    uint8                                     `json:"crit_chance"`
	DodgeChance   uint8                                     `json:"dodge_chance"`
	Defense       uint32                                    `json:"defense"`
	WeaponID      string                                    `json:"weapon_id,omitempty"`
	ArmorID       string                                    `json:"armor_id,omitempty"`
	AccessoryID   string                                    `json:"accessory_id,omitempty"`
	SkillSlots    [entities.SkillSlotCount]entities.SkillID `json:"skill_slots"`
	LearnedSkills uint16                                    `json:"learned_skills"`
	TotalWins     uint32                                    `json:"total_wins"`
	TotalLosses   uint32                                    `json:"total_losses"`
	MMR           uint32                                    `json:"mmr"`
	WinStreak     uint32                                    `json:"win_streak"`
	CreatedAt     int64                                     `json:"created_at"`
}

func toData(c *entities.Character) *characterData {
	return &characterData{
		ID:            c.ID,
		Owner:         c.Owner,
		Name:          c.Name,
		Class:         c.Class.String(),
		Level:         c.Level,
		XP:            c.XP,
		HP:            c.HP,
		MaxHP:         c.MaxHP,
		DamageMin:     c.DamageMin,
		DamageMax:     c.DamageMax,
		CritChance:    c.CritChance,
		DodgeChance:   c.DodgeChance,
		Defense:       c.Defense,
		WeaponID:      c.WeaponID,
		ArmorID:       c.ArmorID,
		AccessoryID:   c.AccessoryID,
		SkillSlots:    c.SkillSlots,
		LearnedSkills: c.LearnedSkills.Mask(),
		TotalWins:     c.TotalWins,
		TotalLosses:   c.TotalLosses,
		MMR:           c.MMR,
		WinStreak:     c.WinStreak,
		CreatedAt:     c.CreatedAt,
	}
}

func fromData(d *characterData) (*entities.Character, error) {
	class, ok := entities.ParseClass(d.Class)
	if !ok {
		return nil, errors.DataLossf("character %s has unknown class %q", d.ID, d.Class).
			WithReason(errors.ReasonCorruptState)
	}
	for _, id := range d.SkillSlots {
		if id != 0 && !id.Valid() {
			return nil, errors.DataLossf("character %s has unknown skill %d equipped", d.ID, id).
				WithReason(errors.ReasonCorruptState)
		}
	}

	c := &entities.Character{
		ID:            d.ID,
		Owner:         d.Owner,
		Name:          d.Name,
		Class:         class,
		Level:         d.Level,
		XP:            d.XP,
		HP:            d.HP,
		MaxHP:         d.MaxHP,
		DamageMin:     d.DamageMin,
		DamageMax:     d.DamageMax,
		CritChance:    d.CritChance,
		DodgeChance:   d.DodgeChance,
		Defense:       d.Defense,
		WeaponID:      d.WeaponID,
		ArmorID:       d.ArmorID,
		AccessoryID:   d.AccessoryID,
		SkillSlots:    d.SkillSlots,
		LearnedSkills: entities.SkillSetFromMask(d.LearnedSkills),
		TotalWins:     d.TotalWins,
		TotalLosses:   d.TotalLosses,
		MMR:           d.MMR,
		WinStreak:     d.WinStreak,
		CreatedAt:     d.CreatedAt,
	}
	return c, nil
}

func validateCharacter(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if c.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	if !c.Class.Valid() {
		return errors.InvalidArgumentf("character %s has invalid class %d", c.ID, c.Class)
	}
	return nil
}

func validateSettlement(input ApplySettlementInput) error {
	vb := errors.NewValidationBuilder()
	if input.Settlement == nil || input.Settlement.BattleID == "" {
		vb.RequiredField("Settlement.BattleID")
	}
	if len(input.Characters) == 0 {
		vb.RequiredField("Characters")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	for _, c := range input.Characters {
		if err := validateCharacter(c); err != nil {
			return err
		}
	}
	return nil
}

func settlementExists(battleID string) error {
	return errors.AlreadyExistsf("battle %s is already applied to its characters", battleID).
		WithReason(errors.ReasonAlreadySettled)
}

func settlementNotFound(battleID string) error {
	return errors.NotFoundf("battle %s has not been applied to its characters", battleID).
		WithReason(errors.ReasonNotSettled)
}
