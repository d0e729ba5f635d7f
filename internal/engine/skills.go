package engine

import (
	"fmt"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

// EnergyRegenPerTurn is restored to the acting player at the end of each turn
const EnergyRegenPerTurn = 20

// MaxComboStacks caps the combo damage bonus
const MaxComboStacks = 5

// ComboBonusPercent is the extra damage per combo stack
const ComboBonusPercent = 5

// SkillKind says how a skill resolves
type SkillKind uint8

// Skill kinds
const (
	// SkillKindOffensive replaces the basic attack and hits the opponent
	SkillKindOffensive SkillKind = iota
	// SkillKindSelf affects the caster and deals no damage
	SkillKindSelf
	// SkillKindDebuff affects the opponent and deals no damage
	SkillKindDebuff
)

// Skill is the static definition of one of the ten skills
type Skill struct {
	ID            entities.SkillID
	Name          string
	EnergyCost    uint8
	Cooldown      uint8
	Kind          SkillKind
	DamagePercent uint32
}

var skills = [entities.MaxSkillID]Skill{
	{ID: entities.SkillPowerStrike, Name: "Power Strike", EnergyCost: 30, Cooldown: 3, Kind: SkillKindOffensive, DamagePercent: 150},
	{ID: entities.SkillHeal, Name: "Heal", EnergyCost: 40, Cooldown: 4, Kind: SkillKindSelf},
	{ID: entities.SkillPoisonStrike, Name: "Poison Strike", EnergyCost: 25, Cooldown: 3, Kind: SkillKindOffensive, DamagePercent: 100},
	{ID: entities.SkillStunStrike, Name: "Stun Strike", EnergyCost: 35, Cooldown: 4, Kind: SkillKindOffensive, DamagePercent: 100},
	{ID: entities.SkillShieldWall, Name: "Shield Wall", EnergyCost: 30, Cooldown: 4, Kind: SkillKindSelf},
	{ID: entities.SkillRageMode, Name: "Rage Mode", EnergyCost: 35, Cooldown: 5, Kind: SkillKindSelf},
	{ID: entities.SkillCriticalEye, Name: "Critical Eye", EnergyCost: 20, Cooldown: 3, Kind: SkillKindSelf},
	{ID: entities.SkillDodgeMaster, Name: "Dodge Master", EnergyCost: 25, Cooldown: 4, Kind: SkillKindSelf},
	{ID: entities.SkillBurnAura, Name: "Burn Aura", EnergyCost: 30, Cooldown: 4, Kind: SkillKindDebuff},
	{ID: entities.SkillComboBreaker, Name: "Combo Breaker", EnergyCost: 40, Cooldown: 5, Kind: SkillKindOffensive, DamagePercent: 120},
}

// Effect strengths
const (
	HealPercent      = 30
	PoisonTurns      = 3
	StunTurns        = 1
	ShieldTurns      = 2
	RageTurns        = 3
	DodgeMasterBonus = 40
	DodgeMasterTurns = 2
	BurnTurns        = 3
)

// LookupSkill returns the definition for id
func LookupSkill(id entities.SkillID) (Skill, bool) {
	if !id.Valid() {
		return Skill{}, false
	}
	return skills[id.Index()], true
}

// IsValidSkill reports whether id names one of the ten skills
func IsValidSkill(id entities.SkillID) bool {
	return id.Valid()
}

// SkillName returns the display name for id
func SkillName(id entities.SkillID) string {
	if s, ok := LookupSkill(id); ok {
		return s.Name
	}
	return "unknown skill"
}

// IsLearned reports whether the character has learned the skill
func IsLearned(c *entities.Character, id entities.SkillID) bool {
	return c.LearnedSkills.Has(id)
}

// CheckSkill returns why the player cannot use the skill right now, or nil
func CheckSkill(p *entities.BattlePlayer, c *entities.Character, id entities.SkillID) error {
	skill, ok := LookupSkill(id)
	if !ok {
		return errors.InvalidArgumentReason(errors.ReasonInvalidSkill, fmt.Sprintf("unknown skill %d", id))
	}
	if !IsLearned(c, id) {
		return errors.InvalidArgumentReason(errors.ReasonSkillNotLearned,
			fmt.Sprintf("%s has not learned %s", c.ID, skill.Name))
	}
	if cd := p.Cooldowns[id.Index()]; cd > 0 {
		return errors.InsufficientResource(errors.ReasonSkillOnCooldown,
			fmt.Sprintf("%s is on cooldown for %d more turns", skill.Name, cd))
	}
	if p.Energy < skill.EnergyCost {
		return errors.InsufficientResource(errors.ReasonInsufficientEnergy,
			fmt.Sprintf("%s needs %d energy, have %d", skill.Name, skill.EnergyCost, p.Energy))
	}
	return nil
}

// CanUseSkill is the boolean form of CheckSkill
func CanUseSkill(p *entities.BattlePlayer, c *entities.Character, id entities.SkillID) bool {
	return CheckSkill(p, c, id) == nil
}

// SpendEnergy deducts energy with a floor of zero
func SpendEnergy(p *entities.BattlePlayer, amount uint8) {
	if amount > p.Energy {
		p.Energy = 0
		return
	}
	p.Energy -= amount
}

// RegenerateEnergy restores EnergyRegenPerTurn up to MaxEnergy
func RegenerateEnergy(p *entities.BattlePlayer) {
	e := uint32(p.Energy) + EnergyRegenPerTurn
	if e > entities.MaxEnergy {
		e = entities.MaxEnergy
	}
	p.Energy = uint8(e)
}

// ReduceCooldowns counts one turn off every nonzero cooldown
func ReduceCooldowns(p *entities.BattlePlayer) {
	for i := range p.Cooldowns {
		if p.Cooldowns[i] > 0 {
			p.Cooldowns[i]--
		}
	}
}

// SetCooldown starts the skill's cooldown
func SetCooldown(p *entities.BattlePlayer, id entities.SkillID) {
	if s, ok := LookupSkill(id); ok {
		p.Cooldowns[id.Index()] = s.Cooldown
	}
}

// ApplySkillEffect applies the non-damage part of a skill and describes it.
// For offensive skills it is only called when the hit lands.
func ApplySkillEffect(id entities.SkillID, caster, target *entities.BattlePlayer) string {
	switch id {
	case entities.SkillHeal:
		healed := heal(caster, percentOf(caster.MaxHP, HealPercent))
		return fmt.Sprintf("%s heals %d HP", caster.CharacterID, healed)
	case entities.SkillPoisonStrike:
		ApplyStatus(target, entities.StatusPoison, PoisonTurns)
		return fmt.Sprintf("%s is poisoned", target.CharacterID)
	case entities.SkillStunStrike:
		ApplyStatus(target, entities.StatusStun, StunTurns)
		return fmt.Sprintf("%s is stunned", target.CharacterID)
	case entities.SkillShieldWall:
		ApplyStatus(caster, entities.StatusShield, ShieldTurns)
		return fmt.Sprintf("%s raises a shield", caster.CharacterID)
	case entities.SkillRageMode:
		ApplyStatus(caster, entities.StatusRage, RageTurns)
		return fmt.Sprintf("%s enters a rage", caster.CharacterID)
	case entities.SkillCriticalEye:
		caster.GuaranteedCrit = true
		return fmt.Sprintf("%s lines up a critical strike", caster.CharacterID)
	case entities.SkillDodgeMaster:
		caster.DodgeBoost = DodgeMasterBonus
		caster.DodgeBoostTurns = DodgeMasterTurns
		return fmt.Sprintf("%s gains %d%% dodge", caster.CharacterID, DodgeMasterBonus)
	case entities.SkillBurnAura:
		ApplyStatus(target, entities.StatusBurn, BurnTurns)
		return fmt.Sprintf("%s is burning", target.CharacterID)
	case entities.SkillComboBreaker:
		target.ComboCount = 0
		ClearAllStatus(target)
		return fmt.Sprintf("%s loses their combo and effects", target.CharacterID)
	default:
		return ""
	}
}
