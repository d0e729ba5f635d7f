// Package character implements the character orchestrator: minting from the class
// catalog and the loadout changes a player makes between battles.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/uzochukwuV/massacombat/internal/orchestrators/character Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/uzochukwuV/massacombat/internal/engine"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/pkg/clock"
	"github.com/uzochukwuV/massacombat/internal/pkg/guard"
	"github.com/uzochukwuV/massacombat/internal/pkg/idgen"
	characterrepo "github.com/uzochukwuV/massacombat/internal/repositories/character"
	equipmentrepo "github.com/uzochukwuV/massacombat/internal/repositories/equipment"
)

// Service defines the character operations
type Service interface {
	Mint(ctx context.Context, input *MintInput) (*MintOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	ListByOwner(ctx context.Context, input *ListByOwnerInput) (*ListByOwnerOutput, error)
	LearnSkill(ctx context.Context, input *LearnSkillInput) (*LearnSkillOutput, error)
	EquipSkill(ctx context.Context, input *EquipSkillInput) (*EquipSkillOutput, error)
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	Heal(ctx context.Context, input *HealInput) (*HealOutput, error)
	ListEquipment(ctx context.Context, input *ListEquipmentInput) (*ListEquipmentOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	EquipmentRepo equipmentrepo.Repository
	Classes       map[entities.Class]entities.ClassTemplate
	Guard         guard.Guard
	IDGenerator   idgen.Generator

	// Clock defaults to the system clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.EquipmentRepo == nil {
		vb.RequiredField("EquipmentRepo")
	}
	if len(c.Classes) == 0 {
		vb.RequiredField("Classes")
	}
	if c.Guard == nil {
		vb.RequiredField("Guard")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	characters characterrepo.Repository
	equipment  equipmentrepo.Repository
	classes    map[entities.Class]entities.ClassTemplate
	guard      guard.Guard
	idGen      idgen.Generator
	clock      clock.Clock
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		characters: cfg.CharacterRepo,
		equipment:  cfg.EquipmentRepo,
		classes:    cfg.Classes,
		guard:      cfg.Guard,
		idGen:      cfg.IDGenerator,
		clock:      c,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// Mint creates a level one character from its class template. Starting skills are
// learned and equipped in catalog order.
func (o *Orchestrator) Mint(ctx context.Context, input *MintInput) (*MintOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", input.Name, vb)
	if input.Owner == (common.Address{}) {
		vb.RequiredField("Owner")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	tmpl, ok := o.classes[input.Class]
	if !ok {
		return nil, errors.InvalidArgumentReason(errors.ReasonUnknownClass,
			fmt.Sprintf("no template for class %s", input.Class))
	}

	id := input.CharacterID
	if id == "" {
		id = o.idGen.Generate()
	}

	c := &entities.Character{
		ID:          id,
		Owner:       input.Owner,
		Name:        input.Name,
		Class:       tmpl.Class,
		Level:       1,
		HP:          tmpl.HP,
		MaxHP:       tmpl.HP,
		DamageMin:   tmpl.DamageMin,
		DamageMax:   tmpl.DamageMax,
		CritChance:  tmpl.CritChance,
		DodgeChance: tmpl.DodgeChance,
		Defense:     tmpl.Defense,
		MMR:         engine.StartingMMR,
		CreatedAt:   o.clock.Now().Unix(),
	}
	for i, skill := range tmpl.StartingSkills {
		c.LearnedSkills.Add(skill)
		if i < entities.SkillSlotCount {
			c.SkillSlots[i] = skill
		}
	}

	if _, err := o.characters.Create(ctx, characterrepo.CreateInput{Character: c}); err != nil {
		return nil, err
	}

	slog.Info("character minted",
		"character_id", c.ID,
		"owner", c.Owner.Hex(),
		"class", c.Class.String())

	return &MintOutput{Character: c}, nil
}

// Get returns a character by ID
func (o *Orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	out, err := o.characters.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: out.Character}, nil
}

// ListByOwner returns every character an address owns
func (o *Orchestrator) ListByOwner(ctx context.Context, input *ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input == nil || input.Owner == (common.Address{}) {
		return nil, errors.InvalidArgument("owner is required")
	}
	out, err := o.characters.ListByOwner(ctx, characterrepo.ListByOwnerInput{Owner: input.Owner})
	if err != nil {
		return nil, err
	}
	return &ListByOwnerOutput{Characters: out.Characters}, nil
}

// LearnSkill adds a skill to the learned set
func (o *Orchestrator) LearnSkill(ctx context.Context, input *LearnSkillInput) (*LearnSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Skill.Valid() {
		return nil, errors.InvalidArgumentReason(errors.ReasonInvalidSkill,
			fmt.Sprintf("unknown skill %d", input.Skill))
	}

	c, err := o.modify(ctx, input.CharacterID, input.Caller, func(c *entities.Character) error {
		if c.LearnedSkills.Has(input.Skill) {
			return errors.AlreadyExistsf("%s already knows %s", c.ID, input.Skill).
				WithReason(errors.ReasonSkillAlreadyLearned)
		}
		c.LearnedSkills.Add(input.Skill)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("skill learned", "character_id", c.ID, "skill", input.Skill.String())
	return &LearnSkillOutput{Character: c}, nil
}

// EquipSkill places a learned skill in a slot, moving it out of any other slot
func (o *Orchestrator) EquipSkill(ctx context.Context, input *EquipSkillInput) (*EquipSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if int(input.Slot) >= entities.SkillSlotCount {
		return nil, errors.InvalidArgumentReason(errors.ReasonInvalidSkillSlot,
			fmt.Sprintf("slot %d is out of range", input.Slot))
	}
	if input.Skill != 0 && !input.Skill.Valid() {
		return nil, errors.InvalidArgumentReason(errors.ReasonInvalidSkill,
			fmt.Sprintf("unknown skill %d", input.Skill))
	}

	c, err := o.modify(ctx, input.CharacterID, input.Caller, func(c *entities.Character) error {
		if input.Skill == 0 {
			c.SkillSlots[input.Slot] = 0
			return nil
		}
		if !c.LearnedSkills.Has(input.Skill) {
			return errors.InvalidArgumentReason(errors.ReasonSkillNotLearned,
				fmt.Sprintf("%s has not learned %s", c.ID, input.Skill))
		}
		for i, id := range c.SkillSlots {
			if id == input.Skill {
				c.SkillSlots[i] = 0
			}
		}
		c.SkillSlots[input.Slot] = input.Skill
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("skill equipped",
		"character_id", c.ID,
		"slot", input.Slot,
		"skill", input.Skill.String())
	return &EquipSkillOutput{Character: c}, nil
}

// EquipItem wears an item in the slot it was made for
func (o *Orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Slot > entities.SlotAccessory {
		return nil, errors.InvalidArgumentf("unknown equipment slot %d", input.Slot)
	}

	if input.EquipmentID != "" {
		item, err := o.equipment.Get(ctx, equipmentrepo.GetInput{ID: input.EquipmentID})
		if err != nil {
			return nil, err
		}
		if item.Equipment.Slot != input.Slot {
			return nil, errors.InvalidArgumentReason(errors.ReasonEquipmentSlotMismatch,
				fmt.Sprintf("%s is a %s, not a %s", input.EquipmentID, item.Equipment.Slot, input.Slot))
		}
	}

	c, err := o.modify(ctx, input.CharacterID, input.Caller, func(c *entities.Character) error {
		switch input.Slot {
		case entities.SlotWeapon:
			c.WeaponID = input.EquipmentID
		case entities.SlotArmor:
			c.ArmorID = input.EquipmentID
		case entities.SlotAccessory:
			c.AccessoryID = input.EquipmentID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("item equipped",
		"character_id", c.ID,
		"slot", input.Slot.String(),
		"equipment_id", input.EquipmentID)
	return &EquipItemOutput{Character: c}, nil
}

// Heal restores a character's hit points to the maximum
func (o *Orchestrator) Heal(ctx context.Context, input *HealInput) (*HealOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := o.modify(ctx, input.CharacterID, input.Caller, func(c *entities.Character) error {
		c.HP = c.MaxHP
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &HealOutput{Character: c}, nil
}

// ListEquipment returns the item catalog
func (o *Orchestrator) ListEquipment(ctx context.Context, input *ListEquipmentInput) (*ListEquipmentOutput, error) {
	var slot *entities.EquipmentSlot
	if input != nil {
		slot = input.Slot
	}
	out, err := o.equipment.List(ctx, equipmentrepo.ListInput{Slot: slot})
	if err != nil {
		return nil, err
	}
	return &ListEquipmentOutput{Equipment: out.Equipment}, nil
}

// modify loads a character the caller owns, applies fn and saves the result
func (o *Orchestrator) modify(ctx context.Context, characterID string, caller common.Address, fn func(*entities.Character) error) (*entities.Character, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	var c *entities.Character
	err := guard.Do(ctx, o.guard, guard.CharacterKey(characterID), func() error {
		out, err := o.characters.Get(ctx, characterrepo.GetInput{ID: characterID})
		if err != nil {
			return err
		}
		c = out.Character
		if c.Owner != caller {
			return errors.Unauthorized(fmt.Sprintf("caller does not own %s", characterID))
		}
		if err := fn(c); err != nil {
			return err
		}
		_, err = o.characters.Update(ctx, characterrepo.UpdateInput{Character: c})
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
