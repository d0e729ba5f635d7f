package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/orchestrators/character"
	"github.com/uzochukwuV/massacombat/internal/pkg/clock"
	"github.com/uzochukwuV/massacombat/internal/pkg/guard"
	guardmock "github.com/uzochukwuV/massacombat/internal/pkg/guard/mock"
	"github.com/uzochukwuV/massacombat/internal/pkg/idgen"
	characterrepo "github.com/uzochukwuV/massacombat/internal/repositories/character"
	charactermock "github.com/uzochukwuV/massacombat/internal/repositories/character/mock"
	equipmentrepo "github.com/uzochukwuV/massacombat/internal/repositories/equipment"
	"github.com/uzochukwuV/massacombat/internal/testutils"
)

var classes = map[entities.Class]entities.ClassTemplate{
	entities.ClassAssassin: {
		Class:          entities.ClassAssassin,
		HP:             90,
		DamageMin:      12,
		DamageMax:      22,
		CritChance:     25,
		DodgeChance:    15,
		Defense:        5,
		StartingSkills: []entities.SkillID{entities.SkillPoisonStrike, entities.SkillCriticalEye},
	},
}

type OrchestratorTestSuite struct {
	suite.Suite

	ctx        context.Context
	characters characterrepo.Repository
	equipment  equipmentrepo.Repository

	orchestrator *character.Orchestrator
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.characters = characterrepo.NewInMemory()
	s.equipment = equipmentrepo.NewInMemory()

	for _, e := range []*entities.Equipment{
		testutils.CreateTestEquipment("sword", entities.SlotWeapon),
		testutils.CreateTestEquipment("plate", entities.SlotArmor),
		testutils.CreateTestEquipment("ring", entities.SlotAccessory),
	} {
		_, err := s.equipment.Create(s.ctx, equipmentrepo.CreateInput{Equipment: e})
		s.Require().NoError(err)
	}

	var err error
	s.orchestrator, err = character.New(&character.Config{
		CharacterRepo: s.characters,
		EquipmentRepo: s.equipment,
		Classes:       classes,
		Guard:         guard.NewLocal(),
		IDGenerator:   idgen.NewSequential("char"),
		Clock:         clock.NewFixed(time.Unix(1700000000, 0)),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) mint() *entities.Character {
	out, err := s.orchestrator.Mint(s.ctx, &character.MintInput{
		Owner: testutils.AliceAddress,
		Name:  "Vex",
		Class: entities.ClassAssassin,
	})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) TestMint() {
	c := s.mint()

	s.Equal("char-1", c.ID)
	s.Equal(testutils.AliceAddress, c.Owner)
	s.Equal(entities.ClassAssassin, c.Class)
	s.Equal(uint32(1), c.Level)
	s.Equal(uint32(90), c.HP)
	s.Equal(uint32(90), c.MaxHP)
	s.Equal(uint32(22), c.DamageMax)
	s.Equal(uint8(25), c.CritChance)
	s.Equal(uint32(1000), c.MMR)
	s.Equal(int64(1700000000), c.CreatedAt)
	s.Equal([entities.SkillSlotCount]entities.SkillID{entities.SkillPoisonStrike, entities.SkillCriticalEye, 0}, c.SkillSlots)
	s.True(c.LearnedSkills.Has(entities.SkillCriticalEye))

	got, err := s.orchestrator.Get(s.ctx, &character.GetInput{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Equal(*c, *got.Character)

	owned, err := s.orchestrator.ListByOwner(s.ctx, &character.ListByOwnerInput{Owner: testutils.AliceAddress})
	s.Require().NoError(err)
	s.Len(owned.Characters, 1)
}

func (s *OrchestratorTestSuite) TestMintValidation() {
	tests := []struct {
		name   string
		input  *character.MintInput
		reason errors.Reason
	}{
		{name: "missing name", input: &character.MintInput{Owner: testutils.AliceAddress, Class: entities.ClassAssassin}},
		{name: "missing owner", input: &character.MintInput{Name: "Vex", Class: entities.ClassAssassin}},
		{
			name:   "class without template",
			input:  &character.MintInput{Owner: testutils.AliceAddress, Name: "Vex", Class: entities.ClassTank},
			reason: errors.ReasonUnknownClass,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.Mint(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err), "unexpected error: %v", err)
			if tc.reason != "" {
				s.True(errors.HasReason(err, tc.reason))
			}
		})
	}
}

func (s *OrchestratorTestSuite) TestMintDuplicateID() {
	input := &character.MintInput{CharacterID: "vex", Owner: testutils.AliceAddress, Name: "Vex", Class: entities.ClassAssassin}
	_, err := s.orchestrator.Mint(s.ctx, input)
	s.Require().NoError(err)

	_, err = s.orchestrator.Mint(s.ctx, input)
	s.True(errors.HasReason(err, errors.ReasonCharacterExists))
}

func (s *OrchestratorTestSuite) TestLearnAndEquipSkill() {
	c := s.mint()

	out, err := s.orchestrator.LearnSkill(s.ctx, &character.LearnSkillInput{
		CharacterID: c.ID, Skill: entities.SkillComboBreaker, Caller: testutils.AliceAddress,
	})
	s.Require().NoError(err)
	s.True(out.Character.LearnedSkills.Has(entities.SkillComboBreaker))

	_, err = s.orchestrator.LearnSkill(s.ctx, &character.LearnSkillInput{
		CharacterID: c.ID, Skill: entities.SkillComboBreaker, Caller: testutils.AliceAddress,
	})
	s.True(errors.HasReason(err, errors.ReasonSkillAlreadyLearned))

	equipped, err := s.orchestrator.EquipSkill(s.ctx, &character.EquipSkillInput{
		CharacterID: c.ID, Slot: 2, Skill: entities.SkillComboBreaker, Caller: testutils.AliceAddress,
	})
	s.Require().NoError(err)
	s.Equal(entities.SkillComboBreaker, equipped.Character.SkillSlots[2])

	// moving a skill empties its old slot
	moved, err := s.orchestrator.EquipSkill(s.ctx, &character.EquipSkillInput{
		CharacterID: c.ID, Slot: 0, Skill: entities.SkillComboBreaker, Caller: testutils.AliceAddress,
	})
	s.Require().NoError(err)
	s.Equal([entities.SkillSlotCount]entities.SkillID{entities.SkillComboBreaker, entities.SkillCriticalEye, 0},
		moved.Character.SkillSlots)

	stored, err := s.characters.Get(s.ctx, characterrepo.GetInput{ID: c.ID})
	s.Require().NoError(err)
	s.Equal(moved.Character.SkillSlots, stored.Character.SkillSlots)
}

func (s *OrchestratorTestSuite) TestEquipSkillErrors() {
	c := s.mint()

	tests := []struct {
		name   string
		input  *character.EquipSkillInput
		reason errors.Reason
	}{
		{
			name:   "slot out of range",
			input:  &character.EquipSkillInput{CharacterID: c.ID, Slot: 3, Skill: entities.SkillPoisonStrike, Caller: testutils.AliceAddress},
			reason: errors.ReasonInvalidSkillSlot,
		},
		{
			name:   "unknown skill",
			input:  &character.EquipSkillInput{CharacterID: c.ID, Slot: 0, Skill: 11, Caller: testutils.AliceAddress},
			reason: errors.ReasonInvalidSkill,
		},
		{
			name:   "not learned",
			input:  &character.EquipSkillInput{CharacterID: c.ID, Slot: 0, Skill: entities.SkillHeal, Caller: testutils.AliceAddress},
			reason: errors.ReasonSkillNotLearned,
		},
		{
			name:   "not the owner",
			input:  &character.EquipSkillInput{CharacterID: c.ID, Slot: 0, Skill: entities.SkillPoisonStrike, Caller: testutils.BobAddress},
			reason: errors.ReasonUnauthorized,
		},
		{
			name:   "unknown character",
			input:  &character.EquipSkillInput{CharacterID: "ghost", Slot: 0, Skill: entities.SkillPoisonStrike, Caller: testutils.AliceAddress},
			reason: errors.ReasonCharacterNotFound,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.EquipSkill(s.ctx, tc.input)
			s.True(errors.HasReason(err, tc.reason), "unexpected error: %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestEquipItem() {
	c := s.mint()

	out, err := s.orchestrator.EquipItem(s.ctx, &character.EquipItemInput{
		CharacterID: c.ID, Slot: entities.SlotWeapon, EquipmentID: "sword", Caller: testutils.AliceAddress,
	})
	s.Require().NoError(err)
	s.Equal("sword", out.Character.WeaponID)

	_, err = s.orchestrator.EquipItem(s.ctx, &character.EquipItemInput{
		CharacterID: c.ID, Slot: entities.SlotArmor, EquipmentID: "ring", Caller: testutils.AliceAddress,
	})
	s.True(errors.HasReason(err, errors.ReasonEquipmentSlotMismatch))

	_, err = s.orchestrator.EquipItem(s.ctx, &character.EquipItemInput{
		CharacterID: c.ID, Slot: entities.SlotArmor, EquipmentID: "cloak", Caller: testutils.AliceAddress,
	})
	s.True(errors.HasReason(err, errors.ReasonEquipmentNotFound))

	out, err = s.orchestrator.EquipItem(s.ctx, &character.EquipItemInput{
		CharacterID: c.ID, Slot: entities.SlotWeapon, Caller: testutils.AliceAddress,
	})
	s.Require().NoError(err)
	s.Empty(out.Character.WeaponID)
}

func (s *OrchestratorTestSuite) TestHeal() {
	c := s.mint()
	c.HP = 10
	_, err := s.characters.Update(s.ctx, characterrepo.UpdateInput{Character: c})
	s.Require().NoError(err)

	out, err := s.orchestrator.Heal(s.ctx, &character.HealInput{CharacterID: c.ID, Caller: testutils.AliceAddress})
	s.Require().NoError(err)
	s.Equal(uint32(90), out.Character.HP)
}

func (s *OrchestratorTestSuite) TestListEquipment() {
	out, err := s.orchestrator.ListEquipment(s.ctx, &character.ListEquipmentInput{})
	s.Require().NoError(err)
	s.Len(out.Equipment, 3)

	slot := entities.SlotArmor
	out, err = s.orchestrator.ListEquipment(s.ctx, &character.ListEquipmentInput{Slot: &slot})
	s.Require().NoError(err)
	s.Require().Len(out.Equipment, 1)
	s.Equal("plate", out.Equipment[0].ID)
}

func (s *OrchestratorTestSuite) TestReadValidation() {
	_, err := s.orchestrator.Get(s.ctx, &character.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ListByOwner(s.ctx, &character.ListByOwnerInput{Owner: common.Address{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := character.New(&character.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestModifyHoldsCharacterGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGuard := guardmock.NewMockGuard(ctrl)
	mockRepo := charactermock.NewMockRepository(ctrl)

	o, err := character.New(&character.Config{
		CharacterRepo: mockRepo,
		EquipmentRepo: equipmentrepo.NewInMemory(),
		Classes:       classes,
		Guard:         mockGuard,
		IDGenerator:   idgen.NewSequential("char"),
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	mockGuard.EXPECT().
		Acquire(ctx, "character:char-1").
		Return(nil, errors.Reentrant("character:char-1"))

	_, err = o.Heal(ctx, &character.HealInput{CharacterID: "char-1", Caller: testutils.AliceAddress})
	if !errors.HasReason(err, errors.ReasonReentrant) {
		t.Fatalf("expected reentrant error, got %v", err)
	}
}
