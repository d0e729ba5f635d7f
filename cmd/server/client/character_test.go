package client

import (
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/orchestrators/character"
	"github.com/uzochukwuV/massacombat/internal/testutils"
)

func (s *ClientTestSuite) TestMint() {
	c := testutils.CreateTestCharacter("char-1", testutils.AliceAddress)
	c.Name = "Aria"
	c.Class = entities.ClassAssassin

	s.mockCharacter.EXPECT().
		Mint(gomock.Any(), &character.MintInput{
			Owner: testutils.AliceAddress,
			Name:  "Aria",
			Class: entities.ClassAssassin,
		}).
		Return(&character.MintOutput{Character: c}, nil)

	out, err := s.run("mint", "Aria", "assassin", "--caller", testutils.AliceAddress.Hex())
	s.Require().NoError(err)
	s.Contains(out, "Character char-1 (Aria)")
	s.Contains(out, "Owner: "+testutils.AliceAddress.Hex())
	s.Contains(out, "MMR: 1000")
}

func (s *ClientTestSuite) TestMintRejectsUnknownClass() {
	_, err := s.run("mint", "Aria", "bard", "--caller", testutils.AliceAddress.Hex())
	s.Require().Error(err)
	s.Contains(err.Error(), `unknown class "bard"`)
}

func (s *ClientTestSuite) TestGetCharacter() {
	c := testutils.CreateTestCharacter("char-1", testutils.BobAddress)
	c.TotalWins = 3
	c.TotalLosses = 1

	s.mockCharacter.EXPECT().
		Get(gomock.Any(), &character.GetInput{CharacterID: "char-1"}).
		Return(&character.GetOutput{Character: c}, nil)

	out, err := s.run("get-character", "char-1")
	s.Require().NoError(err)
	s.Contains(out, "Character char-1 (Test char-1)")
	s.Contains(out, "HP: 120/120  Damage: 10-20")
	s.Contains(out, "Record: 3W 1L")
}

func (s *ClientTestSuite) TestGetCharacterNotFound() {
	s.mockCharacter.EXPECT().
		Get(gomock.Any(), &character.GetInput{CharacterID: "ghost"}).
		Return(nil, errors.NotFoundf("character with ID %s not found", "ghost"))

	_, err := s.run("get-character", "ghost")
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to get character")
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *ClientTestSuite) TestEquipItem() {
	c := testutils.CreateTestCharacter("char-1", testutils.AliceAddress)
	c.WeaponID = "sword"

	s.mockCharacter.EXPECT().
		EquipItem(gomock.Any(), &character.EquipItemInput{
			CharacterID: "char-1",
			Slot:        entities.SlotWeapon,
			EquipmentID: "sword",
			Caller:      testutils.AliceAddress,
		}).
		Return(&character.EquipItemOutput{Character: c}, nil)

	out, err := s.run("equip", "char-1", "weapon", "sword", "--caller", testutils.AliceAddress.Hex())
	s.Require().NoError(err)
	s.Contains(out, "Character char-1")
}

func (s *ClientTestSuite) TestEquipWithoutItemClearsSlot() {
	c := testutils.CreateTestCharacter("char-1", testutils.AliceAddress)

	s.mockCharacter.EXPECT().
		EquipItem(gomock.Any(), &character.EquipItemInput{
			CharacterID: "char-1",
			Slot:        entities.SlotArmor,
			Caller:      testutils.AliceAddress,
		}).
		Return(&character.EquipItemOutput{Character: c}, nil)

	_, err := s.run("equip", "char-1", "armor", "--caller", testutils.AliceAddress.Hex())
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TestEquipRejectsUnknownSlot() {
	_, err := s.run("equip", "char-1", "boots", "clogs", "--caller", testutils.AliceAddress.Hex())
	s.Require().Error(err)
	s.Contains(err.Error(), `unknown slot "boots"`)
}
