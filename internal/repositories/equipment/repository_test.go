package equipment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/repositories/equipment"
	"github.com/uzochukwuV/massacombat/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite

	newRepo func() (equipment.Repository, func())
	repo    equipment.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()

	for _, e := range []*entities.Equipment{
		testutils.CreateTestEquipment("sword", entities.SlotWeapon),
		testutils.CreateTestEquipment("plate", entities.SlotArmor),
		testutils.CreateTestEquipment("ring", entities.SlotAccessory),
	} {
		_, err := s.repo.Create(s.ctx, equipment.CreateInput{Equipment: e})
		s.Require().NoError(err)
	}
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RepositoryTestSuite) TestGet() {
	out, err := s.repo.Get(s.ctx, equipment.GetInput{ID: "plate"})
	s.Require().NoError(err)
	s.Equal(*testutils.CreateTestEquipment("plate", entities.SlotArmor), *out.Equipment)

	_, err = s.repo.Get(s.ctx, equipment.GetInput{ID: "axe"})
	s.True(errors.IsNotFound(err))
	s.True(errors.HasReason(err, errors.ReasonEquipmentNotFound))

	_, err = s.repo.Get(s.ctx, equipment.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, equipment.CreateInput{
		Equipment: testutils.CreateTestEquipment("sword", entities.SlotWeapon),
	})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestCreateInvalidSlot() {
	_, err := s.repo.Create(s.ctx, equipment.CreateInput{
		Equipment: &entities.Equipment{ID: "odd", Slot: entities.EquipmentSlot(9)},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestGetMany() {
	out, err := s.repo.GetMany(s.ctx, equipment.GetManyInput{IDs: []string{"ring", "", "sword"}})
	s.Require().NoError(err)
	s.Require().Len(out.Equipment, 2)
	s.Equal("ring", out.Equipment[0].ID)
	s.Equal("sword", out.Equipment[1].ID)

	_, err = s.repo.GetMany(s.ctx, equipment.GetManyInput{IDs: []string{"sword", "axe"}})
	s.True(errors.IsNotFound(err))

	out, err = s.repo.GetMany(s.ctx, equipment.GetManyInput{IDs: []string{"", ""}})
	s.Require().NoError(err)
	s.Empty(out.Equipment)
}

func (s *RepositoryTestSuite) TestList() {
	out, err := s.repo.List(s.ctx, equipment.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Equipment, 3)
	s.Equal("plate", out.Equipment[0].ID)
	s.Equal("ring", out.Equipment[1].ID)
	s.Equal("sword", out.Equipment[2].ID)

	slot := entities.SlotWeapon
	out, err = s.repo.List(s.ctx, equipment.ListInput{Slot: &slot})
	s.Require().NoError(err)
	s.Require().Len(out.Equipment, 1)
	s.Equal("sword", out.Equipment[0].ID)
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (equipment.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := equipment.NewRedis(&equipment.RedisConfig{Client: client})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (equipment.Repository, func()) {
			return equipment.NewInMemory(), nil
		},
	})
}
