package battle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/repositories/battle"
	"github.com/uzochukwuV/massacombat/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite

	newRepo func() (battle.Repository, func())
	repo    battle.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func newBattle(id string, start int64) *entities.Battle {
	return &entities.Battle{
		ID:                  id,
		Player1:             entities.BattlePlayer{CharacterID: "char-1", CurrentHP: 120, MaxHP: 120, Energy: 100},
		Player2:             entities.BattlePlayer{CharacterID: "char-2", CurrentHP: 90, MaxHP: 90, Energy: 100},
		CurrentTurn:         1,
		State:               entities.BattleStateActive,
		StartTimestamp:      start,
		LastActionTimestamp: start,
		RandomSeed:          42,
	}
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	b := newBattle("battle-1", 100)
	_, err := s.repo.Create(s.ctx, battle.CreateInput{Battle: b})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, battle.GetInput{ID: "battle-1"})
	s.Require().NoError(err)
	s.Equal(*b, *out.Battle)
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, battle.CreateInput{Battle: newBattle("battle-1", 100)})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, battle.CreateInput{Battle: newBattle("battle-1", 200)})
	s.True(errors.IsAlreadyExists(err))
	s.True(errors.HasReason(err, errors.ReasonBattleExists))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, battle.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))
	s.True(errors.HasReason(err, errors.ReasonBattleNotFound))

	_, err = s.repo.Get(s.ctx, battle.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestUpdate() {
	b := newBattle("battle-1", 100)
	_, err := s.repo.Create(s.ctx, battle.CreateInput{Battle: b})
	s.Require().NoError(err)

	b.Player2.CurrentHP = 75
	b.CurrentTurn = 2
	b.TurnNumber = 1
	_, err = s.repo.Update(s.ctx, battle.UpdateInput{Battle: b})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, battle.GetInput{ID: "battle-1"})
	s.Require().NoError(err)
	s.Equal(uint32(75), out.Battle.Player2.CurrentHP)
	s.Equal(uint8(2), out.Battle.CurrentTurn)
}

func (s *RepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, battle.UpdateInput{Battle: newBattle("ghost", 1)})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, battle.UpdateInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestReturnedBattleIsACopy() {
	_, err := s.repo.Create(s.ctx, battle.CreateInput{Battle: newBattle("battle-1", 100)})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, battle.GetInput{ID: "battle-1"})
	s.Require().NoError(err)
	out.Battle.Player1.CurrentHP = 1

	again, err := s.repo.Get(s.ctx, battle.GetInput{ID: "battle-1"})
	s.Require().NoError(err)
	s.Equal(uint32(120), again.Battle.Player1.CurrentHP)
}

func (s *RepositoryTestSuite) TestListByCharacter() {
	for i, id := range []string{"battle-a", "battle-b", "battle-c"} {
		_, err := s.repo.Create(s.ctx, battle.CreateInput{Battle: newBattle(id, int64(100+i))})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByCharacter(s.ctx, battle.ListByCharacterInput{CharacterID: "char-2", Limit: 2})
	s.Require().NoError(err)
	s.Equal([]string{"battle-c", "battle-b"}, out.BattleIDs)

	out, err = s.repo.ListByCharacter(s.ctx, battle.ListByCharacterInput{CharacterID: "char-9"})
	s.Require().NoError(err)
	s.Empty(out.BattleIDs)
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (battle.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := battle.NewRedis(&battle.RedisConfig{Client: client})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (battle.Repository, func()) {
			return battle.NewInMemory(), nil
		},
	})
}

func TestRedisCorruptRecord(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedis(t)
	defer cleanup()

	repo, err := battle.NewRedis(&battle.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	if err := mr.Set(battle.GetKey("battle-x"), "\x01garbage"); err != nil {
		t.Fatal(err)
	}

	_, err = repo.Get(context.Background(), battle.GetInput{ID: "battle-x"})
	if errors.GetCode(err) != errors.CodeDataLoss {
		t.Fatalf("expected data loss, got %v", err)
	}
}

func TestNewRedisValidation(t *testing.T) {
	_, err := battle.NewRedis(&battle.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
