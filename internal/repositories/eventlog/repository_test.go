package eventlog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/repositories/eventlog"
	"github.com/uzochukwuV/massacombat/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite

	newRepo func() (eventlog.Repository, func())
	repo    eventlog.Repository
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

func (s *RepositoryTestSuite) TestAppendAndList() {
	out, err := s.repo.Append(s.ctx, eventlog.AppendInput{
		BattleID: "battle-1",
		Entries: []eventlog.Entry{
			{Timestamp: 100, Turn: 0, Message: "battle started"},
			{Timestamp: 101, Turn: 1, Message: "char-1 hits char-2 for 15"},
		},
	})
	s.Require().NoError(err)
	s.Equal(int64(2), out.Length)

	out, err = s.repo.Append(s.ctx, eventlog.AppendInput{
		BattleID: "battle-1",
		Entries:  []eventlog.Entry{{Timestamp: 102, Turn: 2, Message: "char-2 dodges"}},
	})
	s.Require().NoError(err)
	s.Equal(int64(3), out.Length)

	list, err := s.repo.List(s.ctx, eventlog.ListInput{BattleID: "battle-1"})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 3)
	s.Equal("battle started", list.Entries[0].Message)
	s.Equal("char-2 dodges", list.Entries[2].Message)
	s.Equal(uint32(2), list.Entries[2].Turn)

	list, err = s.repo.List(s.ctx, eventlog.ListInput{BattleID: "battle-1", Offset: 2})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 1)
	s.Equal(int64(102), list.Entries[0].Timestamp)
}

func (s *RepositoryTestSuite) TestListUnknownBattleIsEmpty() {
	list, err := s.repo.List(s.ctx, eventlog.ListInput{BattleID: "nope"})
	s.Require().NoError(err)
	s.Empty(list.Entries)
}

func (s *RepositoryTestSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, eventlog.AppendInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, eventlog.ListInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, eventlog.ListInput{BattleID: "battle-1", Offset: -1})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (eventlog.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := eventlog.NewRedis(&eventlog.RedisConfig{Client: client})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (eventlog.Repository, func()) {
			return eventlog.NewInMemory(), nil
		},
	})
}
