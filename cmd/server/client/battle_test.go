package client

import (
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/uzochukwuV/massacombat/internal/engine"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/orchestrators/battle"
	"github.com/uzochukwuV/massacombat/internal/repositories/eventlog"
	"github.com/uzochukwuV/massacombat/internal/repositories/leaderboard"
	"github.com/uzochukwuV/massacombat/internal/testutils"
)

func (s *ClientTestSuite) TestCreateBattle() {
	s.mockBattle.EXPECT().
		CreateBattle(gomock.Any(), &battle.CreateBattleInput{
			BattleID:     "battle-1",
			Character1ID: "char-a",
			Character2ID: "char-b",
			Caller:       testutils.AliceAddress,
		}).
		Return(&battle.CreateBattleOutput{Battle: s.testBattle("battle-1")}, nil)

	out, err := s.run("create-battle", "char-a", "char-b", "--id", "battle-1",
		"--caller", testutils.AliceAddress.Hex())
	s.Require().NoError(err)
	s.Contains(out, "Battle battle-1")
	s.Contains(out, "State: active  Turn: 0  Next: player 1")
	s.Contains(out, "P1 char-a")
	s.Contains(out, "P2 char-b")
}

func (s *ClientTestSuite) TestCreateBattleRejectedByServer() {
	s.mockBattle.EXPECT().
		CreateBattle(gomock.Any(), gomock.Any()).
		Return(nil, errors.PermissionDenied("caller does not own char-a"))

	_, err := s.run("create-battle", "char-a", "char-b", "--caller", testutils.BobAddress.Hex())
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to create battle")
	s.Equal(codes.PermissionDenied, status.Code(err))
}

func (s *ClientTestSuite) TestExecuteTurnWithSkill() {
	b := s.testBattle("battle-1")
	b.TurnNumber = 3
	b.CurrentTurn = 2
	b.Player2.CurrentHP = 95

	s.mockBattle.EXPECT().
		ExecuteTurn(gomock.Any(), &battle.ExecuteTurnInput{
			BattleID:    "battle-1",
			CharacterID: "char-a",
			Stance:      entities.StanceAggressive,
			UseSkill:    true,
			SkillSlot:   1,
			Caller:      testutils.AliceAddress,
		}).
		Return(&battle.ExecuteTurnOutput{
			Battle: b,
			Result: &engine.TurnResult{
				Side:       1,
				TurnNumber: 3,
				Outcome:    engine.OutcomeHit,
				Damage:     25,
				Events:     []string{"char-a uses power_strike on char-b for 25"},
			},
		}, nil)

	out, err := s.run("execute-turn", "battle-1", "char-a", "aggressive", "--skill", "1",
		"--caller", testutils.AliceAddress.Hex())
	s.Require().NoError(err)
	s.Contains(out, "Turn 3 (hit):")
	s.Contains(out, "  char-a uses power_strike on char-b for 25")
	s.Contains(out, "HP   95/120")
}

func (s *ClientTestSuite) TestExecuteTurnPlainAttack() {
	s.mockBattle.EXPECT().
		ExecuteTurn(gomock.Any(), &battle.ExecuteTurnInput{
			BattleID:    "battle-1",
			CharacterID: "char-b",
			Stance:      entities.StanceNeutral,
			Caller:      testutils.BobAddress,
		}).
		Return(&battle.ExecuteTurnOutput{
			Battle: s.testBattle("battle-1"),
			Result: &engine.TurnResult{Side: 2, TurnNumber: 1, Outcome: engine.OutcomeDodged},
		}, nil)

	out, err := s.run("execute-turn", "battle-1", "char-b", "neutral", "--caller", testutils.BobAddress.Hex())
	s.Require().NoError(err)
	s.Contains(out, "Turn 1 (dodged):")
}

func (s *ClientTestSuite) TestExecuteTurnValidatesLocally() {
	_, err := s.run("execute-turn", "battle-1", "char-a", "berserk", "--caller", testutils.AliceAddress.Hex())
	s.Require().Error(err)
	s.Contains(err.Error(), `unknown stance "berserk"`)

	_, err = s.run("execute-turn", "battle-1", "char-a", "neutral", "--skill", "3",
		"--caller", testutils.AliceAddress.Hex())
	s.Require().Error(err)
	s.Contains(err.Error(), "--skill must be between -1 and 2")
}

func (s *ClientTestSuite) TestDecideWildcard() {
	b := s.testBattle("battle-1")
	b.State = entities.BattleStateWildcard
	b.Wildcard.Active = true
	b.Wildcard.Type = entities.WildcardHealthSwap
	b.Wildcard.Deadline = 1700000300

	s.mockBattle.EXPECT().
		DecideWildcard(gomock.Any(), &battle.DecideWildcardInput{
			BattleID:    "battle-1",
			CharacterID: "char-a",
			Accept:      true,
			Caller:      testutils.AliceAddress,
		}).
		Return(&battle.DecideWildcardOutput{
			Battle:     b,
			Resolution: &engine.WildcardResolution{Type: entities.WildcardHealthSwap},
		}, nil)

	out, err := s.run("decide-wildcard", "battle-1", "char-a", "--accept",
		"--caller", testutils.AliceAddress.Hex())
	s.Require().NoError(err)
	s.Contains(out, "Wildcard health_swap waiting on the other player")
	s.Contains(out, "Wildcard: health_swap")
}

func (s *ClientTestSuite) TestTimeoutWildcard() {
	s.mockBattle.EXPECT().
		TimeoutWildcard(gomock.Any(), &battle.TimeoutWildcardInput{BattleID: "battle-1"}).
		Return(&battle.TimeoutWildcardOutput{
			Battle: s.testBattle("battle-1"),
			Resolution: &engine.WildcardResolution{
				Type:     entities.WildcardCleanse,
				Resolved: true,
				Events:   []string{"wildcard cleanse expired"},
			},
		}, nil)

	out, err := s.run("timeout-wildcard", "battle-1")
	s.Require().NoError(err)
	s.Contains(out, "Wildcard cleanse resolved, applied: false")
	s.Contains(out, "  wildcard cleanse expired")
}

func (s *ClientTestSuite) TestFinalize() {
	b := s.testBattle("battle-1")
	b.State = entities.BattleStateCompleted
	b.WinnerID = "char-a"
	b.Finalized = true

	s.mockBattle.EXPECT().
		FinalizeBattle(gomock.Any(), &battle.FinalizeBattleInput{BattleID: "battle-1"}).
		Return(&battle.FinalizeBattleOutput{
			Battle: b,
			Settlement: &engine.Settlement{
				BattleID: "battle-1",
				WinnerID: "char-a",
				Player1: engine.SettlementEntry{
					CharacterID: "char-a", Result: engine.ResultWin,
					OldMMR: 1000, NewMMR: 1016, Delta: 16, XP: engine.XPWin,
				},
				Player2: engine.SettlementEntry{
					CharacterID: "char-b", Result: engine.ResultLoss,
					OldMMR: 1000, NewMMR: 984, Delta: -16, XP: engine.XPLoss,
				},
			},
		}, nil)

	out, err := s.run("finalize", "battle-1")
	s.Require().NoError(err)
	s.Contains(out, "Settlement for battle-1 (winner: char-a)")
	s.Contains(out, "MMR 1000 -> 1016 (+16)")
	s.Contains(out, "MMR 1000 -> 984 (-16)")
}

func (s *ClientTestSuite) TestFinalizeTwice() {
	s.mockBattle.EXPECT().
		FinalizeBattle(gomock.Any(), &battle.FinalizeBattleInput{BattleID: "battle-1"}).
		Return(nil, errors.AlreadyFinalized("battle-1"))

	_, err := s.run("finalize", "battle-1")
	s.Require().Error(err)
	s.Equal(codes.AlreadyExists, status.Code(err))
}

func (s *ClientTestSuite) TestGetBattleShowsTie() {
	b := s.testBattle("battle-1")
	b.State = entities.BattleStateCompleted
	b.TurnNumber = 100

	s.mockBattle.EXPECT().
		GetBattle(gomock.Any(), &battle.GetBattleInput{BattleID: "battle-1"}).
		Return(&battle.GetBattleOutput{Battle: b}, nil)

	out, err := s.run("get-battle", "battle-1")
	s.Require().NoError(err)
	s.Contains(out, "State: completed  Turn: 100")
	s.Contains(out, "Winner: tie  Finalized: false")
}

func (s *ClientTestSuite) TestEvents() {
	s.mockBattle.EXPECT().
		ListEvents(gomock.Any(), &battle.ListEventsInput{BattleID: "battle-1", Offset: 1}).
		Return(&battle.ListEventsOutput{Entries: []eventlog.Entry{
			{Timestamp: 1700000000, Turn: 1, Message: "char-a hits char-b for 12"},
			{Timestamp: 1700000005, Turn: 2, Message: "char-b dodges"},
		}}, nil)

	out, err := s.run("events", "battle-1", "--offset", "1")
	s.Require().NoError(err)
	s.Contains(out, "turn 1   char-a hits char-b for 12")
	s.Contains(out, "turn 2   char-b dodges")
}

func (s *ClientTestSuite) TestLeaderboard() {
	s.mockBattle.EXPECT().
		GetLeaderboard(gomock.Any(), &battle.GetLeaderboardInput{Limit: 2}).
		Return(&battle.GetLeaderboardOutput{Standings: []leaderboard.Standing{
			{CharacterID: "char-a", MMR: 1016, Wins: 1, WinStreak: 1},
			{CharacterID: "char-b", MMR: 984, Losses: 1},
		}}, nil)

	out, err := s.run("leaderboard", "--limit", "2")
	s.Require().NoError(err)
	s.Contains(out, "  1. char-a")
	s.Contains(out, "MMR 1016  1W 0L 0T streak 1")
	s.Contains(out, "  2. char-b")
}
