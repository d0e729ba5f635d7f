package rpgtoolkit

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/uzochukwuV/massacombat/internal/engine"
	"github.com/uzochukwuV/massacombat/internal/entities"
)

type PublisherTestSuite struct {
	suite.Suite

	ctx       context.Context
	bus       events.EventBus
	publisher *Publisher
	received  []events.Event
	battle    *entities.Battle
}

func (s *PublisherTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.received = nil

	for _, eventType := range []string{
		EventBattleCreated, EventTurnResolved, EventWildcardOffered,
		EventWildcardResolved, EventBattleCompleted, EventBattleFinalized,
	} {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.received = append(s.received, e)
			return nil
		})
	}

	p, err := NewPublisher(&PublisherConfig{EventBus: s.bus})
	s.Require().NoError(err)
	s.publisher = p

	s.battle = &entities.Battle{
		ID:      "battle-1",
		Player1: entities.BattlePlayer{CharacterID: "char-p1"},
		Player2: entities.BattlePlayer{CharacterID: "char-p2"},
	}
}

func (s *PublisherTestSuite) types() []string {
	out := make([]string, 0, len(s.received))
	for _, e := range s.received {
		out = append(out, e.Type())
	}
	return out
}

func (s *PublisherTestSuite) TestNewPublisherRequiresBus() {
	_, err := NewPublisher(&PublisherConfig{})
	s.Error(err)
	_, err = NewPublisher(nil)
	s.Error(err)
}

func (s *PublisherTestSuite) TestPublishCreated() {
	s.Require().NoError(s.publisher.PublishCreated(s.ctx, s.battle))

	s.Equal([]string{EventBattleCreated}, s.types())
	s.Equal("char-p1", s.received[0].Source().GetID())
	s.Equal("char-p2", s.received[0].Target().GetID())
}

func (s *PublisherTestSuite) TestPublishTurnFromSecondSide() {
	err := s.publisher.PublishTurn(s.ctx, s.battle, &engine.TurnResult{
		Side:       2,
		TurnNumber: 4,
		Outcome:    engine.OutcomeHit,
		Damage:     12,
	})
	s.Require().NoError(err)

	s.Equal([]string{EventTurnResolved}, s.types())
	s.Equal("char-p2", s.received[0].Source().GetID())
	s.Equal("char-p1", s.received[0].Target().GetID())
}

func (s *PublisherTestSuite) TestPublishTurnWithTriggers() {
	err := s.publisher.PublishTurn(s.ctx, s.battle, &engine.TurnResult{
		Side:     1,
		Outcome:  engine.OutcomeHit,
		Wildcard: entities.WildcardCleanse,
	})
	s.Require().NoError(err)
	s.Equal([]string{EventTurnResolved, EventWildcardOffered}, s.types())

	s.received = nil
	s.battle.WinnerID = "char-p1"
	err = s.publisher.PublishTurn(s.ctx, s.battle, &engine.TurnResult{
		Side:      1,
		Outcome:   engine.OutcomeHit,
		Completed: true,
		WinnerID:  "char-p1",
	})
	s.Require().NoError(err)
	s.Equal([]string{EventTurnResolved, EventBattleCompleted}, s.types())
}

func (s *PublisherTestSuite) TestPublishWildcardOnlyWhenResolved() {
	s.Require().NoError(s.publisher.PublishWildcard(s.ctx, s.battle, &engine.WildcardResolution{}))
	s.Empty(s.received)

	s.Require().NoError(s.publisher.PublishWildcard(s.ctx, s.battle, &engine.WildcardResolution{
		Type: entities.WildcardCataclysm, Resolved: true, Applied: true,
	}))
	s.Equal([]string{EventWildcardResolved}, s.types())
	s.Equal("battle-1", s.received[0].Source().GetID())
}

func (s *PublisherTestSuite) TestPublishFinalized() {
	s.Require().NoError(s.publisher.PublishFinalized(s.ctx, s.battle, &engine.Settlement{BattleID: "battle-1"}))
	s.Equal([]string{EventBattleFinalized}, s.types())
}

func TestPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}
