package battle_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/pkg/rng"
	"github.com/KirkDiggler/monster-battle/internal/testutils"
)

// recordingEventBus keeps every published event
type recordingEventBus struct {
	mu        sync.Mutex
	published []events.Event
}

func (b *recordingEventBus) Publish(_ context.Context, e events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, e)
	return nil
}
func (b *recordingEventBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingEventBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingEventBus) Unsubscribe(_ string) error { return nil }
func (b *recordingEventBus) Clear(_ string)             {}
func (b *recordingEventBus) ClearAll()                  {}

func (b *recordingEventBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.published)
}

type SessionTestSuite struct {
	suite.Suite
	ctx      context.Context
	registry *battle.Registry
	bus      *recordingEventBus
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.registry = testutils.NewTestRegistry(s.T())
	s.bus = &recordingEventBus{}
}

func (s *SessionTestSuite) newSession(player, opponent *battle.Combatant, roller *testutils.ScriptedRoller) *battle.Session {
	var src *rng.Source
	if roller != nil {
		src = rng.New(roller)
	} else {
		src = rng.New(testutils.MaxRoller{})
	}

	session, err := battle.NewSession(&battle.Config{
		ID:       "battle-1",
		Registry: s.registry,
		Rand:     src,
		EventBus: s.bus,
		Player:   player,
		Opponent: opponent,
	})
	s.Require().NoError(err)
	return session
}

func (s *SessionTestSuite) combatant(id, species string, level int) *battle.Combatant {
	return testutils.NewTestCombatant(s.T(), s.registry, id, species, level)
}

func (s *SessionTestSuite) TestNewSessionValidation() {
	player := s.combatant("p1", testutils.SpeciesStriker, 5)

	s.Run("nil config", func() {
		_, err := battle.NewSession(nil)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("missing fields", func() {
		_, err := battle.NewSession(&battle.Config{ID: "b"})
		s.Require().True(errors.IsInvalidArgument(err))
		s.Assert().Contains(err.Error(), "Registry")
		s.Assert().Contains(err.Error(), "Player")
	})

	s.Run("shared ids", func() {
		_, err := battle.NewSession(&battle.Config{
			ID:       "b",
			Registry: s.registry,
			Rand:     rng.NewSeeded(1),
			Player:   player,
			Opponent: player,
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *SessionTestSuite) TestFasterSideActsFirst() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	opponent := s.combatant("o1", testutils.SpeciesBulwark, 50)
	session := s.newSession(player, opponent, nil)

	result, err := session.RunTurn(s.ctx, 0, 0)
	s.Require().NoError(err)

	s.Assert().Equal(1, result.Number)
	s.Require().Len(result.Actions, 2)
	s.Assert().Equal(battle.SidePlayer, result.Actions[0].Side)
	s.Assert().Equal(battle.SideOpponent, result.Actions[1].Side)
	s.Assert().Equal(24, result.Actions[0].TotalDamage())
	s.Assert().Equal(17, result.Actions[1].TotalDamage())
	s.Assert().Equal(56, opponent.HP())
	s.Assert().Equal(78, player.HP())
	s.Assert().Equal(battle.OutcomeOngoing, result.Outcome)
	s.Assert().Equal(1, session.TurnNumber())

	s.Assert().Equal([]string{"Striker used Strike", "Bulwark used Strike"}, battle.Messages(session.Drain()))
}

func (s *SessionTestSuite) TestPriorityBeatsSpeed() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	opponent := s.combatant("o1", testutils.SpeciesBulwark, 50)
	session := s.newSession(player, opponent, nil)

	s.Require().Equal(testutils.MoveQuickStrike, opponent.Moves()[2].Def.ID)
	result, err := session.RunTurn(s.ctx, 0, 2)
	s.Require().NoError(err)

	s.Require().Len(result.Actions, 2)
	s.Assert().Equal(battle.SideOpponent, result.Actions[0].Side)
	s.Assert().Equal(testutils.MoveQuickStrike, result.Actions[0].MoveID)
}

func (s *SessionTestSuite) TestSpeedTieIsRandom() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	opponent := s.combatant("o1", testutils.SpeciesStriker, 50)
	session := s.newSession(player, opponent, testutils.NewScriptedRoller(2))

	result, err := session.RunTurn(s.ctx, 0, 0)
	s.Require().NoError(err)
	s.Assert().Equal(battle.SideOpponent, result.Actions[0].Side)
}

func (s *SessionTestSuite) TestMoveSelection() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	opponent := s.combatant("o1", testutils.SpeciesBulwark, 50)
	session := s.newSession(player, opponent, nil)

	s.Run("index out of range", func() {
		_, err := session.RunTurn(s.ctx, 7, 0)
		s.Assert().True(errors.IsInvalidArgument(err))
		s.Assert().Equal(0, session.TurnNumber())
	})

	s.Run("no pp left", func() {
		player.Moves()[0].PP = 0
		_, err := session.RunTurn(s.ctx, 0, 0)
		s.Assert().True(errors.IsFailedPrecondition(err))
	})

	s.Run("one side passes", func() {
		result, err := session.RunTurn(s.ctx, battle.NoMove, 0)
		s.Require().NoError(err)
		s.Require().Len(result.Actions, 1)
		s.Assert().Equal(battle.SideOpponent, result.Actions[0].Side)
	})

	s.Run("random index has pp", func() {
		idx := session.RandomMoveIndex(battle.SidePlayer)
		s.Require().NotEqual(battle.NoMove, idx)
		s.Assert().Positive(player.Moves()[idx].PP)
	})
}

func (s *SessionTestSuite) TestFaintEndsBattle() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	opponent := s.combatant("o1", testutils.SpeciesBulwark, 50)
	opponent.UpdateHP(testutils.NewMaxTurn(s.registry), 79)
	session := s.newSession(player, opponent, nil)

	result, err := session.RunTurn(s.ctx, 0, 0)
	s.Require().NoError(err)

	s.Assert().Len(result.Actions, 1)
	s.Assert().Equal(battle.OutcomePlayerWon, result.Outcome)
	s.Assert().Equal(battle.OutcomePlayerWon, session.Outcome())
	s.Assert().Equal(126000, player.Exp())

	evts := session.Drain()
	s.Assert().Contains(battle.Messages(evts), "Bulwark fainted!")
	s.Assert().Contains(battle.Messages(evts), "Striker gained 1000 exp")

	var faints int
	for _, e := range evts {
		if e.Kind == battle.EventFaint {
			faints++
			s.Assert().Equal("o1", e.CombatantID)
		}
	}
	s.Assert().Equal(1, faints)

	_, err = session.RunTurn(s.ctx, 0, 0)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *SessionTestSuite) TestVictoryLevelsUp() {
	player := s.combatant("p1", testutils.SpeciesBulwark, 10)
	opponent := s.combatant("o1", testutils.SpeciesStriker, 50)
	opponent.UpdateHP(testutils.NewMaxTurn(s.registry), 94)
	session := s.newSession(player, opponent, nil)

	result, err := session.RunTurn(s.ctx, 0, battle.NoMove)
	s.Require().NoError(err)
	s.Require().Equal(battle.OutcomePlayerWon, result.Outcome)

	s.Assert().Equal(11, player.Level())
	s.Assert().True(player.HasMove(testutils.MoveBite))
	s.Assert().Len(player.Moves(), 4)

	msgs := battle.Messages(session.Drain())
	s.Assert().Contains(msgs, "Bulwark gained 714 exp")
	s.Assert().Contains(msgs, "Bulwark grew to level 11")
	s.Assert().Contains(msgs, "Bulwark learned Bite")
}

func (s *SessionTestSuite) TestEndOfTurnSweep() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	opponent := s.combatant("o1", testutils.SpeciesBulwark, 50)
	session, err := battle.NewSession(&battle.Config{
		ID:              "battle-2",
		Registry:        s.registry,
		Rand:            rng.New(testutils.MaxRoller{}),
		EventBus:        s.bus,
		WeatherDuration: 2,
		Player:          player,
		Opponent:        opponent,
	})
	s.Require().NoError(err)

	s.Require().NoError(session.SetWeather(s.ctx, monster.ConditionSandstorm))
	s.Assert().Equal(1, s.bus.count())

	_, err = session.RunTurn(s.ctx, battle.NoMove, battle.NoMove)
	s.Require().NoError(err)
	s.Assert().Equal(89, player.HP())
	s.Assert().Equal(75, opponent.HP())
	s.Assert().Equal(1, session.Field().RemainingTurns())

	_, err = session.RunTurn(s.ctx, battle.NoMove, battle.NoMove)
	s.Require().NoError(err)
	s.Assert().Nil(session.Field().Weather())

	msgs := battle.Messages(session.Drain())
	s.Assert().Equal("A sandstorm is raging", msgs[0])
	s.Assert().Equal("The weather has returned to normal", msgs[len(msgs)-1])
	s.Assert().Equal(0, session.Pending())
	s.Assert().Empty(session.Drain())
}

func (s *SessionTestSuite) TestSetWeatherRejectsUnknown() {
	session := s.newSession(
		s.combatant("p1", testutils.SpeciesStriker, 5),
		s.combatant("o1", testutils.SpeciesBulwark, 5),
		nil,
	)

	err := session.SetWeather(s.ctx, monster.ConditionNone)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal(0, s.bus.count())
}

func (s *SessionTestSuite) TestStatusTicksAfterActions() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	opponent := s.combatant("o1", testutils.SpeciesBulwark, 50)
	player.SetStatus(testutils.NewMaxTurn(s.registry), monster.ConditionPoison, monster.SourceTag{})
	session := s.newSession(player, opponent, nil)

	_, err := session.RunTurn(s.ctx, 0, 0)
	s.Require().NoError(err)

	s.Assert().Equal(78-11, player.HP())
	msgs := battle.Messages(session.Drain())
	s.Assert().Equal("Striker hurt itself due to poison", msgs[len(msgs)-1])
}

func (s *SessionTestSuite) TestSweepFollowsActionOrder() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	opponent := s.combatant("o1", testutils.SpeciesBulwark, 50)
	setup := testutils.NewMaxTurn(s.registry)
	player.SetStatus(setup, monster.ConditionPoison, monster.SourceTag{})
	opponent.SetStatus(setup, monster.ConditionPoison, monster.SourceTag{})
	session := s.newSession(player, opponent, nil)

	_, err := session.RunTurn(s.ctx, 0, 2)
	s.Require().NoError(err)
	msgs := battle.Messages(session.Drain())
	s.Require().GreaterOrEqual(len(msgs), 2)
	s.Assert().Equal([]string{
		"Bulwark hurt itself due to poison",
		"Striker hurt itself due to poison",
	}, msgs[len(msgs)-2:])

	_, err = session.RunTurn(s.ctx, 0, 0)
	s.Require().NoError(err)
	msgs = battle.Messages(session.Drain())
	s.Require().GreaterOrEqual(len(msgs), 2)
	s.Assert().Equal([]string{
		"Striker hurt itself due to poison",
		"Bulwark hurt itself due to poison",
	}, msgs[len(msgs)-2:])
}

func (s *SessionTestSuite) TestEventsArePublished() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	opponent := s.combatant("o1", testutils.SpeciesBulwark, 50)
	session := s.newSession(player, opponent, nil)

	_, err := session.RunTurn(s.ctx, 0, 0)
	s.Require().NoError(err)

	pending := session.Pending()
	s.Require().Positive(pending)
	s.Assert().Equal(pending, s.bus.count())
	for _, e := range s.bus.published {
		s.Assert().Equal(battle.EventTypeBattle, e.Type())
	}

	drained := session.Drain()
	for i, e := range s.bus.published {
		battleID, evt, ok := battle.FromBusEvent(e)
		s.Require().True(ok)
		s.Assert().Equal("battle-1", battleID)
		s.Assert().Equal(drained[i], evt)
	}

	_, _, ok := battle.FromBusEvent(nil)
	s.Assert().False(ok)
}

func (s *SessionTestSuite) TestFaintHPIsSerialized() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	turn := testutils.NewMaxTurn(s.registry)
	player.UpdateHP(turn, player.MaxHP())

	evts := turn.Events()
	s.Require().NotEmpty(evts)
	hpEvent := evts[len(evts)-1]
	s.Require().Equal(battle.EventHP, hpEvent.Kind)

	raw, err := json.Marshal(hpEvent)
	s.Require().NoError(err)
	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(raw, &decoded))
	s.Assert().Contains(decoded, "hp")
	s.Assert().Equal(float64(0), decoded["hp"])
}

func (s *SessionTestSuite) TestEndBattle() {
	player := s.combatant("p1", testutils.SpeciesStriker, 50)
	opponent := s.combatant("o1", testutils.SpeciesBulwark, 50)
	turn := testutils.NewMaxTurn(s.registry)
	player.SetStatus(turn, monster.ConditionBurn, monster.SourceTag{})
	player.SetVolatileStatus(turn, monster.ConditionConfusion, monster.SourceTag{})
	opponent.ApplyBoosts(turn, battle.Boosts{monster.StatDefense: 2}, opponent)
	session := s.newSession(player, opponent, nil)

	session.EndBattle(s.ctx)
	session.EndBattle(s.ctx)

	s.Assert().True(session.Ended())
	s.Assert().Nil(player.VolatileStatus())
	s.Assert().NotNil(player.Status())
	s.Assert().Equal(0, opponent.Stage(monster.StatDefense))

	_, err := session.RunTurn(s.ctx, 0, 0)
	s.Assert().True(errors.IsFailedPrecondition(err))
}
