package simulation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	engine "github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/services/simulation"
	"github.com/KirkDiggler/monster-battle/internal/testutils"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service simulation.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := simulation.NewService(&simulation.Config{Registry: testutils.NewTestRegistry(s.T())})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceTestSuite) input() *simulation.RunInput {
	return &simulation.RunInput{
		Attacker:    testutils.SpeciesStriker,
		Defender:    testutils.SpeciesBulwark,
		Level:       20,
		Battles:     24,
		Seed:        99,
		Concurrency: 4,
	}
}

func (s *ServiceTestSuite) TestNewService() {
	_, err := simulation.NewService(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = simulation.NewService(&simulation.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestRunTalliesEveryBattle() {
	out, err := s.service.Run(s.ctx, s.input())
	s.Require().NoError(err)

	s.Assert().Equal(24, out.AttackerWins+out.DefenderWins+out.Draws)
	s.Assert().Positive(out.TotalTurns)
	s.Assert().Empty(out.Logs)
}

func (s *ServiceTestSuite) TestRunIsReproducible() {
	sequential := s.input()
	sequential.Concurrency = 1
	sequential.KeepLogs = true

	parallel := s.input()
	parallel.Concurrency = 8
	parallel.KeepLogs = true

	first, err := s.service.Run(s.ctx, sequential)
	s.Require().NoError(err)
	second, err := s.service.Run(s.ctx, parallel)
	s.Require().NoError(err)

	s.Assert().Equal(first, second)
}

func (s *ServiceTestSuite) TestRunKeepsLogs() {
	input := s.input()
	input.Battles = 3
	input.KeepLogs = true

	out, err := s.service.Run(s.ctx, input)
	s.Require().NoError(err)

	s.Require().Len(out.Logs, 3)
	for i, log := range out.Logs {
		s.Assert().Equal(i, log.Index)
		s.Assert().Equal(int64(99+i), log.Seed)
		s.Assert().NotEqual(engine.OutcomeOngoing, log.Outcome)
		s.Assert().NotEmpty(log.Messages)
	}
}

func (s *ServiceTestSuite) TestMaxTurnsForcesADraw() {
	input := s.input()
	input.Battles = 2
	input.MaxTurns = 1
	input.Level = 100

	out, err := s.service.Run(s.ctx, input)
	s.Require().NoError(err)
	s.Assert().Equal(2, out.Draws)
	s.Assert().Equal(2, out.TotalTurns)
}

func (s *ServiceTestSuite) TestRunValidation() {
	s.Run("nil input", func() {
		_, err := s.service.Run(s.ctx, nil)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("bad fields", func() {
		_, err := s.service.Run(s.ctx, &simulation.RunInput{Level: 0})
		s.Require().True(errors.IsInvalidArgument(err))
		s.Assert().Contains(err.Error(), "Attacker")
		s.Assert().Contains(err.Error(), "Battles")
	})

	s.Run("unknown species", func() {
		input := s.input()
		input.Defender = "Missingno"
		_, err := s.service.Run(s.ctx, input)
		s.Assert().Error(err)
	})

	s.Run("cancelled context", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		_, err := s.service.Run(ctx, s.input())
		s.Assert().Error(err)
	})
}
