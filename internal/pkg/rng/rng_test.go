package rng_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/pkg/rng"
)

// faceRoller always rolls the same face, capped at the die size
type faceRoller struct {
	face  int
	sizes []int
}

func (f *faceRoller) Roll(size int) (int, error) {
	f.sizes = append(f.sizes, size)
	return min(f.face, size), nil
}

func (f *faceRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = f.Roll(size)
	}
	return out, nil
}

type RNGTestSuite struct {
	suite.Suite
}

func TestRNGSuite(t *testing.T) {
	suite.Run(t, new(RNGTestSuite))
}

func (s *RNGTestSuite) TestRangeIsInclusive() {
	low := rng.New(&faceRoller{face: 1})
	high := rng.New(&faceRoller{face: 1000})

	s.Assert().Equal(1, low.Range(1, 3))
	s.Assert().Equal(3, high.Range(1, 3))
	s.Assert().Equal(5, high.Range(5, 5))
}

func (s *RNGTestSuite) TestFloat() {
	roller := &faceRoller{face: 100000}
	src := rng.New(roller)

	s.Assert().Equal(1.0, src.Float(0.85, 1.0))
	s.Assert().Equal([]int{1501}, roller.sizes)

	s.Assert().Equal(0.85, rng.New(&faceRoller{face: 1}).Float(0.85, 1.0))
	s.Assert().Equal(2.0, src.Float(2, 2))
}

func (s *RNGTestSuite) TestChances() {
	low := rng.New(&faceRoller{face: 1})
	high := rng.New(&faceRoller{face: 100000})

	s.Assert().True(low.OneIn(4))
	s.Assert().False(high.OneIn(4))
	s.Assert().True(low.Chance(1))
	s.Assert().False(high.Chance(99))
	s.Assert().True(high.Chance(100))
	s.Assert().True(low.Percent(6.25))
	s.Assert().False(high.Percent(6.25))
	s.Assert().Equal(0, low.Pick(3))
	s.Assert().Equal(2, high.Pick(3))
}

func (s *RNGTestSuite) TestSeededRollerIsDeterministic() {
	a := rng.NewSeededRoller(7)
	b := rng.NewSeededRoller(7)

	for i := 0; i < 50; i++ {
		va, err := a.Roll(20)
		s.Require().NoError(err)
		vb, err := b.Roll(20)
		s.Require().NoError(err)
		s.Assert().Equal(va, vb)
		s.Assert().GreaterOrEqual(va, 1)
		s.Assert().LessOrEqual(va, 20)
	}

	rolls, err := a.RollN(3, 6)
	s.Require().NoError(err)
	s.Assert().Len(rolls, 3)
}

func (s *RNGTestSuite) TestSeededRollerRejectsBadSizes() {
	r := rng.NewSeededRoller(1)

	_, err := r.Roll(0)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = r.RollN(-1, 6)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RNGTestSuite) TestRollPanicsOnRollerError() {
	src := rng.NewSeeded(1)
	s.Assert().Panics(func() { src.Roll(0) })
}
