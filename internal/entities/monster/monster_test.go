package monster_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/errors"
)

type fixedRanger struct {
	value int
	calls int
}

func (f *fixedRanger) Range(_, _ int) int {
	f.calls++
	return f.value
}

type MonsterTestSuite struct {
	suite.Suite
}

func TestMonsterSuite(t *testing.T) {
	suite.Run(t, new(MonsterTestSuite))
}

func (s *MonsterTestSuite) TestGetEffectiveness() {
	testCases := []struct {
		name     string
		attack   monster.Type
		defend   monster.Type
		expected float64
	}{
		{"fire on grass", monster.TypeFire, monster.TypeGrass, 2},
		{"water on fire", monster.TypeWater, monster.TypeFire, 2},
		{"grass on fire", monster.TypeGrass, monster.TypeFire, 0.5},
		{"normal on ghost", monster.TypeNormal, monster.TypeGhost, 0},
		{"electric on ground", monster.TypeElectric, monster.TypeGround, 0},
		{"dragon on fairy", monster.TypeDragon, monster.TypeFairy, 0},
		{"normal on normal", monster.TypeNormal, monster.TypeNormal, 1},
		{"none attack", monster.TypeNone, monster.TypeFire, 1},
		{"none defender", monster.TypeFire, monster.TypeNone, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, monster.GetEffectiveness(tc.attack, tc.defend))
		})
	}
}

func (s *MonsterTestSuite) TestHitTimes() {
	s.Run("single hit by default", func() {
		r := &fixedRanger{value: 4}
		move := &monster.Move{}
		s.Assert().Equal(1, move.HitTimes(r))
		s.Assert().Zero(r.calls)
	})

	s.Run("fixed hit count", func() {
		r := &fixedRanger{value: 4}
		move := &monster.Move{HitRange: monster.HitRange{Min: 2}}
		s.Assert().Equal(2, move.HitTimes(r))
		s.Assert().Zero(r.calls)
	})

	s.Run("rolled hit count", func() {
		r := &fixedRanger{value: 4}
		move := &monster.Move{HitRange: monster.HitRange{Min: 2, Max: 5}}
		s.Assert().Equal(4, move.HitTimes(r))
		s.Assert().Equal(1, r.calls)
	})
}

func (s *MonsterTestSuite) TestMoveFlagsAndSource() {
	move := &monster.Move{
		Number:   33,
		Category: monster.CategoryPhysical,
		Flags:    []monster.MoveFlag{monster.FlagContact, monster.FlagPunch},
	}

	s.Assert().True(move.HasFlag(monster.FlagContact))
	s.Assert().True(move.HasFlag(monster.FlagPunch))
	s.Assert().False(move.HasFlag(monster.FlagBite))
	s.Assert().True(move.IsDamaging())
	s.Assert().Equal(monster.SourceTag{Kind: monster.SourceMove, ID: 33}, move.Source())
	s.Assert().True(move.Source().IsMove())
	s.Assert().False(monster.AbilitySource(monster.AbilityStatic).IsMove())
}

func (s *MonsterTestSuite) TestExpForLevel() {
	mediumFast := &monster.Species{GrowthRate: monster.GrowthMediumFast}
	fast := &monster.Species{GrowthRate: monster.GrowthFast}

	s.Assert().Equal(125, mediumFast.ExpForLevel(5))
	s.Assert().Equal(100, fast.ExpForLevel(5))
	s.Assert().Equal(800, fast.ExpForLevel(10))
}

func (s *MonsterTestSuite) TestMoveFromYAML() {
	doc := `
id: thunder-punch
number: 9
name: Thunder Punch
type: Electric
category: physical
power: 75
accuracy: 100
pp: 15
target: foe
flags: [contact, punch]
secondaries:
  - chance: 10
    target: foe
    status: par
  - chance: 100
    target: self
    boosts:
      - stat: sp_attack
        boost: -2
`
	var move monster.Move
	s.Require().NoError(yaml.Unmarshal([]byte(doc), &move))

	s.Assert().Equal(monster.TypeElectric, move.Type)
	s.Assert().Equal(monster.CategoryPhysical, move.Category)
	s.Assert().True(move.HasFlag(monster.FlagPunch))
	s.Require().Len(move.Secondaries, 2)
	s.Assert().Equal(monster.ConditionParalysis, move.Secondaries[0].Status)
	s.Assert().Equal(10, move.Secondaries[0].Chance)
	s.Assert().Equal(monster.TargetSelf, move.Secondaries[1].Target)
	s.Assert().Equal(
		[]monster.StatBoost{{Stat: monster.StatSpAttack, Boost: -2}},
		move.Secondaries[1].Boosts,
	)
	s.Assert().True(move.Effects.IsEmpty())
}

func (s *MonsterTestSuite) TestUnknownEnumValue() {
	var c monster.ConditionID
	err := c.UnmarshalText([]byte("frostbite"))
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *MonsterTestSuite) TestIdentifierLists() {
	s.Assert().Len(monster.AllAbilities(), 21)
	s.Assert().Len(monster.AllConditions(), 9)
	s.Assert().Equal("keeneye", monster.AbilityKeenEye.String())
	s.Assert().Equal("confusion", monster.ConditionConfusion.String())
	s.Assert().Equal("SpAttack", monster.StatSpAttack.String())
}

func (s *MonsterTestSuite) TestConditionKinds() {
	for _, id := range monster.AllConditions() {
		kinds := 0
		for _, is := range []bool{id.IsPrimary(), id.IsVolatile(), id.IsWeather()} {
			if is {
				kinds++
			}
		}
		s.Assert().Equal(1, kinds, "condition %s", id)
	}
	s.Assert().True(monster.ConditionFreeze.IsPrimary())
	s.Assert().True(monster.ConditionConfusion.IsVolatile())
	s.Assert().True(monster.ConditionSandstorm.IsWeather())
	s.Assert().False(monster.ConditionNone.IsPrimary())
	s.Assert().False(monster.ConditionNone.IsVolatile())
	s.Assert().False(monster.ConditionNone.IsWeather())
}
