package battle_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/testutils"
)

type AbilitiesTestSuite struct {
	suite.Suite
	registry *battle.Registry
	turn     *battle.Turn
	striker  *battle.Combatant
	bulwark  *battle.Combatant
}

func TestAbilitiesSuite(t *testing.T) {
	suite.Run(t, new(AbilitiesTestSuite))
}

func (s *AbilitiesTestSuite) SetupTest() {
	s.registry = testutils.NewTestRegistry(s.T())
	s.turn = testutils.NewMaxTurn(s.registry)
	s.striker = testutils.NewTestCombatant(s.T(), s.registry, "p1", testutils.SpeciesStriker, 50)
	s.bulwark = testutils.NewTestCombatant(s.T(), s.registry, "o1", testutils.SpeciesBulwark, 50)
}

func (s *AbilitiesTestSuite) probe(ability monster.AbilityID) *battle.Combatant {
	return testutils.NewTestCombatant(s.T(), s.registry, "probe", testutils.ProbeSpecies(ability), 50)
}

func (s *AbilitiesTestSuite) move(id string) *monster.Move {
	m, err := s.registry.Catalog().GetMoveDefinition(id)
	s.Require().NoError(err)
	return m
}

func (s *AbilitiesTestSuite) slot(id string) *battle.MoveSlot {
	m := s.move(id)
	return &battle.MoveSlot{Def: m, PP: m.PP}
}

func (s *AbilitiesTestSuite) TestKeenEye() {
	holder := s.probe(monster.AbilityKeenEye)

	s.Run("blocks an opponent's accuracy drop", func() {
		battle.ResolveMove(s.turn, s.striker, holder, s.slot(testutils.MoveSandAttack))

		s.Assert().Equal(0, holder.Stage(monster.StatAccuracy))
		s.Assert().Contains(battle.Messages(s.turn.Events()),
			"Probe keeneye's accuracy cannot be decreased due to its keen eye")
	})

	s.Run("allows a self-inflicted drop", func() {
		holder.ApplyBoosts(s.turn, battle.Boosts{monster.StatAccuracy: -1}, holder)
		s.Assert().Equal(-1, holder.Stage(monster.StatAccuracy))
	})
}

func (s *AbilitiesTestSuite) TestHyperCutter() {
	holder := s.probe(monster.AbilityHyperCutter)

	battle.ResolveMove(s.turn, s.striker, holder, s.slot(testutils.MoveGrowl))

	s.Assert().Equal(0, holder.Stage(monster.StatAttack))
	s.Assert().Contains(battle.Messages(s.turn.Events()), "Probe hypercutter's attack cannot be decreased")

	holder.ApplyBoosts(s.turn, battle.Boosts{monster.StatDefense: -1}, s.striker)
	s.Assert().Equal(-1, holder.Stage(monster.StatDefense))
}

func (s *AbilitiesTestSuite) TestClearBody() {
	holder := s.probe(monster.AbilityClearBody)

	holder.ApplyBoosts(s.turn, battle.Boosts{
		monster.StatAttack:  -1,
		monster.StatDefense: -2,
		monster.StatSpeed:   1,
	}, s.striker)

	s.Assert().Equal(0, holder.Stage(monster.StatAttack))
	s.Assert().Equal(0, holder.Stage(monster.StatDefense))
	s.Assert().Equal(1, holder.Stage(monster.StatSpeed))
	s.Assert().Equal([]string{
		"Probe clearbody's clear body prevents stat loss",
		"Probe clearbody's Speed rose!",
	}, battle.Messages(s.turn.Events()))
}

func (s *AbilitiesTestSuite) TestStatusImmunity() {
	s.Run("move attempts are announced", func() {
		holder := s.probe(monster.AbilityLimber)
		turn := testutils.NewMaxTurn(s.registry)

		holder.SetStatus(turn, monster.ConditionParalysis, s.move(testutils.MoveThunderWave).Source())

		s.Assert().Nil(holder.Status())
		s.Assert().Equal([]string{"Probe limber's immune to paralysis"}, battle.Messages(turn.Events()))
	})

	s.Run("ability attempts are silent", func() {
		holder := s.probe(monster.AbilityLimber)
		turn := testutils.NewMaxTurn(s.registry)

		holder.SetStatus(turn, monster.ConditionParalysis, monster.AbilitySource(monster.AbilityStatic))

		s.Assert().Nil(holder.Status())
		s.Assert().Empty(battle.Messages(turn.Events()))
	})

	s.Run("other statuses pass", func() {
		holder := s.probe(monster.AbilityInsomnia)
		turn := testutils.NewMaxTurn(s.registry)

		holder.SetStatus(turn, monster.ConditionPoison, s.move(testutils.MovePoisonPowder).Source())
		s.Require().NotNil(holder.Status())
		s.Assert().Equal(monster.ConditionPoison, holder.Status().ID)
	})

	for ability, status := range map[monster.AbilityID]monster.ConditionID{
		monster.AbilityVitalSpirit: monster.ConditionSleep,
		monster.AbilityInsomnia:    monster.ConditionSleep,
		monster.AbilityImmunity:    monster.ConditionPoison,
		monster.AbilityWaterVeil:   monster.ConditionBurn,
	} {
		s.Run(ability.String(), func() {
			holder := s.probe(ability)
			holder.SetStatus(testutils.NewMaxTurn(s.registry), status, monster.SourceTag{Kind: monster.SourceMove})
			s.Assert().Nil(holder.Status())
		})
	}
}

func (s *AbilitiesTestSuite) TestOwnTempo() {
	holder := s.probe(monster.AbilityOwnTempo)

	battle.ResolveMove(s.turn, s.striker, holder, s.slot(testutils.MoveConfuseRay))

	s.Assert().Nil(holder.VolatileStatus())
	s.Assert().Contains(battle.Messages(s.turn.Events()), "Probe owntempo's immune to confusion")
}

func (s *AbilitiesTestSuite) TestContactRetaliation() {
	s.Run("static paralyzes a contact attacker", func() {
		holder := s.probe(monster.AbilityStatic)
		// accuracy, crit, variance, then the one-in-three check
		roller := testutils.NewScriptedRoller(1, 10000, 1501, 1)
		turn := testutils.NewScriptedTurn(s.registry, roller)

		battle.ResolveMove(turn, s.striker, holder, s.slot(testutils.MoveStrike))

		s.Require().NotNil(s.striker.Status())
		s.Assert().Equal(monster.ConditionParalysis, s.striker.Status().ID)
		s.Assert().Contains(battle.Messages(turn.Events()), "Striker has been paralyzed")
	})

	s.Run("no trigger on a failed roll", func() {
		holder := s.probe(monster.AbilityFlameBody)
		attacker := testutils.NewTestCombatant(s.T(), s.registry, "p2", testutils.SpeciesStriker, 50)

		battle.ResolveMove(testutils.NewMaxTurn(s.registry), attacker, holder, s.slot(testutils.MoveStrike))
		s.Assert().Nil(attacker.Status())
	})

	s.Run("no trigger without contact", func() {
		holder := s.probe(monster.AbilityPoisonPoint)
		attacker := testutils.NewTestCombatant(s.T(), s.registry, "p3", testutils.SpeciesStriker, 50)
		roller := testutils.NewScriptedRoller(1, 10000, 1501, 1)

		battle.ResolveMove(testutils.NewScriptedTurn(s.registry, roller), attacker, holder, s.slot(testutils.MoveWaterGun))
		s.Assert().Nil(attacker.Status())
		s.Assert().Equal(1, roller.Remaining())
	})
}

func (s *AbilitiesTestSuite) TestBasePowerModifiers() {
	cases := []struct {
		ability monster.AbilityID
		move    string
		damage  int
	}{
		{monster.AbilityIronFist, testutils.MoveFirePunch, 35},
		{monster.AbilityLimber, testutils.MoveFirePunch, 30},
		{monster.AbilityToughClaws, testutils.MoveStrike, 21},
		{monster.AbilityLimber, testutils.MoveStrike, 17},
		{monster.AbilityStrongJaw, testutils.MoveStrike, 17},
	}

	for _, tc := range cases {
		s.Run(tc.ability.String()+"/"+tc.move, func() {
			attacker := s.probe(tc.ability)
			defender := testutils.NewTestCombatant(s.T(), s.registry, "o2", testutils.SpeciesBulwark, 50)

			result := battle.ResolveMove(testutils.NewMaxTurn(s.registry), attacker, defender, s.slot(tc.move))
			s.Assert().Equal(tc.damage, result.TotalDamage())
		})
	}
}

func (s *AbilitiesTestSuite) TestPinchBoost() {
	blaze := s.probe(monster.AbilityBlaze)

	full := battle.ResolveMove(s.turn, blaze, s.bulwark, s.slot(testutils.MoveEmber))
	s.Assert().Equal(17, full.TotalDamage())

	blaze.UpdateHP(s.turn, blaze.MaxHP()-blaze.MaxHP()/3)
	pinched := battle.ResolveMove(s.turn, blaze, s.bulwark, s.slot(testutils.MoveEmber))
	s.Assert().Equal(24, pinched.TotalDamage())

	// only boosts its own type
	other := battle.ResolveMove(s.turn, blaze, s.bulwark, s.slot(testutils.MoveWaterGun))
	s.Assert().Equal(17, other.TotalDamage())
}

func (s *AbilitiesTestSuite) TestCompoundEyes() {
	doubleHit := s.move(testutils.MoveDoubleHit)
	sharp := s.probe(monster.AbilityCompoundEyes)
	plain := s.probe(monster.AbilityLimber)

	// a roll of 100 misses a 90 accuracy move
	s.Assert().False(battle.CheckHit(
		testutils.NewScriptedTurn(s.registry, testutils.NewScriptedRoller(100)), doubleHit, plain, s.bulwark))
	s.Assert().True(battle.CheckHit(
		testutils.NewScriptedTurn(s.registry, testutils.NewScriptedRoller(100)), doubleHit, sharp, s.bulwark))
}
