package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/data"
	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/pkg/rng"
)

// Fixture species
const (
	// SpeciesStriker has Attack base 80 and no ability
	SpeciesStriker = "Striker"
	// SpeciesBulwark has Defense base 60, no ability, and learns Bite at level 11
	SpeciesBulwark = "Bulwark"
)

// Fixture move ids
const (
	MoveStrike       = "strike"
	MoveGrowl        = "growl"
	MoveSandAttack   = "sand-attack"
	MoveFocusBlur    = "focus-blur"
	MoveWaterGun     = "water-gun"
	MoveEmber        = "ember"
	MoveSpore        = "spore"
	MovePoisonPowder = "poison-powder"
	MoveThunderWave  = "thunder-wave"
	MoveConfuseRay   = "confuse-ray"
	MoveRainDance    = "rain-dance"
	MoveSandstorm    = "sandstorm"
	MoveDoubleHit    = "double-hit"
	MoveFirePunch    = "fire-punch"
	MoveBite         = "bite"
	MoveQuickStrike  = "quick-strike"
	MoveNuzzle       = "nuzzle"
)

// ProbeSpecies names the fixture species carrying ability
func ProbeSpecies(ability monster.AbilityID) string {
	return "Probe " + ability.String()
}

// TestMoves returns the fixture move definitions
func TestMoves() []monster.Move {
	boost := func(stat monster.Stat, delta int) monster.MoveEffects {
		return monster.MoveEffects{Boosts: []monster.StatBoost{{Stat: stat, Boost: delta}}}
	}
	contact := []monster.MoveFlag{monster.FlagContact}

	return []monster.Move{
		{ID: MoveStrike, Number: 1, Name: "Strike", Type: monster.TypeNormal, Category: monster.CategoryPhysical,
			Power: 40, Accuracy: 100, PP: 35, Flags: contact},
		{ID: MoveGrowl, Number: 2, Name: "Growl", Type: monster.TypeNormal, Category: monster.CategoryStatus,
			Accuracy: 100, PP: 40, Effects: boost(monster.StatAttack, -1)},
		{ID: MoveSandAttack, Number: 3, Name: "Sand Attack", Type: monster.TypeGround, Category: monster.CategoryStatus,
			Accuracy: 100, PP: 15, Effects: boost(monster.StatAccuracy, -1)},
		{ID: MoveFocusBlur, Number: 4, Name: "Focus Blur", Type: monster.TypeNormal, Category: monster.CategoryStatus,
			PP: 10, Target: monster.TargetSelf, Effects: boost(monster.StatAccuracy, -1)},
		{ID: MoveWaterGun, Number: 5, Name: "Water Gun", Type: monster.TypeWater, Category: monster.CategorySpecial,
			Power: 40, Accuracy: 100, PP: 25},
		{ID: MoveEmber, Number: 6, Name: "Ember", Type: monster.TypeFire, Category: monster.CategorySpecial,
			Power: 40, Accuracy: 100, PP: 25,
			Secondaries: []monster.SecondaryEffect{{
				MoveEffects: monster.MoveEffects{Status: monster.ConditionBurn}, Chance: 10, Target: monster.TargetFoe,
			}}},
		{ID: MoveSpore, Number: 7, Name: "Spore", Type: monster.TypeGrass, Category: monster.CategoryStatus,
			Accuracy: 100, PP: 15, Effects: monster.MoveEffects{Status: monster.ConditionSleep}},
		{ID: MovePoisonPowder, Number: 8, Name: "Poison Powder", Type: monster.TypePoison, Category: monster.CategoryStatus,
			Accuracy: 75, PP: 35, Effects: monster.MoveEffects{Status: monster.ConditionPoison}},
		{ID: MoveThunderWave, Number: 9, Name: "Thunder Wave", Type: monster.TypeElectric, Category: monster.CategoryStatus,
			Accuracy: 90, PP: 20, Effects: monster.MoveEffects{Status: monster.ConditionParalysis}},
		{ID: MoveConfuseRay, Number: 10, Name: "Confuse Ray", Type: monster.TypeGhost, Category: monster.CategoryStatus,
			AlwaysHits: true, PP: 10, Effects: monster.MoveEffects{VolatileStatus: monster.ConditionConfusion}},
		{ID: MoveRainDance, Number: 11, Name: "Rain Dance", Type: monster.TypeWater, Category: monster.CategoryStatus,
			AlwaysHits: true, PP: 5, Target: monster.TargetSelf, Effects: monster.MoveEffects{Weather: monster.ConditionRain}},
		{ID: MoveSandstorm, Number: 12, Name: "Sandstorm", Type: monster.TypeRock, Category: monster.CategoryStatus,
			AlwaysHits: true, PP: 10, Target: monster.TargetSelf, Effects: monster.MoveEffects{Weather: monster.ConditionSandstorm}},
		{ID: MoveDoubleHit, Number: 13, Name: "Double Hit", Type: monster.TypeNormal, Category: monster.CategoryPhysical,
			Power: 35, Accuracy: 90, PP: 10, Flags: contact, HitRange: monster.HitRange{Min: 2}},
		{ID: MoveFirePunch, Number: 14, Name: "Fire Punch", Type: monster.TypeFire, Category: monster.CategoryPhysical,
			Power: 75, Accuracy: 100, PP: 15, Flags: []monster.MoveFlag{monster.FlagContact, monster.FlagPunch}},
		{ID: MoveBite, Number: 15, Name: "Bite", Type: monster.TypeDark, Category: monster.CategoryPhysical,
			Power: 60, Accuracy: 100, PP: 25, Flags: []monster.MoveFlag{monster.FlagContact, monster.FlagBite}},
		{ID: MoveQuickStrike, Number: 16, Name: "Quick Strike", Type: monster.TypeNormal, Category: monster.CategoryPhysical,
			Power: 40, Accuracy: 100, PP: 30, Priority: 1, Flags: contact},
		{ID: MoveNuzzle, Number: 17, Name: "Nuzzle", Type: monster.TypeElectric, Category: monster.CategoryPhysical,
			Power: 20, Accuracy: 100, PP: 20, Flags: contact,
			Secondaries: []monster.SecondaryEffect{{
				MoveEffects: monster.MoveEffects{Status: monster.ConditionParalysis}, Chance: 100, Target: monster.TargetFoe,
			}}},
	}
}

// TestSpecies returns the fixture species: Striker, Bulwark and one probe
// species per ability.
func TestSpecies() []monster.Species {
	learn := func(ids ...string) []monster.LearnableMove {
		out := make([]monster.LearnableMove, len(ids))
		for i, id := range ids {
			out[i] = monster.LearnableMove{MoveID: id, Level: 1}
		}
		return out
	}

	species := []monster.Species{
		{
			Name:           SpeciesStriker,
			Type1:          monster.TypeNormal,
			BaseStats:      monster.BaseStats{Attack: 80, Defense: 60, SpAttack: 50, SpDefense: 50, Speed: 70},
			GrowthRate:     monster.GrowthMediumFast,
			ExpYield:       100,
			LearnableMoves: learn(MoveStrike, MoveGrowl, MoveFocusBlur, MoveWaterGun),
		},
		{
			Name:       SpeciesBulwark,
			Type1:      monster.TypeNormal,
			BaseStats:  monster.BaseStats{Attack: 50, Defense: 60, SpAttack: 50, SpDefense: 60, Speed: 40},
			GrowthRate: monster.GrowthMediumFast,
			ExpYield:   140,
			LearnableMoves: append(learn(MoveStrike, MoveSpore, MoveQuickStrike),
				monster.LearnableMove{MoveID: MoveBite, Level: 11}),
		},
	}

	for _, ability := range monster.AllAbilities() {
		species = append(species, monster.Species{
			Name:           ProbeSpecies(ability),
			Type1:          monster.TypeNormal,
			BaseStats:      monster.BaseStats{Attack: 50, Defense: 50, SpAttack: 50, SpDefense: 50, Speed: 50},
			Ability:        ability,
			GrowthRate:     monster.GrowthFast,
			ExpYield:       50,
			LearnableMoves: learn(MoveStrike, MoveSandAttack, MoveEmber, MoveFirePunch),
		})
	}

	return species
}

// NewTestCatalog builds the fixture catalog
func NewTestCatalog(t testing.TB) *data.Catalog {
	t.Helper()
	catalog, err := data.NewCatalog(TestSpecies(), TestMoves())
	require.NoError(t, err)
	return catalog
}

// NewTestRegistry builds a registry over the fixture catalog with the
// built-in abilities and conditions
func NewTestRegistry(t testing.TB) *battle.Registry {
	t.Helper()
	registry, err := battle.NewDefaultRegistry(NewTestCatalog(t))
	require.NoError(t, err)
	return registry
}

// NewTestCombatant creates a fresh combatant from the fixture catalog
func NewTestCombatant(t testing.TB, registry *battle.Registry, id, species string, level int) *battle.Combatant {
	t.Helper()
	c, err := registry.NewCombatant(id, species, level)
	require.NoError(t, err)
	return c
}

// NewMaxTurn returns a turn scope whose rolls always land on the highest face
func NewMaxTurn(registry *battle.Registry) *battle.Turn {
	return battle.NewTurn(registry, rng.New(MaxRoller{}), nil)
}

// NewScriptedTurn returns a turn scope drawing from roller
func NewScriptedTurn(registry *battle.Registry, roller *ScriptedRoller) *battle.Turn {
	return battle.NewTurn(registry, rng.New(roller), nil)
}
