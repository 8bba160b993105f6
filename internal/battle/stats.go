package battle

import (
	"math"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
)

// Stage bounds
const (
	MinStage = -6
	MaxStage = 6
)

var stageMultipliers = [...]float64{1, 1.5, 2, 2.5, 3, 3.5, 4}

var accuracyMultipliers = [...]float64{1, 4.0 / 3.0, 5.0 / 3.0, 2, 7.0 / 3.0, 8.0 / 3.0, 3}

// Stats are the level-derived values of a combatant before stages.
type Stats struct {
	MaxHP     int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
}

// Get returns the derived value of one of the five base stats
func (s Stats) Get(stat monster.Stat) int {
	switch stat {
	case monster.StatAttack:
		return s.Attack
	case monster.StatDefense:
		return s.Defense
	case monster.StatSpAttack:
		return s.SpAttack
	case monster.StatSpDefense:
		return s.SpDefense
	case monster.StatSpeed:
		return s.Speed
	default:
		return 0
	}
}

// ComputeStats derives stats from species and level.
// Max HP is derived from the Speed base: floor(speed*level/100) + 10 + level.
func ComputeStats(species *monster.Species, level int) Stats {
	derive := func(base int) int {
		return base*level/100 + 5
	}

	b := species.BaseStats
	return Stats{
		MaxHP:     b.Speed*level/100 + 10 + level,
		Attack:    derive(b.Attack),
		Defense:   derive(b.Defense),
		SpAttack:  derive(b.SpAttack),
		SpDefense: derive(b.SpDefense),
		Speed:     derive(b.Speed),
	}
}

// ClampStage bounds a stage to [MinStage, MaxStage]
func ClampStage(stage int) int {
	return max(MinStage, min(MaxStage, stage))
}

// EffectiveStat applies a stage to a derived stat value
func EffectiveStat(value, stage int) int {
	stage = ClampStage(stage)
	if stage >= 0 {
		return int(math.Floor(float64(value) * stageMultipliers[stage]))
	}
	return int(math.Floor(float64(value) / stageMultipliers[-stage]))
}

// AccuracyMultiplier is the hit-chance multiplier of an accuracy or evasion stage
func AccuracyMultiplier(stage int) float64 {
	stage = ClampStage(stage)
	if stage >= 0 {
		return accuracyMultipliers[stage]
	}
	return 1 / accuracyMultipliers[-stage]
}
