// Package rng is the single randomness source threaded through a battle.
//
// A Source wraps an rpg-toolkit dice.Roller so production can use
// dice.DefaultRoller while simulations and tests inject a seeded or scripted
// roller. Every random draw in the engine goes through one Source, which keeps
// a battle fully reproducible from its roller.
package rng

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/monster-battle/internal/errors"
)

// floatResolution is the number of discrete steps per unit used by Float.
const floatResolution = 10000

// Source draws engine randomness from a dice.Roller.
type Source struct {
	roller dice.Roller
}

// New returns a Source drawing from roller. A nil roller uses dice.DefaultRoller.
func New(roller dice.Roller) *Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Source{roller: roller}
}

// NewSeeded returns a Source backed by a deterministic roller.
func NewSeeded(seed int64) *Source {
	return New(NewSeededRoller(seed))
}

// Roll returns a value in [1, sides]. The engine only rolls fixed positive
// sizes, so a roller failure is a programming error and panics.
func (s *Source) Roll(sides int) int {
	v, err := s.roller.Roll(sides)
	if err != nil {
		panic(errors.Wrapf(err, "roll d%d", sides))
	}
	return v
}

// Range returns a value in [minValue, maxValue], both inclusive.
func (s *Source) Range(minValue, maxValue int) int {
	if maxValue <= minValue {
		return minValue
	}
	return minValue + s.Roll(maxValue-minValue+1) - 1
}

// Pick returns an index in [0, n).
func (s *Source) Pick(n int) int {
	return s.Roll(n) - 1
}

// OneIn reports true with probability 1/n.
func (s *Source) OneIn(n int) bool {
	return s.Roll(n) == 1
}

// Chance reports true with probability percent/100.
func (s *Source) Chance(percent int) bool {
	return s.Roll(100) <= percent
}

// Percent reports true with probability p/100 at hundredth-of-a-percent precision.
func (s *Source) Percent(p float64) bool {
	return s.Roll(100*100) <= int(math.Round(p*100))
}

// Float returns a value in [minValue, maxValue] in steps of 1/floatResolution.
// The highest roll maps to maxValue.
func (s *Source) Float(minValue, maxValue float64) float64 {
	steps := int(math.Round((maxValue - minValue) * floatResolution))
	if steps <= 0 {
		return minValue
	}
	r := s.Roll(steps+1) - 1
	if r == steps {
		return maxValue
	}
	return minValue + float64(r)/floatResolution
}

// SeededRoller is a dice.Roller over a seeded math/rand stream. It is not safe
// for concurrent use; each battle owns its own.
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller creates a roller whose sequence is fixed by seed.
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // game randomness
}

// Roll returns a value in [1, size].
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("dice size must be positive, got %d", size)
	}
	return r.rng.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgument(fmt.Sprintf("dice count must not be negative, got %d", count))
	}
	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}
