package testutils

import (
	"sync"

	"github.com/KirkDiggler/monster-battle/internal/errors"
)

// MaxRoller always rolls the highest face. Through rng.Source this means no
// critical hits, a 1.0 damage variance, every accuracy check passing and no
// one-in-N effects triggering.
type MaxRoller struct{}

// Roll returns size
func (MaxRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("dice size must be positive, got %d", size)
	}
	return size, nil
}

// RollN returns count copies of size
func (r MaxRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ScriptedRoller returns queued values in order, clamped to [1, size].
// Once the script runs out it rolls the highest face.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	sizes  []int
}

// NewScriptedRoller queues values
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Push queues more values
func (r *ScriptedRoller) Push(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, values...)
}

// Sizes returns the die sizes requested so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}

// Remaining returns how many scripted values are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("dice size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	if len(r.values) == 0 {
		return size, nil
	}
	v := r.values[0]
	r.values = r.values[1:]
	return max(1, min(size, v)), nil
}

// RollN rolls count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
