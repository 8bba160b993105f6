package battle

import (
	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
)

// ConditionHook runs against a single combatant
type ConditionHook func(t *Turn, c *Combatant)

// MoveGate decides whether c may act this turn
type MoveGate func(t *Turn, c *Combatant) bool

// DamageModifier returns a flat multiplier for a hit
type DamageModifier func(attacker, defender *Combatant, move *monster.Move) float64

// Condition is an immutable bundle of optional hooks describing a status,
// volatile status or weather.
type Condition struct {
	ID            monster.ConditionID
	Name          string
	Description   string
	StartMessage  string
	EffectMessage string

	// OnStart fires once when the condition is installed on a combatant
	OnStart ConditionHook
	// OnBeforeMove gates the holder's action; false cancels the move
	OnBeforeMove MoveGate
	// OnAfterTurn fires at end of turn for the holder
	OnAfterTurn ConditionHook
	// OnDamageModify is consulted for weather only
	OnDamageModify DamageModifier
	// OnWeather fires at end of turn for every combatant while the weather is active
	OnWeather ConditionHook
}

// Source tags effects produced by this condition
func (c *Condition) Source() monster.SourceTag {
	return monster.ConditionSource(c.ID)
}

// StatusBonus is the capture weight of a primary status: 2 for sleep and
// freeze, 1.5 for paralysis, poison and burn, 1 otherwise.
func StatusBonus(c *Condition) float64 {
	if c == nil {
		return 1
	}
	switch c.ID {
	case monster.ConditionSleep, monster.ConditionFreeze:
		return 2
	case monster.ConditionParalysis, monster.ConditionPoison, monster.ConditionBurn:
		return 1.5
	default:
		return 1
	}
}
