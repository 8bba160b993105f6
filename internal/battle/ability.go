package battle

import (
	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
)

// StatModifier adjusts a stat, accuracy or base power value during a hit.
type StatModifier func(value float64, attacker, defender *Combatant, move *monster.Move) float64

// BoostHook inspects pending stage deltas on target before they are applied.
// It may delete entries. source is the combatant causing the change.
type BoostHook func(t *Turn, boosts Boosts, target, source *Combatant)

// StatusGate decides whether a status may be installed on target.
type StatusGate func(t *Turn, id monster.ConditionID, target *Combatant, effect monster.SourceTag) bool

// DamagingHitHook fires on the victim after it takes damage greater than zero.
type DamagingHitHook func(t *Turn, damage int, target, attacker *Combatant, move *monster.Move)

// Ability is an immutable bundle of optional hooks
type Ability struct {
	ID          monster.AbilityID
	Name        string
	Description string

	OnModifyAtk   StatModifier
	OnModifyDef   StatModifier
	OnModifySpAtk StatModifier
	OnModifySpDef StatModifier
	OnModifySpd   StatModifier
	OnModifyAcc   StatModifier
	OnBasePower   StatModifier

	OnBoost          BoostHook
	OnTrySetStatus   StatusGate
	OnTrySetVolatile StatusGate
	OnDamagingHit    DamagingHitHook
}

// Source tags effects produced by this ability
func (a *Ability) Source() monster.SourceTag {
	return monster.AbilitySource(a.ID)
}

func applyModifier(hook StatModifier, value float64, attacker, defender *Combatant, move *monster.Move) float64 {
	if hook == nil {
		return value
	}
	return hook(value, attacker, defender, move)
}

// Boosts is a pending set of stage deltas keyed by stat.
type Boosts map[monster.Stat]int

// BoostsFrom collects a move's stat boosts, summing repeated stats
func BoostsFrom(list []monster.StatBoost) Boosts {
	boosts := make(Boosts, len(list))
	for _, b := range list {
		boosts[b.Stat] += b.Boost
	}
	return boosts
}
