package battle

import (
	"log/slog"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
)

// MoveResult summarizes one move use
type MoveResult struct {
	// Blocked is true when a pre-move status gate cancelled the move
	Blocked bool
	// Missed is true when the accuracy roll failed
	Missed bool
	Hits   []DamageDetails
}

// TotalDamage sums damage over all hits
func (r MoveResult) TotalDamage() int {
	total := 0
	for _, h := range r.Hits {
		total += h.Damage
	}
	return total
}

// ResolveMove runs one use of slot by attacker against defender.
//
// Steps, in order: status gates, PP cost, hit check, per-hit damage, primary
// effect, secondary effects.
func ResolveMove(t *Turn, attacker, defender *Combatant, slot *MoveSlot) MoveResult {
	var result MoveResult
	move := slot.Def

	if !attacker.OnBeforeMove(t) {
		result.Blocked = true
		return result
	}

	slot.Spend()
	t.Say(attacker, "%s used %s", attacker.Name(), move.Name)

	if !CheckHit(t, move, attacker, defender) {
		result.Missed = true
		t.Say(attacker, "%s's attack missed", attacker.Name())
		return result
	}

	if move.IsDamaging() {
		hits := move.HitTimes(t.Rand())
		for i := 0; i < hits; i++ {
			details := defender.TakeDamage(t, move, attacker)
			result.Hits = append(result.Hits, details)
			narrateDamage(t, defender, details)
			if defender.Fainted() {
				break
			}
		}
		if len(result.Hits) > 1 {
			t.Say(attacker, "Hit %d times!", len(result.Hits))
		}
	}

	if !move.Effects.IsEmpty() {
		applyEffects(t, move.Effects, move.Source(), attacker, defender, move.Target)
	}

	for _, secondary := range move.Secondaries {
		if !t.Rand().Chance(secondary.Chance) {
			continue
		}
		applyEffects(t, secondary.MoveEffects, move.Source(), attacker, defender, secondary.Target)
	}

	slog.Debug("move resolved",
		"attacker", attacker.ID(),
		"defender", defender.ID(),
		"move", move.ID,
		"hits", len(result.Hits),
		"damage", result.TotalDamage())

	return result
}

// CheckHit decides whether move connects. Status moves and always-hit moves
// bypass the roll.
func CheckHit(t *Turn, move *monster.Move, attacker, defender *Combatant) bool {
	if move.AlwaysHits || !move.IsDamaging() {
		return true
	}

	accuracy := float64(move.Accuracy)
	accuracy *= AccuracyMultiplier(attacker.Stage(monster.StatAccuracy))
	accuracy /= AccuracyMultiplier(defender.Stage(monster.StatEvasion))
	accuracy = applyModifier(attacker.ability.OnModifyAcc, accuracy, attacker, defender, move)

	return float64(t.Rand().Roll(100)) <= accuracy
}

// applyEffects lands one effect payload on the combatant selected by target.
// A fainted recipient receives nothing.
func applyEffects(
	t *Turn,
	effects monster.MoveEffects,
	source monster.SourceTag,
	attacker, defender *Combatant,
	target monster.MoveTarget,
) {
	recipient := defender
	if target == monster.TargetSelf {
		recipient = attacker
	}
	if recipient.Fainted() {
		return
	}

	if len(effects.Boosts) > 0 {
		recipient.ApplyBoosts(t, BoostsFrom(effects.Boosts), attacker)
	}
	if effects.Status != monster.ConditionNone {
		recipient.SetStatus(t, effects.Status, source)
	}
	if effects.VolatileStatus != monster.ConditionNone {
		recipient.SetVolatileStatus(t, effects.VolatileStatus, source)
	}
	if effects.Weather != monster.ConditionNone {
		t.Field().SetWeather(t, effects.Weather)
	}
}

func narrateDamage(t *Turn, defender *Combatant, d DamageDetails) {
	if d.Critical > 1 {
		t.Say(defender, "A critical hit!")
	}
	switch {
	case d.TypeEffectiveness > 1:
		t.Say(defender, "It's super effective!")
	case d.TypeEffectiveness == 0:
		t.Say(defender, "It doesn't affect %s", defender.Name())
	case d.TypeEffectiveness < 1:
		t.Say(defender, "It's not very effective!")
	}
}
