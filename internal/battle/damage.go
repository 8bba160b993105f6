package battle

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
)

// Damage formula constants
const (
	critChancePercent = 6.25
	critMultiplier    = 2.0
	minVariance       = 0.85
	maxVariance       = 1.0
)

// DamageDetails describes one hit
type DamageDetails struct {
	Damage            int
	Critical          float64
	TypeEffectiveness float64
	Fainted           bool
}

// TypeEffectiveness is the product of the defender's two type matchups
func TypeEffectiveness(move *monster.Move, defender *monster.Species) float64 {
	return monster.GetEffectiveness(move.Type, defender.Type1) *
		monster.GetEffectiveness(move.Type, defender.Type2)
}

// TakeDamage computes one hit of move from attacker against c and applies it.
//
// Order: critical roll, type effectiveness, weather modifier, attack and
// defense through each side's ability, base power through the attacker's
// ability, then the formula with a [0.85, 1.0] random factor.
func (c *Combatant) TakeDamage(t *Turn, move *monster.Move, attacker *Combatant) DamageDetails {
	critical := 1.0
	if t.Rand().Percent(critChancePercent) {
		critical = critMultiplier
	}

	typeMod := TypeEffectiveness(move, c.species)
	weatherMod := t.Field().DamageModifier(attacker, c, move)

	special := move.Category == monster.CategorySpecial
	var attack, defense float64
	if special {
		attack = float64(attacker.SpAttack())
		defense = float64(c.SpDefense())
	} else {
		attack = float64(attacker.Attack())
		defense = float64(c.Defense())
	}
	attack = attacker.modifyAttack(attack, c, move, special)
	defense = c.modifyDefense(defense, attacker, move, special)

	basePower := math.Floor(applyModifier(attacker.ability.OnBasePower, float64(move.Power), attacker, c, move))

	modifiers := t.Rand().Float(minVariance, maxVariance) * typeMod * critical * weatherMod
	a := float64(2*attacker.level+10) / 250
	d := a*basePower*(attack/defense) + 2
	damage := int(math.Floor(d * modifiers))

	c.UpdateHP(t, damage)

	slog.Debug("damage dealt",
		"attacker", attacker.id,
		"defender", c.id,
		"move", move.ID,
		"damage", damage,
		"critical", critical,
		"type_effectiveness", typeMod,
		"weather", weatherMod)

	if damage > 0 && c.ability.OnDamagingHit != nil {
		c.ability.OnDamagingHit(t, damage, c, attacker, move)
	}

	return DamageDetails{
		Damage:            damage,
		Critical:          critical,
		TypeEffectiveness: typeMod,
		Fainted:           c.Fainted(),
	}
}
