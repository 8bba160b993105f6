package battle

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
)

// weatherBoost returns a modifier that favors one type and weakens another.
func weatherBoost(strong, weak monster.Type) DamageModifier {
	return func(_, _ *Combatant, move *monster.Move) float64 {
		switch move.Type {
		case strong:
			return 1.5
		case weak:
			return 0.5
		default:
			return 1
		}
	}
}

// DefaultConditions returns the built-in condition catalog. Each call returns
// fresh values.
func DefaultConditions() map[monster.ConditionID]Condition {
	return map[monster.ConditionID]Condition{
		monster.ConditionPoison: {
			Name:         "Poison",
			StartMessage: "has been poisoned",
			OnAfterTurn: func(t *Turn, c *Combatant) {
				c.UpdateHP(t, c.MaxHP()/8)
				t.Say(c, "%s hurt itself due to poison", c.Name())
			},
		},
		monster.ConditionBurn: {
			Name:         "Burn",
			StartMessage: "has been burned",
			OnAfterTurn: func(t *Turn, c *Combatant) {
				c.UpdateHP(t, c.MaxHP()/16)
				t.Say(c, "%s hurt itself due to burn", c.Name())
			},
		},
		monster.ConditionParalysis: {
			Name:         "Paralyzed",
			StartMessage: "has been paralyzed",
			OnBeforeMove: func(t *Turn, c *Combatant) bool {
				if t.Rand().OneIn(4) {
					t.Say(c, "%s's paralyzed and can't move", c.Name())
					return false
				}
				return true
			},
		},
		monster.ConditionFreeze: {
			Name:         "Freeze",
			StartMessage: "has been frozen",
			OnBeforeMove: func(t *Turn, c *Combatant) bool {
				if t.Rand().OneIn(4) {
					c.CureStatus(t)
					t.Say(c, "%s is not frozen anymore", c.Name())
					return true
				}
				return false
			},
		},
		monster.ConditionSleep: {
			Name:         "Sleep",
			StartMessage: "has fallen asleep",
			OnStart: func(t *Turn, c *Combatant) {
				c.StatusTime = t.Rand().Range(1, 3)
				slog.Debug("sleep duration rolled", "combatant_id", c.ID(), "turns", c.StatusTime)
			},
			OnBeforeMove: func(t *Turn, c *Combatant) bool {
				if c.StatusTime <= 0 {
					c.CureStatus(t)
					t.Say(c, "%s woke up!", c.Name())
					return true
				}
				c.StatusTime--
				t.Say(c, "%s is sleeping", c.Name())
				return false
			},
		},
		monster.ConditionConfusion: {
			Name:         "Confusion",
			StartMessage: "has been confused",
			OnStart: func(t *Turn, c *Combatant) {
				c.VolatileStatusTime = t.Rand().Range(1, 4)
				slog.Debug("confusion duration rolled", "combatant_id", c.ID(), "turns", c.VolatileStatusTime)
			},
			OnBeforeMove: func(t *Turn, c *Combatant) bool {
				if c.VolatileStatusTime <= 0 {
					c.CureVolatileStatus(t)
					t.Say(c, "%s kicked out of confusion!", c.Name())
					return true
				}
				c.VolatileStatusTime--
				if t.Rand().OneIn(2) {
					return true
				}
				t.Say(c, "%s is confused", c.Name())
				c.UpdateHP(t, c.MaxHP()/8)
				t.Say(c, "It hurt itself due to confusion")
				return false
			},
		},
		monster.ConditionSunny: {
			Name:           "Harsh Sunlight",
			StartMessage:   "The weather has changed to Harsh Sunlight",
			EffectMessage:  "The sunlight is harsh",
			OnDamageModify: weatherBoost(monster.TypeFire, monster.TypeWater),
		},
		monster.ConditionRain: {
			Name:           "Heavy Rain",
			StartMessage:   "It started raining heavily",
			EffectMessage:  "It's raining heavily",
			OnDamageModify: weatherBoost(monster.TypeWater, monster.TypeFire),
		},
		monster.ConditionSandstorm: {
			Name:          "Sandstorm",
			StartMessage:  "A sandstorm is raging",
			EffectMessage: "The sandstorm rages",
			OnWeather: func(t *Turn, c *Combatant) {
				c.UpdateHP(t, int(math.RoundToEven(float64(c.MaxHP())/16)))
				t.Say(c, "%s has been buffeted by sandstorm", c.Name())
			},
		},
	}
}
