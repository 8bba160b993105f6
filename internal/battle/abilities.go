package battle

import (
	"log/slog"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
)

// pinchBoost multiplies attack stats by 1.5 for moves of moveType while the
// attacker is at or below a third of its max HP.
func pinchBoost(moveType monster.Type) StatModifier {
	return func(value float64, attacker, _ *Combatant, move *monster.Move) float64 {
		if move.Type == moveType && attacker.HP() <= attacker.MaxHP()/3 {
			return value * 1.5
		}
		return value
	}
}

// flagPower multiplies base power for moves carrying flag.
func flagPower(flag monster.MoveFlag, factor float64) StatModifier {
	return func(value float64, _, _ *Combatant, move *monster.Move) float64 {
		if move.HasFlag(flag) {
			return value * factor
		}
		return value
	}
}

// guardStat strips external drops of one stat.
func guardStat(stat monster.Stat, message string) BoostHook {
	return func(t *Turn, boosts Boosts, target, source *Combatant) {
		if source == target {
			return
		}
		if delta, ok := boosts[stat]; ok && delta < 0 {
			delete(boosts, stat)
			t.Say(target, "%s%s", target.Name(), message)
		}
	}
}

// immuneTo vetoes one primary status. Only move-sourced attempts are announced.
func immuneTo(id monster.ConditionID, label string) StatusGate {
	return func(t *Turn, status monster.ConditionID, target *Combatant, effect monster.SourceTag) bool {
		if status != id {
			return true
		}
		if effect.IsMove() {
			t.Say(target, "%s's immune to %s", target.Name(), label)
		}
		return false
	}
}

// contactRetaliation gives a 1 in 3 chance to inflict status on an attacker
// that hit with a contact move.
func contactRetaliation(self monster.AbilityID, status monster.ConditionID) DamagingHitHook {
	return func(t *Turn, _ int, target, attacker *Combatant, move *monster.Move) {
		if !move.HasFlag(monster.FlagContact) || !t.Rand().OneIn(3) {
			return
		}
		slog.Debug("contact ability triggered",
			"ability", self.String(),
			"holder", target.ID(),
			"attacker", attacker.ID(),
			"status", status.String())
		attacker.SetStatus(t, status, monster.AbilitySource(self))
	}
}

// DefaultAbilities returns the built-in ability catalog. Each call returns
// fresh values.
func DefaultAbilities() map[monster.AbilityID]Ability {
	return map[monster.AbilityID]Ability{
		monster.AbilityOvergrow: {
			Name:          "Overgrow",
			Description:   "Powers up Grass-type moves when HP is low.",
			OnModifyAtk:   pinchBoost(monster.TypeGrass),
			OnModifySpAtk: pinchBoost(monster.TypeGrass),
		},
		monster.AbilityBlaze: {
			Name:          "Blaze",
			Description:   "Powers up Fire-type moves when HP is low.",
			OnModifyAtk:   pinchBoost(monster.TypeFire),
			OnModifySpAtk: pinchBoost(monster.TypeFire),
		},
		monster.AbilityTorrent: {
			Name:          "Torrent",
			Description:   "Powers up Water-type moves when HP is low.",
			OnModifyAtk:   pinchBoost(monster.TypeWater),
			OnModifySpAtk: pinchBoost(monster.TypeWater),
		},
		monster.AbilitySwarm: {
			Name:          "Swarm",
			Description:   "Powers up Bug-type moves when HP is low.",
			OnModifyAtk:   pinchBoost(monster.TypeBug),
			OnModifySpAtk: pinchBoost(monster.TypeBug),
		},
		monster.AbilityCompoundEyes: {
			Name:        "Compound Eyes",
			Description: "Boosts the accuracy of moves.",
			OnModifyAcc: func(value float64, _, _ *Combatant, _ *monster.Move) float64 {
				return value * 1.3
			},
		},
		monster.AbilityKeenEye: {
			Name:        "Keen Eye",
			Description: "Prevents other monsters from lowering its accuracy.",
			OnBoost:     guardStat(monster.StatAccuracy, "'s accuracy cannot be decreased due to its keen eye"),
		},
		monster.AbilityHyperCutter: {
			Name:        "Hyper Cutter",
			Description: "Prevents other monsters from lowering its attack.",
			OnBoost:     guardStat(monster.StatAttack, "'s attack cannot be decreased"),
		},
		monster.AbilityClearBody: {
			Name:        "Clear Body",
			Description: "Prevents other monsters from lowering its stats.",
			OnBoost: func(t *Turn, boosts Boosts, target, source *Combatant) {
				if source == target {
					return
				}
				blocked := false
				for stat, delta := range boosts {
					if delta < 0 {
						delete(boosts, stat)
						blocked = true
					}
				}
				if blocked {
					t.Say(target, "%s's clear body prevents stat loss", target.Name())
				}
			},
		},
		monster.AbilityLimber: {
			Name:           "Limber",
			Description:    "Prevents paralysis.",
			OnTrySetStatus: immuneTo(monster.ConditionParalysis, "paralysis"),
		},
		monster.AbilityVitalSpirit: {
			Name:           "Vital Spirit",
			Description:    "Prevents sleep.",
			OnTrySetStatus: immuneTo(monster.ConditionSleep, "sleep"),
		},
		monster.AbilityImmunity: {
			Name:           "Immunity",
			Description:    "Prevents poisoning.",
			OnTrySetStatus: immuneTo(monster.ConditionPoison, "poison"),
		},
		monster.AbilityWaterVeil: {
			Name:           "Water Veil",
			Description:    "Prevents burns.",
			OnTrySetStatus: immuneTo(monster.ConditionBurn, "burn"),
		},
		monster.AbilityInsomnia: {
			Name:           "Insomnia",
			Description:    "Prevents sleep.",
			OnTrySetStatus: immuneTo(monster.ConditionSleep, "sleep"),
		},
		monster.AbilityOwnTempo: {
			Name:        "Own Tempo",
			Description: "Prevents confusion.",
			OnTrySetVolatile: func(t *Turn, id monster.ConditionID, target *Combatant, _ monster.SourceTag) bool {
				if id != monster.ConditionConfusion {
					return true
				}
				t.Say(target, "%s's immune to confusion", target.Name())
				return false
			},
		},
		monster.AbilityIronFist: {
			Name:        "Iron Fist",
			Description: "Powers up punching moves.",
			OnBasePower: flagPower(monster.FlagPunch, 1.2),
		},
		monster.AbilityStrongJaw: {
			Name:        "Strong Jaw",
			Description: "Powers up biting moves.",
			OnBasePower: flagPower(monster.FlagBite, 1.5),
		},
		monster.AbilityToughClaws: {
			Name:        "Tough Claws",
			Description: "Powers up moves that make direct contact.",
			OnBasePower: flagPower(monster.FlagContact, 1.3),
		},
		monster.AbilityMegaLauncher: {
			Name:        "Mega Launcher",
			Description: "Powers up aura and pulse moves.",
			OnBasePower: flagPower(monster.FlagPulse, 1.5),
		},
		monster.AbilityStatic: {
			Name:          "Static",
			Description:   "Contact with the monster may cause paralysis.",
			OnDamagingHit: contactRetaliation(monster.AbilityStatic, monster.ConditionParalysis),
		},
		monster.AbilityPoisonPoint: {
			Name:          "Poison Point",
			Description:   "Contact with the monster may poison the attacker.",
			OnDamagingHit: contactRetaliation(monster.AbilityPoisonPoint, monster.ConditionPoison),
		},
		monster.AbilityFlameBody: {
			Name:          "Flame Body",
			Description:   "Contact with the monster may burn the attacker.",
			OnDamagingHit: contactRetaliation(monster.AbilityFlameBody, monster.ConditionBurn),
		},
	}
}
