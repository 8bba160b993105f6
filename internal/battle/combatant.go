package battle

import (
	"log/slog"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/pkg/rng"
)

// EntityType is the rpg-toolkit entity type of a combatant
const EntityType = "monster"

// MoveSlot is a learned move and its remaining uses
type MoveSlot struct {
	Def *monster.Move
	PP  int
}

func newMoveSlot(def *monster.Move) *MoveSlot {
	return &MoveSlot{Def: def, PP: def.PP}
}

// Spend uses one PP, never going below zero
func (m *MoveSlot) Spend() {
	if m.PP > 0 {
		m.PP--
	}
}

// Combatant is the mutable runtime state of one monster in battle.
type Combatant struct {
	id      string
	species *monster.Species
	level   int
	exp     int
	hp      int
	stats   Stats
	stages  [len(stageIndex)]int
	ability *Ability
	moves   []*MoveSlot

	status   *Condition
	volatile *Condition

	// StatusTime counts down the primary status (sleep)
	StatusTime int
	// VolatileStatusTime counts down the volatile status (confusion)
	VolatileStatusTime int
}

// stageIndex maps each staged stat to its slot in Combatant.stages
var stageIndex = [...]monster.Stat{
	monster.StatAttack, monster.StatDefense, monster.StatSpAttack, monster.StatSpDefense,
	monster.StatSpeed, monster.StatAccuracy, monster.StatEvasion,
}

// NewCombatant creates a fresh combatant of species at level, with full HP,
// the species' default ability and up to four of its earliest learnable moves.
func (r *Registry) NewCombatant(id, speciesName string, level int) (*Combatant, error) {
	if id == "" {
		return nil, errors.InvalidArgument("combatant id is required")
	}
	if level < 1 {
		return nil, errors.InvalidArgumentf("level must be at least 1, got %d", level)
	}

	species, err := r.catalog.GetSpecies(speciesName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load species %s", speciesName)
	}

	ability, err := r.Ability(species.Ability)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition,
			"species "+species.Name+" has an unregistered ability")
	}

	c := &Combatant{
		id:      id,
		species: species,
		level:   level,
		exp:     species.ExpForLevel(level),
		ability: ability,
	}

	for _, learnable := range species.LearnableMoves {
		if learnable.Level <= level {
			def, err := r.catalog.GetMoveDefinition(learnable.MoveID)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to load move %s for %s", learnable.MoveID, species.Name)
			}
			c.moves = append(c.moves, newMoveSlot(def))
		}
		if len(c.moves) >= monster.MaxNumOfMoves {
			break
		}
	}

	c.stats = ComputeStats(species, level)
	c.hp = c.stats.MaxHP

	slog.Debug("combatant created",
		"combatant_id", id,
		"species", species.Name,
		"level", level,
		"max_hp", c.stats.MaxHP,
		"moves", len(c.moves))

	return c, nil
}

// GetID implements core.Entity
func (c *Combatant) GetID() string {
	return c.id
}

// GetType implements core.Entity
func (c *Combatant) GetType() string {
	return EntityType
}

// ID returns the combatant id
func (c *Combatant) ID() string { return c.id }

// Name returns the species display name
func (c *Combatant) Name() string { return c.species.Name }

// Species returns the species definition
func (c *Combatant) Species() *monster.Species { return c.species }

// Level returns the current level
func (c *Combatant) Level() int { return c.level }

// Exp returns total experience
func (c *Combatant) Exp() int { return c.exp }

// HP returns current hit points
func (c *Combatant) HP() int { return c.hp }

// MaxHP returns maximum hit points
func (c *Combatant) MaxHP() int { return c.stats.MaxHP }

// Fainted reports whether HP has reached zero
func (c *Combatant) Fainted() bool { return c.hp <= 0 }

// Ability returns the assigned ability
func (c *Combatant) Ability() *Ability { return c.ability }

// Moves returns the learned moves
func (c *Combatant) Moves() []*MoveSlot { return c.moves }

// Status returns the primary status, nil when healthy
func (c *Combatant) Status() *Condition { return c.status }

// VolatileStatus returns the volatile status, nil when none
func (c *Combatant) VolatileStatus() *Condition { return c.volatile }

// BaseStats returns the level-derived stats before stages
func (c *Combatant) BaseStats() Stats { return c.stats }

// Stage returns the current stage of stat
func (c *Combatant) Stage(stat monster.Stat) int {
	if int(stat) < 0 || int(stat) >= len(c.stages) {
		return 0
	}
	return c.stages[stat]
}

// Stat returns the staged value of one of the five base stats
func (c *Combatant) Stat(stat monster.Stat) int {
	return EffectiveStat(c.stats.Get(stat), c.Stage(stat))
}

// Attack returns the staged attack
func (c *Combatant) Attack() int { return c.Stat(monster.StatAttack) }

// Defense returns the staged defense
func (c *Combatant) Defense() int { return c.Stat(monster.StatDefense) }

// SpAttack returns the staged special attack
func (c *Combatant) SpAttack() int { return c.Stat(monster.StatSpAttack) }

// SpDefense returns the staged special defense
func (c *Combatant) SpDefense() int { return c.Stat(monster.StatSpDefense) }

// Speed returns the staged speed
func (c *Combatant) Speed() int { return c.Stat(monster.StatSpeed) }

// UpdateHP subtracts damage (negative heals) and clamps to [0, MaxHP]
func (c *Combatant) UpdateHP(t *Turn, damage int) {
	c.hp = max(0, min(c.stats.MaxHP, c.hp-damage))
	t.emit(Event{Kind: EventHP, HP: c.hp}, c)
}

// ApplyBoosts runs the pending deltas through this combatant's OnBoost hook,
// then adds what remains to the stored stages, clamped to [-6, 6].
func (c *Combatant) ApplyBoosts(t *Turn, boosts Boosts, source *Combatant) {
	if c.ability.OnBoost != nil {
		c.ability.OnBoost(t, boosts, c, source)
	}

	for _, stat := range stageIndex {
		delta, ok := boosts[stat]
		if !ok || delta == 0 {
			continue
		}

		stage := ClampStage(c.stages[stat] + delta)
		if stage == c.stages[stat] {
			slog.Debug("stat stage at limit", "combatant_id", c.id, "stat", stat.String(), "stage", stage)
			continue
		}

		c.stages[stat] = stage
		if delta > 0 {
			t.Say(c, "%s's %s rose!", c.Name(), stat)
		} else {
			t.Say(c, "%s's %s fell!", c.Name(), stat)
		}
		slog.Debug("stat stage changed", "combatant_id", c.id, "stat", stat.String(), "stage", c.stages[stat])
	}
}

// ResetStages sets every stage back to zero
func (c *Combatant) ResetStages() {
	c.stages = [len(stageIndex)]int{}
}

// SetStatus installs a primary status. It is a no-op when a status is already
// present, id is not a primary status, or the ability vetoes it.
func (c *Combatant) SetStatus(t *Turn, id monster.ConditionID, effect monster.SourceTag) {
	if c.status != nil || !id.IsPrimary() {
		return
	}
	if c.ability.OnTrySetStatus != nil && !c.ability.OnTrySetStatus(t, id, c, effect) {
		return
	}

	c.status = t.registry.mustCondition(id)
	if c.status.OnStart != nil {
		c.status.OnStart(t, c)
	}
	t.emit(Event{Kind: EventStatus}, c)
	t.Say(c, "%s %s", c.Name(), c.status.StartMessage)
}

// CureStatus clears the primary status
func (c *Combatant) CureStatus(t *Turn) {
	c.status = nil
	c.StatusTime = 0
	t.emit(Event{Kind: EventStatus}, c)
}

// SetVolatileStatus installs a volatile status with the same rules as SetStatus
func (c *Combatant) SetVolatileStatus(t *Turn, id monster.ConditionID, effect monster.SourceTag) {
	if c.volatile != nil || !id.IsVolatile() {
		return
	}
	if c.ability.OnTrySetVolatile != nil && !c.ability.OnTrySetVolatile(t, id, c, effect) {
		return
	}

	c.volatile = t.registry.mustCondition(id)
	if c.volatile.OnStart != nil {
		c.volatile.OnStart(t, c)
	}
	t.emit(Event{Kind: EventStatus}, c)
	t.Say(c, "%s %s", c.Name(), c.volatile.StartMessage)
}

// CureVolatileStatus clears the volatile status
func (c *Combatant) CureVolatileStatus(t *Turn) {
	c.volatile = nil
	c.VolatileStatusTime = 0
	t.emit(Event{Kind: EventStatus}, c)
}

// OnBeforeMove runs the primary then volatile gate. Both always run.
func (c *Combatant) OnBeforeMove(t *Turn) bool {
	canMove := true

	if c.status != nil && c.status.OnBeforeMove != nil {
		if !c.status.OnBeforeMove(t, c) {
			canMove = false
		}
	}
	if c.volatile != nil && c.volatile.OnBeforeMove != nil {
		if !c.volatile.OnBeforeMove(t, c) {
			canMove = false
		}
	}

	return canMove
}

// OnAfterTurn ticks the primary then volatile status
func (c *Combatant) OnAfterTurn(t *Turn) {
	if c.status != nil && c.status.OnAfterTurn != nil {
		c.status.OnAfterTurn(t, c)
	}
	if c.volatile != nil && c.volatile.OnAfterTurn != nil {
		c.volatile.OnAfterTurn(t, c)
	}
}

// OnBattleOver drops the volatile status and resets stages. The primary
// status persists.
func (c *Combatant) OnBattleOver() {
	c.volatile = nil
	c.VolatileStatusTime = 0
	c.ResetStages()
}

// RandomMove picks any move with PP left, nil when none remain
func (c *Combatant) RandomMove(r *rng.Source) *MoveSlot {
	var usable []*MoveSlot
	for _, m := range c.moves {
		if m.PP > 0 {
			usable = append(usable, m)
		}
	}
	if len(usable) == 0 {
		return nil
	}
	return usable[r.Pick(len(usable))]
}

func (c *Combatant) modifyAttack(value float64, defender *Combatant, move *monster.Move, special bool) float64 {
	if special {
		return applyModifier(c.ability.OnModifySpAtk, value, c, defender, move)
	}
	return applyModifier(c.ability.OnModifyAtk, value, c, defender, move)
}

func (c *Combatant) modifyDefense(value float64, attacker *Combatant, move *monster.Move, special bool) float64 {
	if special {
		return applyModifier(c.ability.OnModifySpDef, value, attacker, c, move)
	}
	return applyModifier(c.ability.OnModifyDef, value, attacker, c, move)
}

// EffectiveSpeed is the staged speed after the ability's speed hook, used for
// turn order.
func (c *Combatant) EffectiveSpeed(opponent *Combatant, move *monster.Move) float64 {
	return applyModifier(c.ability.OnModifySpd, float64(c.Speed()), c, opponent, move)
}
