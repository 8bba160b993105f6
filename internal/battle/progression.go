package battle

import (
	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/errors"
)

// ExpReward is the experience earned for defeating c
func ExpReward(defeated *Combatant) int {
	return defeated.species.ExpYield * defeated.level / 7
}

// GainExp adds experience
func (c *Combatant) GainExp(amount int) {
	if amount > 0 {
		c.exp += amount
	}
}

// CheckForLevelUp raises the level by one when experience has reached the
// next level's threshold. Stats are recomputed and HP grows by the max HP
// gained. Call repeatedly to apply several levels.
func (c *Combatant) CheckForLevelUp() bool {
	if c.exp < c.species.ExpForLevel(c.level+1) {
		return false
	}

	oldMax := c.stats.MaxHP
	c.level++
	c.stats = ComputeStats(c.species, c.level)
	c.hp = min(c.stats.MaxHP, c.hp+c.stats.MaxHP-oldMax)
	return true
}

// LearnableMoveAtCurrentLevel returns the move the species learns at the
// current level, nil when there is none.
func (c *Combatant) LearnableMoveAtCurrentLevel() *monster.LearnableMove {
	for i := range c.species.LearnableMoves {
		if c.species.LearnableMoves[i].Level == c.level {
			return &c.species.LearnableMoves[i]
		}
	}
	return nil
}

// HasMove reports whether the combatant already knows move id
func (c *Combatant) HasMove(id string) bool {
	for _, m := range c.moves {
		if m.Def.ID == id {
			return true
		}
	}
	return false
}

// LearnMove adds a move with full PP. It fails when four moves are known.
func (c *Combatant) LearnMove(def *monster.Move) error {
	if len(c.moves) >= monster.MaxNumOfMoves {
		return errors.FailedPreconditionf("%s already knows %d moves", c.Name(), monster.MaxNumOfMoves)
	}
	if c.HasMove(def.ID) {
		return errors.AlreadyExistsf("%s already knows %s", c.Name(), def.Name)
	}
	c.moves = append(c.moves, newMoveSlot(def))
	return nil
}

// AwardExp grants the experience for defeating another combatant and applies
// any level ups and moves learned on the way, narrating each step.
func AwardExp(t *Turn, winner, defeated *Combatant) {
	gained := ExpReward(defeated)
	if gained <= 0 || winner.Fainted() {
		return
	}

	winner.GainExp(gained)
	t.Say(winner, "%s gained %d exp", winner.Name(), gained)

	for winner.CheckForLevelUp() {
		t.Say(winner, "%s grew to level %d", winner.Name(), winner.Level())

		learnable := winner.LearnableMoveAtCurrentLevel()
		if learnable == nil || winner.HasMove(learnable.MoveID) {
			continue
		}
		def, err := t.registry.catalog.GetMoveDefinition(learnable.MoveID)
		if err != nil {
			panic(errors.WrapWithCode(err, errors.CodeFailedPrecondition, "learnable move missing from catalog"))
		}
		if err := winner.LearnMove(def); err != nil {
			t.Say(winner, "%s is trying to learn %s but already knows four moves", winner.Name(), def.Name)
			continue
		}
		t.Say(winner, "%s learned %s", winner.Name(), def.Name)
	}
}
