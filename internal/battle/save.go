package battle

import (
	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/errors"
)

// MoveSaveData is a persisted move slot
type MoveSaveData struct {
	MoveID string `json:"move_id"`
	PP     int    `json:"pp"`
}

// SaveData is the persisted form of a combatant. Derived stats are not saved.
type SaveData struct {
	Species  string               `json:"species"`
	HP       int                  `json:"hp"`
	Level    int                  `json:"level"`
	Exp      int                  `json:"exp"`
	StatusID *monster.ConditionID `json:"status_id,omitempty"`
	Moves    []MoveSaveData       `json:"moves"`
}

// SaveData captures the combatant's persistent state
func (c *Combatant) SaveData() *SaveData {
	data := &SaveData{
		Species: c.species.Name,
		HP:      c.hp,
		Level:   c.level,
		Exp:     c.exp,
		Moves:   make([]MoveSaveData, len(c.moves)),
	}
	if c.status != nil {
		id := c.status.ID
		data.StatusID = &id
	}
	for i, m := range c.moves {
		data.Moves[i] = MoveSaveData{MoveID: m.Def.ID, PP: m.PP}
	}
	return data
}

// RestoreCombatant rebuilds a combatant from save data. Stats are recomputed
// from species and level, HP and PP are clamped to their maximums, and the
// saved status is reinstated without running its start hook.
func (r *Registry) RestoreCombatant(id string, data *SaveData) (*Combatant, error) {
	if data == nil {
		return nil, errors.InvalidArgument("save data is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("species", data.Species, vb)
	errors.ValidateRequired("id", id, vb)
	if data.Level < 1 {
		vb.Fieldf("level", "must be at least 1, got %d", data.Level)
	}
	errors.ValidateNonNegative("hp", data.HP, vb)
	if len(data.Moves) > monster.MaxNumOfMoves {
		vb.Fieldf("moves", "must hold at most %d moves", monster.MaxNumOfMoves)
	}
	if data.StatusID != nil && *data.StatusID != monster.ConditionNone && !data.StatusID.IsPrimary() {
		vb.Fieldf("status_id", "%s is not a primary status", *data.StatusID)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	species, err := r.catalog.GetSpecies(data.Species)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load species %s", data.Species)
	}
	ability, err := r.Ability(species.Ability)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition,
			"species "+species.Name+" has an unregistered ability")
	}

	c := &Combatant{
		id:      id,
		species: species,
		level:   data.Level,
		exp:     data.Exp,
		ability: ability,
		stats:   ComputeStats(species, data.Level),
	}
	c.hp = min(data.HP, c.stats.MaxHP)

	if data.StatusID != nil && *data.StatusID != monster.ConditionNone {
		status, err := r.Condition(*data.StatusID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to restore status")
		}
		c.status = status
	}

	for _, saved := range data.Moves {
		def, err := r.catalog.GetMoveDefinition(saved.MoveID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load move %s", saved.MoveID)
		}
		c.moves = append(c.moves, &MoveSlot{Def: def, PP: max(0, min(saved.PP, def.PP))})
	}

	return c, nil
}
