package battle

import (
	engine "github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
)

// snapshot copies the public state of a session while it is locked
func snapshot(session *engine.Session) *BattleSnapshot {
	out := &BattleSnapshot{
		BattleID: session.ID(),
		Turn:     session.TurnNumber(),
		Outcome:  session.Outcome(),
		Ended:    session.Ended(),
	}

	session.Inspect(func(player, opponent *engine.Combatant, field *engine.Field) {
		out.Player = combatantSnapshot(player)
		out.Opponent = combatantSnapshot(opponent)
		if w := field.Weather(); w != nil {
			out.Weather = w.ID.String()
			out.WeatherTurns = field.RemainingTurns()
		}
	})

	return out
}

func combatantSnapshot(c *engine.Combatant) *CombatantSnapshot {
	snap := &CombatantSnapshot{
		ID:      c.ID(),
		Species: c.Name(),
		Level:   c.Level(),
		Exp:     c.Exp(),
		HP:      c.HP(),
		MaxHP:   c.MaxHP(),
		Ability: c.Ability().ID.String(),
		Stages:  make(map[string]int),
		Moves:   make([]MoveSnapshot, 0, len(c.Moves())),
	}
	if st := c.Status(); st != nil {
		snap.Status = st.ID.String()
	}
	if vs := c.VolatileStatus(); vs != nil {
		snap.VolatileStatus = vs.ID.String()
	}
	for _, stat := range monster.StageStats {
		if stage := c.Stage(stat); stage != 0 {
			key, _ := stat.MarshalText()
			snap.Stages[string(key)] = stage
		}
	}
	for _, m := range c.Moves() {
		snap.Moves = append(snap.Moves, MoveSnapshot{
			ID:    m.Def.ID,
			Name:  m.Def.Name,
			PP:    m.PP,
			MaxPP: m.Def.PP,
		})
	}
	return snap
}
