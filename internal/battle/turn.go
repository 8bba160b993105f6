package battle

import (
	"fmt"

	"github.com/KirkDiggler/monster-battle/internal/pkg/rng"
)

// Turn is the scope of one engine operation. It carries the randomness
// source, the registry and the field, and collects the events produced.
type Turn struct {
	rand     *rng.Source
	registry *Registry
	field    *Field
	events   []Event
}

// NewTurn creates a turn scope. A nil field is treated as clear skies.
func NewTurn(registry *Registry, rand *rng.Source, field *Field) *Turn {
	if field == nil {
		field = NewField(0)
	}
	return &Turn{
		rand:     rand,
		registry: registry,
		field:    field,
	}
}

// Rand returns the randomness source
func (t *Turn) Rand() *rng.Source {
	return t.rand
}

// Field returns the battle field
func (t *Turn) Field() *Field {
	return t.field
}

// Events returns the events collected so far
func (t *Turn) Events() []Event {
	return t.events
}

// Say appends narration attributed to c, which may be nil.
func (t *Turn) Say(c *Combatant, format string, args ...any) {
	t.emit(Event{Kind: EventMessage, Message: fmt.Sprintf(format, args...)}, c)
}

func (t *Turn) emit(e Event, c *Combatant) {
	if c != nil {
		e.CombatantID = c.ID()
	}
	t.events = append(t.events, e)
}
