package battle

import "github.com/KirkDiggler/rpg-toolkit/events"

// EventKind classifies an Event
type EventKind string

// Event kinds
const (
	// EventMessage is a line of narration
	EventMessage EventKind = "message"
	// EventHP reports a combatant's hit points after a change
	EventHP EventKind = "hp"
	// EventStatus reports that a status slot changed
	EventStatus EventKind = "status"
	// EventFaint reports that a combatant reached 0 HP
	EventFaint EventKind = "faint"
	// EventWeather reports that the field weather changed
	EventWeather EventKind = "weather"
)

// Event is one entry in the battle log.
type Event struct {
	Kind        EventKind `json:"kind"`
	CombatantID string    `json:"combatant_id,omitempty"`
	Message     string    `json:"message,omitempty"`
	HP          int       `json:"hp"`
}

// Messages returns the narration lines of events, in order
func Messages(evts []Event) []string {
	var lines []string
	for _, e := range evts {
		if e.Message != "" {
			lines = append(lines, e.Message)
		}
	}
	return lines
}

// FromBusEvent rebuilds the log entry carried by an event published on the
// bus, along with its battle id. ok is false for events of other types.
func FromBusEvent(e events.Event) (battleID string, evt Event, ok bool) {
	if e == nil || e.Type() != EventTypeBattle {
		return "", Event{}, false
	}

	ctx := e.Context()
	str := func(key string) string {
		v, found := ctx.Get(key)
		if !found {
			return ""
		}
		s, _ := v.(string)
		return s
	}

	evt = Event{
		Kind:        EventKind(str(ContextKeyKind)),
		CombatantID: str(ContextKeyCombatantID),
		Message:     str(ContextKeyMessage),
	}
	if v, found := ctx.Get(ContextKeyHP); found {
		evt.HP, _ = v.(int)
	}
	return str(ContextKeyBattleID), evt, true
}
