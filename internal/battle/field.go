package battle

import (
	"log/slog"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
)

// DefaultWeatherDuration is how many turns move-induced weather lasts
const DefaultWeatherDuration = 5

// Field is the battle-wide environment. It holds at most one weather.
type Field struct {
	duration  int
	weather   *Condition
	remaining int
}

// NewField creates a clear field. duration <= 0 uses DefaultWeatherDuration.
func NewField(duration int) *Field {
	if duration <= 0 {
		duration = DefaultWeatherDuration
	}
	return &Field{duration: duration}
}

// Weather returns the active weather, nil when clear
func (f *Field) Weather() *Condition {
	return f.weather
}

// RemainingTurns returns how many end-of-turn ticks the weather has left
func (f *Field) RemainingTurns() int {
	return f.remaining
}

// SetWeather installs weather for the configured duration, replacing any
// current weather. Ids that are not weather are ignored.
func (f *Field) SetWeather(t *Turn, id monster.ConditionID) {
	if !id.IsWeather() {
		return
	}

	f.weather = t.registry.mustCondition(id)
	f.remaining = f.duration
	t.emit(Event{Kind: EventWeather, Message: f.weather.StartMessage}, nil)
}

// DamageModifier returns the weather multiplier for a hit, 1 when clear
func (f *Field) DamageModifier(attacker, defender *Combatant, move *monster.Move) float64 {
	if f.weather == nil || f.weather.OnDamageModify == nil {
		return 1
	}
	return f.weather.OnDamageModify(attacker, defender, move)
}

// Tick runs the end-of-turn weather effects on every living combatant and
// counts the weather down.
func (f *Field) Tick(t *Turn, combatants ...*Combatant) {
	if f.weather == nil {
		return
	}

	if f.weather.EffectMessage != "" {
		t.Say(nil, "%s", f.weather.EffectMessage)
	}
	if f.weather.OnWeather != nil {
		for _, c := range combatants {
			if c.Fainted() {
				continue
			}
			f.weather.OnWeather(t, c)
		}
	}

	f.remaining--
	if f.remaining <= 0 {
		slog.Debug("weather expired", "weather", f.weather.ID.String())
		f.weather = nil
		f.remaining = 0
		t.emit(Event{Kind: EventWeather, Message: "The weather has returned to normal"}, nil)
	}
}
