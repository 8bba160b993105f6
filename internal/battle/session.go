package battle

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/pkg/rng"
)

// Event bus constants
const (
	// EventTypeBattle is the rpg-toolkit event type of every battle log entry
	EventTypeBattle = "monsterbattle.event"
	// SessionEntityType is the rpg-toolkit entity type of a session
	SessionEntityType = "battle"

	ContextKeyBattleID    = "battle_id"
	ContextKeyKind        = "kind"
	ContextKeyCombatantID = "combatant_id"
	ContextKeyMessage     = "message"
	ContextKeyHP          = "hp"
)

// Side identifies one of the two combatants
type Side string

// Sides
const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// Outcome is the state of a battle
type Outcome string

// Outcomes
const (
	OutcomeOngoing     Outcome = "ongoing"
	OutcomePlayerWon   Outcome = "player_won"
	OutcomeOpponentWon Outcome = "opponent_won"
	OutcomeDraw        Outcome = "draw"
)

// NoMove marks a side that does not act this turn
const NoMove = -1

// Config holds the dependencies of a Session
type Config struct {
	ID       string
	Registry *Registry
	Rand     *rng.Source
	// EventBus is optional; every event is mirrored onto it when set
	EventBus        events.EventBus
	WeatherDuration int
	Player          *Combatant
	Opponent        *Combatant
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ID", c.ID, vb)
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Rand == nil {
		vb.RequiredField("Rand")
	}
	if c.Player == nil {
		vb.RequiredField("Player")
	}
	if c.Opponent == nil {
		vb.RequiredField("Opponent")
	}
	if c.Player != nil && c.Opponent != nil && c.Player.ID() == c.Opponent.ID() {
		vb.InvalidField("Opponent", "must not share the player's id")
	}
	errors.ValidateNonNegative("WeatherDuration", c.WeatherDuration, vb)

	return vb.Build()
}

// Session is one isolated battle: two combatants, a field, its own random
// stream and its own event queue. Methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id       string
	registry *Registry
	rand     *rng.Source
	bus      events.EventBus
	field    *Field
	player   *Combatant
	opponent *Combatant

	turn      int
	pending   []Event
	announced map[string]bool
	ended     bool
}

// TurnResult reports the moves resolved in a turn
type TurnResult struct {
	Number  int
	Actions []ActionResult
	Outcome Outcome
}

// ActionResult is one side's move in a turn
type ActionResult struct {
	Side   Side
	MoveID string
	MoveResult
}

// NewSession creates a session
func NewSession(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid session config")
	}

	return &Session{
		id:        cfg.ID,
		registry:  cfg.Registry,
		rand:      cfg.Rand,
		bus:       cfg.EventBus,
		field:     NewField(cfg.WeatherDuration),
		player:    cfg.Player,
		opponent:  cfg.Opponent,
		announced: make(map[string]bool, 2),
	}, nil
}

// GetID implements core.Entity
func (s *Session) GetID() string { return s.id }

// GetType implements core.Entity
func (s *Session) GetType() string { return SessionEntityType }

// ID returns the session id
func (s *Session) ID() string { return s.id }

// Player returns the player's combatant
func (s *Session) Player() *Combatant { return s.player }

// Opponent returns the opponent's combatant
func (s *Session) Opponent() *Combatant { return s.opponent }

// Field returns the battle field
func (s *Session) Field() *Field { return s.field }

// TurnNumber returns how many turns have been run
func (s *Session) TurnNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn
}

// Ended reports whether EndBattle has been called
func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

// Combatant returns the combatant on side
func (s *Session) Combatant(side Side) (*Combatant, error) {
	switch side {
	case SidePlayer:
		return s.player, nil
	case SideOpponent:
		return s.opponent, nil
	default:
		return nil, errors.InvalidArgumentf("unknown side %q", side)
	}
}

// Outcome reports who has won, if anyone
func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome()
}

func (s *Session) outcome() Outcome {
	switch {
	case s.player.Fainted() && s.opponent.Fainted():
		return OutcomeDraw
	case s.opponent.Fainted():
		return OutcomePlayerWon
	case s.player.Fainted():
		return OutcomeOpponentWon
	default:
		return OutcomeOngoing
	}
}

// RandomMoveIndex picks a move with PP left for side, NoMove when none remain
func (s *Session) RandomMoveIndex(side Side) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.Combatant(side)
	if err != nil {
		return NoMove
	}
	slot := c.RandomMove(s.rand)
	for i, m := range c.moves {
		if m == slot {
			return i
		}
	}
	return NoMove
}

// SetWeather installs weather on the field outside of a move
func (s *Session) SetWeather(ctx context.Context, id monster.ConditionID) error {
	if _, err := s.registry.Condition(id); err != nil {
		return errors.Wrap(err, "cannot set weather")
	}
	if !id.IsWeather() {
		return errors.InvalidArgumentf("%s is not a weather", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.newTurn()
	s.field.SetWeather(t, id)
	s.commit(ctx, t)
	return nil
}

// RunTurn resolves one turn. Each index selects a move of that side; NoMove
// skips the side. Actions are ordered by move priority, then speed, with
// ties broken randomly. The end-of-turn sweep ticks both sides' statuses,
// even a side that passed, then the weather.
func (s *Session) RunTurn(ctx context.Context, playerMove, opponentMove int) (*TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended || s.outcome() != OutcomeOngoing {
		return nil, errors.FailedPreconditionf("battle %s is over", s.id)
	}

	var actions []action
	for _, choice := range []struct {
		side   Side
		actor  *Combatant
		target *Combatant
		index  int
	}{
		{SidePlayer, s.player, s.opponent, playerMove},
		{SideOpponent, s.opponent, s.player, opponentMove},
	} {
		if choice.index == NoMove {
			continue
		}
		slot, err := selectMove(choice.actor, choice.index)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s move", choice.side)
		}
		actions = append(actions, action{side: choice.side, actor: choice.actor, target: choice.target, slot: slot})
	}

	s.turn++
	t := s.newTurn()
	s.orderActions(actions)

	result := &TurnResult{Number: s.turn}
	for _, a := range actions {
		if a.actor.Fainted() || a.target.Fainted() {
			continue
		}
		res := ResolveMove(t, a.actor, a.target, a.slot)
		result.Actions = append(result.Actions, ActionResult{Side: a.side, MoveID: a.slot.Def.ID, MoveResult: res})
		s.checkFaints(t)
	}

	if s.outcome() == OutcomeOngoing {
		for _, c := range s.sweepOrder(actions) {
			if !c.Fainted() {
				c.OnAfterTurn(t)
			}
		}
		s.checkFaints(t)
	}
	if s.outcome() == OutcomeOngoing {
		s.field.Tick(t, s.player, s.opponent)
		s.checkFaints(t)
	}

	result.Outcome = s.outcome()
	s.commit(ctx, t)

	slog.InfoContext(ctx, "Turn resolved",
		"battle_id", s.id,
		"turn", s.turn,
		"actions", len(result.Actions),
		"outcome", string(result.Outcome))

	return result, nil
}

// EndBattle clears volatile statuses and stat stages on both sides. Primary
// statuses persist. Calling it again is a no-op.
func (s *Session) EndBattle(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return
	}
	s.ended = true
	s.player.OnBattleOver()
	s.opponent.OnBattleOver()

	slog.InfoContext(ctx, "Battle ended", "battle_id", s.id, "outcome", string(s.outcome()), "turns", s.turn)
}

// Inspect runs fn with the session locked, so reads of both combatants and the
// field see a consistent state. fn must not call other Session methods.
func (s *Session) Inspect(fn func(player, opponent *Combatant, field *Field)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.player, s.opponent, s.field)
}

// Drain returns and clears the pending events
func (s *Session) Drain() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	drained := s.pending
	s.pending = nil
	return drained
}

// Pending returns how many events are waiting to be drained
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

type action struct {
	side   Side
	actor  *Combatant
	target *Combatant
	slot   *MoveSlot
}

func selectMove(c *Combatant, index int) (*MoveSlot, error) {
	if index < 0 || index >= len(c.moves) {
		return nil, errors.InvalidArgumentf("move index %d out of range [0, %d)", index, len(c.moves))
	}
	slot := c.moves[index]
	if slot.PP <= 0 {
		return nil, errors.FailedPreconditionf("%s has no PP left", slot.Def.Name)
	}
	return slot, nil
}

func (s *Session) orderActions(actions []action) {
	if len(actions) < 2 {
		return
	}

	a, b := actions[0], actions[1]
	var first bool
	if a.slot.Def.Priority != b.slot.Def.Priority {
		first = a.slot.Def.Priority > b.slot.Def.Priority
	} else {
		speedA := a.actor.EffectiveSpeed(a.target, a.slot.Def)
		speedB := b.actor.EffectiveSpeed(b.target, b.slot.Def)
		if speedA != speedB {
			first = speedA > speedB
		} else {
			first = s.rand.OneIn(2)
		}
	}
	if !first {
		actions[0], actions[1] = b, a
	}
}

// sweepOrder is the order end-of-turn statuses tick: the side that acted
// first, then the other.
func (s *Session) sweepOrder(actions []action) []*Combatant {
	if len(actions) > 0 && actions[0].actor == s.opponent {
		return []*Combatant{s.opponent, s.player}
	}
	return []*Combatant{s.player, s.opponent}
}

func (s *Session) checkFaints(t *Turn) {
	for _, c := range []*Combatant{s.player, s.opponent} {
		if !c.Fainted() || s.announced[c.id] {
			continue
		}
		s.announced[c.id] = true
		t.emit(Event{Kind: EventFaint, Message: c.Name() + " fainted!"}, c)
		if c == s.opponent {
			AwardExp(t, s.player, s.opponent)
		}
	}
}

func (s *Session) newTurn() *Turn {
	return NewTurn(s.registry, s.rand, s.field)
}

// commit moves a turn's events to the pending queue and mirrors them onto the
// event bus.
func (s *Session) commit(ctx context.Context, t *Turn) {
	s.pending = append(s.pending, t.events...)
	if s.bus == nil {
		return
	}

	for _, e := range t.events {
		var target core.Entity = s
		if e.CombatantID == s.player.id {
			target = s.player
		} else if e.CombatantID == s.opponent.id {
			target = s.opponent
		}

		evt := events.NewGameEvent(EventTypeBattle, s, target)
		evt.Context().Set(ContextKeyBattleID, s.id)
		evt.Context().Set(ContextKeyKind, string(e.Kind))
		evt.Context().Set(ContextKeyCombatantID, e.CombatantID)
		evt.Context().Set(ContextKeyMessage, e.Message)
		evt.Context().Set(ContextKeyHP, e.HP)

		if err := s.bus.Publish(ctx, evt); err != nil {
			slog.WarnContext(ctx, "Failed to publish battle event", "battle_id", s.id, "error", err)
		}
	}
}
