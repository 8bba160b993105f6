package battle

import (
	engine "github.com/KirkDiggler/monster-battle/internal/battle"
)

// CombatantSpec selects a combatant for a new battle: either a fresh monster
// of Species at Level, or a stored monster by SaveID.
type CombatantSpec struct {
	Species string
	Level   int
	SaveID  string
}

// MoveSnapshot is the public view of a move slot
type MoveSnapshot struct {
	ID    string
	Name  string
	PP    int
	MaxPP int
}

// CombatantSnapshot is the public view of a combatant
type CombatantSnapshot struct {
	ID             string
	Species        string
	Level          int
	Exp            int
	HP             int
	MaxHP          int
	Ability        string
	Status         string
	VolatileStatus string
	Stages         map[string]int
	Moves          []MoveSnapshot
}

// BattleSnapshot is the public view of a battle
type BattleSnapshot struct {
	BattleID     string
	Turn         int
	Outcome      engine.Outcome
	Weather      string
	WeatherTurns int
	Ended        bool
	Player       *CombatantSnapshot
	Opponent     *CombatantSnapshot
}

// StartBattleInput defines the request for starting a battle
type StartBattleInput struct {
	OwnerID  string
	Player   CombatantSpec
	Opponent CombatantSpec
	// Seed makes the battle reproducible when set
	Seed *int64
}

// StartBattleOutput defines the response for starting a battle
type StartBattleOutput struct {
	Battle *BattleSnapshot
}

// UseMoveInput defines the request for running one turn
type UseMoveInput struct {
	BattleID  string
	MoveIndex int
	// OpponentMoveIndex overrides the opponent's random pick when set
	OpponentMoveIndex *int
}

// UseMoveOutput defines the response for running one turn
type UseMoveOutput struct {
	Turn   *engine.TurnResult
	Events []engine.Event
	Battle *BattleSnapshot
}

// GetBattleInput defines the request for reading a battle
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput defines the response for reading a battle
type GetBattleOutput struct {
	Battle *BattleSnapshot
}

// DrainEventsInput defines the request for draining narration
type DrainEventsInput struct {
	BattleID string
}

// DrainEventsOutput defines the response for draining narration
type DrainEventsOutput struct {
	Events []engine.Event
}

// SetWeatherInput defines the request for changing the field weather
type SetWeatherInput struct {
	BattleID string
	Weather  string
}

// SetWeatherOutput defines the response for changing the field weather
type SetWeatherOutput struct {
	Battle *BattleSnapshot
}

// SaveCombatantInput defines the request for persisting a combatant mid-battle
type SaveCombatantInput struct {
	BattleID string
	Side     engine.Side
}

// SaveCombatantOutput defines the response for persisting a combatant
type SaveCombatantOutput struct {
	SaveID string
}

// EndBattleInput defines the request for ending a battle
type EndBattleInput struct {
	BattleID string
	// SavePlayer persists the player's combatant after cleanup
	SavePlayer bool
}

// EndBattleOutput defines the response for ending a battle
type EndBattleOutput struct {
	Battle *BattleSnapshot
	Events []engine.Event
	// SaveID is set when the player was persisted
	SaveID string
}
