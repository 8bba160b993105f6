package v1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	engine "github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/orchestrators/battle"
)

// Request documents

type combatantSpec struct {
	Species string `json:"species,omitempty"`
	Level   int    `json:"level,omitempty"`
	SaveID  string `json:"save_id,omitempty"`
}

type startBattleRequest struct {
	OwnerID  string        `json:"owner_id,omitempty"`
	Player   combatantSpec `json:"player"`
	Opponent combatantSpec `json:"opponent"`
	Seed     *int64        `json:"seed,omitempty"`
}

type useMoveRequest struct {
	BattleID          string `json:"battle_id"`
	MoveIndex         int    `json:"move_index"`
	OpponentMoveIndex *int   `json:"opponent_move_index,omitempty"`
}

type battleRequest struct {
	BattleID string `json:"battle_id"`
}

type setWeatherRequest struct {
	BattleID string `json:"battle_id"`
	Weather  string `json:"weather"`
}

type saveCombatantRequest struct {
	BattleID string `json:"battle_id"`
	Side     string `json:"side"`
}

type endBattleRequest struct {
	BattleID   string `json:"battle_id"`
	SavePlayer bool   `json:"save_player,omitempty"`
}

// Response documents

type moveView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	PP    int    `json:"pp"`
	MaxPP int    `json:"max_pp"`
}

type combatantView struct {
	ID             string         `json:"id"`
	Species        string         `json:"species"`
	Level          int            `json:"level"`
	Exp            int            `json:"exp"`
	HP             int            `json:"hp"`
	MaxHP          int            `json:"max_hp"`
	Ability        string         `json:"ability"`
	Status         string         `json:"status,omitempty"`
	VolatileStatus string         `json:"volatile_status,omitempty"`
	Stages         map[string]int `json:"stages,omitempty"`
	Moves          []moveView     `json:"moves"`
}

type battleView struct {
	BattleID     string         `json:"battle_id"`
	Turn         int            `json:"turn"`
	Outcome      string         `json:"outcome"`
	Weather      string         `json:"weather,omitempty"`
	WeatherTurns int            `json:"weather_turns,omitempty"`
	Ended        bool           `json:"ended,omitempty"`
	Player       *combatantView `json:"player"`
	Opponent     *combatantView `json:"opponent"`
}

type hitView struct {
	Damage            int     `json:"damage"`
	Critical          bool    `json:"critical,omitempty"`
	TypeEffectiveness float64 `json:"type_effectiveness"`
	Fainted           bool    `json:"fainted,omitempty"`
}

type actionView struct {
	Side    string    `json:"side"`
	MoveID  string    `json:"move_id"`
	Blocked bool      `json:"blocked,omitempty"`
	Missed  bool      `json:"missed,omitempty"`
	Hits    []hitView `json:"hits,omitempty"`
}

type turnView struct {
	Number  int          `json:"number"`
	Outcome string       `json:"outcome"`
	Actions []actionView `json:"actions"`
}

type battleResponse struct {
	Battle *battleView    `json:"battle,omitempty"`
	Turn   *turnView      `json:"turn,omitempty"`
	Events []engine.Event `json:"events,omitempty"`
	SaveID string         `json:"save_id,omitempty"`
}

// decodeRequest copies a Struct into a request document
func decodeRequest(req *structpb.Struct, out any) error {
	if req == nil {
		return errors.InvalidArgument("request is required")
	}
	raw, err := protojson.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "failed to read request")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// encodeResponse copies a response document into a Struct
func encodeResponse(in any) (*structpb.Struct, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

func toCombatantSpec(spec combatantSpec) battle.CombatantSpec {
	return battle.CombatantSpec{
		Species: spec.Species,
		Level:   spec.Level,
		SaveID:  spec.SaveID,
	}
}

func convertBattleToView(snap *battle.BattleSnapshot) *battleView {
	if snap == nil {
		return nil
	}
	return &battleView{
		BattleID:     snap.BattleID,
		Turn:         snap.Turn,
		Outcome:      string(snap.Outcome),
		Weather:      snap.Weather,
		WeatherTurns: snap.WeatherTurns,
		Ended:        snap.Ended,
		Player:       convertCombatantToView(snap.Player),
		Opponent:     convertCombatantToView(snap.Opponent),
	}
}

func convertCombatantToView(c *battle.CombatantSnapshot) *combatantView {
	if c == nil {
		return nil
	}
	view := &combatantView{
		ID:             c.ID,
		Species:        c.Species,
		Level:          c.Level,
		Exp:            c.Exp,
		HP:             c.HP,
		MaxHP:          c.MaxHP,
		Ability:        c.Ability,
		Status:         c.Status,
		VolatileStatus: c.VolatileStatus,
		Stages:         c.Stages,
		Moves:          make([]moveView, len(c.Moves)),
	}
	for i, m := range c.Moves {
		view.Moves[i] = moveView(m)
	}
	return view
}

func convertTurnToView(turn *engine.TurnResult) *turnView {
	if turn == nil {
		return nil
	}
	view := &turnView{
		Number:  turn.Number,
		Outcome: string(turn.Outcome),
		Actions: make([]actionView, len(turn.Actions)),
	}
	for i, a := range turn.Actions {
		action := actionView{
			Side:    string(a.Side),
			MoveID:  a.MoveID,
			Blocked: a.Blocked,
			Missed:  a.Missed,
		}
		for _, h := range a.Hits {
			action.Hits = append(action.Hits, hitView{
				Damage:            h.Damage,
				Critical:          h.Critical > 1,
				TypeEffectiveness: h.TypeEffectiveness,
				Fainted:           h.Fainted,
			})
		}
		view.Actions[i] = action
	}
	return view
}
