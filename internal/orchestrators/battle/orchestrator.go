// Package battle implements the battle orchestrator: it creates sessions,
// drives turns and moves combatants in and out of save storage.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/monster-battle/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	engine "github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/entities/monster"
	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/pkg/clock"
	"github.com/KirkDiggler/monster-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-battle/internal/pkg/rng"
	"github.com/KirkDiggler/monster-battle/internal/repositories/battles"
	monstersaves "github.com/KirkDiggler/monster-battle/internal/repositories/monster_saves"
)

// Service defines the interface for battle operations
type Service interface {
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)
	UseMove(ctx context.Context, input *UseMoveInput) (*UseMoveOutput, error)
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)
	DrainEvents(ctx context.Context, input *DrainEventsInput) (*DrainEventsOutput, error)
	SetWeather(ctx context.Context, input *SetWeatherInput) (*SetWeatherOutput, error)

	// Persistence
	SaveCombatant(ctx context.Context, input *SaveCombatantInput) (*SaveCombatantOutput, error)
	EndBattle(ctx context.Context, input *EndBattleInput) (*EndBattleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Registry    *engine.Registry
	BattleRepo  battles.Repository
	SaveRepo    monstersaves.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// EventBus is optional; sessions mirror their narration onto it
	EventBus events.EventBus
	// Roller is optional; battles without a seed roll with it. Defaults to
	// dice.DefaultRoller.
	Roller dice.Roller
	// WeatherDuration <= 0 uses engine.DefaultWeatherDuration
	WeatherDuration int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.SaveRepo == nil {
		vb.RequiredField("SaveRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	registry        *engine.Registry
	battleRepo      battles.Repository
	saveRepo        monstersaves.Repository
	idGen           idgen.Generator
	clock           clock.Clock
	bus             events.EventBus
	roller          dice.Roller
	weatherDuration int
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		registry:        cfg.Registry,
		battleRepo:      cfg.BattleRepo,
		saveRepo:        cfg.SaveRepo,
		idGen:           cfg.IDGenerator,
		clock:           cfg.Clock,
		bus:             cfg.EventBus,
		roller:          cfg.Roller,
		weatherDuration: cfg.WeatherDuration,
	}, nil
}

// StartBattle builds both combatants and stores a new session
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Player.SaveID != "" && input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required to battle with a saved monster")
	}

	battleID := o.idGen.Generate()

	player, err := o.buildCombatant(ctx, battleID+"-player", input.OwnerID, input.Player)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build player")
	}
	opponent, err := o.buildCombatant(ctx, battleID+"-opponent", "", input.Opponent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build opponent")
	}

	src := rng.New(o.roller)
	if input.Seed != nil {
		src = rng.NewSeeded(*input.Seed)
	}

	session, err := engine.NewSession(&engine.Config{
		ID:              battleID,
		Registry:        o.registry,
		Rand:            src,
		EventBus:        o.bus,
		WeatherDuration: o.weatherDuration,
		Player:          player,
		Opponent:        opponent,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	_, err = o.battleRepo.Save(ctx, &battles.SaveInput{Battle: &battles.Battle{
		Session:      session,
		OwnerID:      input.OwnerID,
		PlayerSaveID: input.Player.SaveID,
		CreatedAt:    o.clock.Now(),
	}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store battle")
	}

	slog.InfoContext(ctx, "Battle started",
		"battle_id", battleID,
		"owner_id", input.OwnerID,
		"player", player.Name(),
		"opponent", opponent.Name())

	return &StartBattleOutput{Battle: snapshot(session)}, nil
}

func (o *orchestrator) buildCombatant(ctx context.Context, id, ownerID string, spec CombatantSpec) (*engine.Combatant, error) {
	if spec.SaveID == "" {
		if spec.Species == "" {
			return nil, errors.InvalidArgument("species or save ID is required")
		}
		return o.registry.NewCombatant(id, spec.Species, spec.Level)
	}

	out, err := o.saveRepo.Get(ctx, monstersaves.GetInput{ID: spec.SaveID})
	if err != nil {
		return nil, err
	}
	if out.Save.OwnerID != ownerID {
		return nil, errors.FailedPreconditionf("save %s belongs to another owner", spec.SaveID)
	}
	return o.registry.RestoreCombatant(id, out.Save.Data)
}

// UseMove runs one turn. The opponent picks a random usable move unless an
// index is supplied.
func (o *orchestrator) UseMove(ctx context.Context, input *UseMoveInput) (*UseMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.getBattle(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}
	session := b.Session

	var opponentMove int
	if input.OpponentMoveIndex != nil {
		opponentMove = *input.OpponentMoveIndex
	} else {
		opponentMove = session.RandomMoveIndex(engine.SideOpponent)
	}

	turn, err := session.RunTurn(ctx, input.MoveIndex, opponentMove)
	if err != nil {
		return nil, err
	}

	return &UseMoveOutput{
		Turn:   turn,
		Events: session.Drain(),
		Battle: snapshot(session),
	}, nil
}

// GetBattle returns the current state of a battle
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.getBattle(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	return &GetBattleOutput{Battle: snapshot(b.Session)}, nil
}

// DrainEvents returns the narration queued since the last drain
func (o *orchestrator) DrainEvents(ctx context.Context, input *DrainEventsInput) (*DrainEventsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.getBattle(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}

	return &DrainEventsOutput{Events: b.Session.Drain()}, nil
}

// SetWeather installs weather on the field of a battle
func (o *orchestrator) SetWeather(ctx context.Context, input *SetWeatherInput) (*SetWeatherOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var id monster.ConditionID
	if err := id.UnmarshalText([]byte(input.Weather)); err != nil {
		return nil, err
	}
	if !id.IsWeather() {
		return nil, errors.InvalidArgumentf("%s is not a weather", id)
	}

	b, err := o.getBattle(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}
	if err := b.Session.SetWeather(ctx, id); err != nil {
		return nil, err
	}

	return &SetWeatherOutput{Battle: snapshot(b.Session)}, nil
}

// SaveCombatant stores one side's current state as a new save owned by the
// battle's owner
func (o *orchestrator) SaveCombatant(ctx context.Context, input *SaveCombatantInput) (*SaveCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.getBattle(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID == "" {
		return nil, errors.FailedPreconditionf("battle %s has no owner", input.BattleID)
	}

	var data *engine.SaveData
	var sideErr error
	b.Session.Inspect(func(player, opponent *engine.Combatant, _ *engine.Field) {
		switch input.Side {
		case engine.SidePlayer:
			data = player.SaveData()
		case engine.SideOpponent:
			data = opponent.SaveData()
		default:
			sideErr = errors.InvalidArgumentf("unknown side %q", input.Side)
		}
	})
	if sideErr != nil {
		return nil, sideErr
	}

	out, err := o.saveRepo.Create(ctx, monstersaves.CreateInput{OwnerID: b.OwnerID, Data: data})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save combatant")
	}

	return &SaveCombatantOutput{SaveID: out.Save.ID}, nil
}

// EndBattle cleans up both combatants, optionally persists the player and
// removes the battle. A player restored from a save updates that save.
func (o *orchestrator) EndBattle(ctx context.Context, input *EndBattleInput) (*EndBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	b, err := o.getBattle(ctx, input.BattleID)
	if err != nil {
		return nil, err
	}
	if input.SavePlayer && b.OwnerID == "" {
		return nil, errors.FailedPreconditionf("battle %s has no owner to save for", input.BattleID)
	}

	b.Session.EndBattle(ctx)
	output := &EndBattleOutput{
		Battle: snapshot(b.Session),
		Events: b.Session.Drain(),
	}

	if input.SavePlayer {
		var data *engine.SaveData
		b.Session.Inspect(func(player, _ *engine.Combatant, _ *engine.Field) {
			data = player.SaveData()
		})

		if b.PlayerSaveID != "" {
			out, err := o.saveRepo.Update(ctx, monstersaves.UpdateInput{ID: b.PlayerSaveID, Data: data})
			if err != nil {
				return nil, errors.Wrap(err, "failed to update player save")
			}
			output.SaveID = out.Save.ID
		} else {
			out, err := o.saveRepo.Create(ctx, monstersaves.CreateInput{OwnerID: b.OwnerID, Data: data})
			if err != nil {
				return nil, errors.Wrap(err, "failed to save player")
			}
			output.SaveID = out.Save.ID
		}
	}

	if _, err := o.battleRepo.Delete(ctx, &battles.DeleteInput{BattleID: input.BattleID}); err != nil {
		return nil, errors.Wrap(err, "failed to remove battle")
	}

	slog.InfoContext(ctx, "Battle closed",
		"battle_id", input.BattleID,
		"outcome", string(output.Battle.Outcome),
		"save_id", output.SaveID)

	return output, nil
}

func (o *orchestrator) getBattle(ctx context.Context, battleID string) (*battles.Battle, error) {
	if battleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	out, err := o.battleRepo.Get(ctx, &battles.GetInput{BattleID: battleID})
	if err != nil {
		return nil, err
	}
	return out.Battle, nil
}
