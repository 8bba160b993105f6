package v1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	engine "github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/orchestrators/battle"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	BattleService battle.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.BattleService == nil {
		return errors.InvalidArgument("battle service is required")
	}
	return nil
}

// Handler implements the battle gRPC service
type Handler struct {
	battleService battle.Service
}

var _ BattleServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		battleService: cfg.BattleService,
	}, nil
}

// StartBattle creates a battle between two combatants
func (h *Handler) StartBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in startBattleRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.StartBattle(ctx, &battle.StartBattleInput{
		OwnerID:  in.OwnerID,
		Player:   toCombatantSpec(in.Player),
		Opponent: toCombatantSpec(in.Opponent),
		Seed:     in.Seed,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodStartBattle, err)
	}

	return h.respond(&battleResponse{Battle: convertBattleToView(output.Battle)})
}

// UseMove runs one turn
func (h *Handler) UseMove(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in useMoveRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.UseMove(ctx, &battle.UseMoveInput{
		BattleID:          in.BattleID,
		MoveIndex:         in.MoveIndex,
		OpponentMoveIndex: in.OpponentMoveIndex,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodUseMove, err)
	}

	return h.respond(&battleResponse{
		Battle: convertBattleToView(output.Battle),
		Turn:   convertTurnToView(output.Turn),
		Events: output.Events,
	})
}

// GetBattle returns the state of a battle
func (h *Handler) GetBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in battleRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.GetBattle(ctx, &battle.GetBattleInput{BattleID: in.BattleID})
	if err != nil {
		return nil, h.fail(ctx, MethodGetBattle, err)
	}

	return h.respond(&battleResponse{Battle: convertBattleToView(output.Battle)})
}

// DrainEvents returns the narration queued since the last drain
func (h *Handler) DrainEvents(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in battleRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.DrainEvents(ctx, &battle.DrainEventsInput{BattleID: in.BattleID})
	if err != nil {
		return nil, h.fail(ctx, MethodDrainEvents, err)
	}

	return h.respond(&battleResponse{Events: output.Events})
}

// SetWeather changes the field weather
func (h *Handler) SetWeather(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in setWeatherRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.SetWeather(ctx, &battle.SetWeatherInput{
		BattleID: in.BattleID,
		Weather:  in.Weather,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodSetWeather, err)
	}

	return h.respond(&battleResponse{Battle: convertBattleToView(output.Battle)})
}

// SaveCombatant persists one side mid-battle
func (h *Handler) SaveCombatant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in saveCombatantRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.SaveCombatant(ctx, &battle.SaveCombatantInput{
		BattleID: in.BattleID,
		Side:     engine.Side(in.Side),
	})
	if err != nil {
		return nil, h.fail(ctx, MethodSaveCombatant, err)
	}

	return h.respond(&battleResponse{SaveID: output.SaveID})
}

// EndBattle closes a battle
func (h *Handler) EndBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in endBattleRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.EndBattle(ctx, &battle.EndBattleInput{
		BattleID:   in.BattleID,
		SavePlayer: in.SavePlayer,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodEndBattle, err)
	}

	return h.respond(&battleResponse{
		Battle: convertBattleToView(output.Battle),
		Events: output.Events,
		SaveID: output.SaveID,
	})
}

func (h *Handler) respond(resp *battleResponse) (*structpb.Struct, error) {
	out, err := encodeResponse(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func (h *Handler) fail(ctx context.Context, method string, err error) error {
	if errors.GetCode(err) == errors.CodeInternal {
		slog.ErrorContext(ctx, "Battle request failed", "method", method, "error", err)
	}
	return errors.ToGRPCError(err)
}
