// Package simulation runs many independent battles between two species and
// tallies the outcomes.
package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	engine "github.com/KirkDiggler/monster-battle/internal/battle"
	"github.com/KirkDiggler/monster-battle/internal/errors"
	"github.com/KirkDiggler/monster-battle/internal/pkg/rng"
)

//go:generate mockgen -destination=mock/mock_service.go -package=simulationmock github.com/KirkDiggler/monster-battle/internal/services/simulation Service

// DefaultMaxTurns bounds a battle where neither side can finish the other
const DefaultMaxTurns = 200

// Service defines the simulation interface
type Service interface {
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// RunInput contains simulation parameters
type RunInput struct {
	Attacker string
	Defender string
	Level    int
	Battles  int
	// Seed makes the run reproducible; battle i uses Seed+i
	Seed int64
	// Concurrency bounds parallel battles; <= 0 means unbounded
	Concurrency int
	// MaxTurns <= 0 uses DefaultMaxTurns
	MaxTurns int
	// KeepLogs returns the narration of every battle
	KeepLogs bool
}

// Validate ensures the input is usable
func (i *RunInput) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("Attacker", i.Attacker, vb)
	errors.ValidateRequired("Defender", i.Defender, vb)
	errors.ValidateRange("Level", i.Level, 1, 100, vb)
	if i.Battles < 1 {
		vb.Fieldf("Battles", "must be at least 1, got %d", i.Battles)
	}

	return vb.Build()
}

// BattleLog is the narration of one simulated battle
type BattleLog struct {
	Index    int
	Seed     int64
	Turns    int
	Outcome  engine.Outcome
	Messages []string
}

// RunOutput contains the tallies
type RunOutput struct {
	AttackerWins int
	DefenderWins int
	Draws        int
	TotalTurns   int
	// Logs is ordered by battle index; empty unless KeepLogs was set
	Logs []BattleLog
}

// Config holds the dependencies for the simulation service
type Config struct {
	Registry *engine.Registry
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}

	return vb.Build()
}

type service struct {
	registry *engine.Registry
}

// NewService creates a simulation service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{registry: cfg.Registry}, nil
}

// Run plays input.Battles isolated battles in parallel. Each battle owns its
// session, combatants and seeded random stream, so results depend only on
// the seed.
func (s *service) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	maxTurns := input.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	logs := make([]BattleLog, input.Battles)
	var (
		mu  sync.Mutex
		out RunOutput
	)

	g, gctx := errgroup.WithContext(ctx)
	if input.Concurrency > 0 {
		g.SetLimit(input.Concurrency)
	}

	for i := 0; i < input.Battles; i++ {
		g.Go(func() error {
			log, err := s.runOne(gctx, input, i, maxTurns)
			if err != nil {
				return errors.Wrapf(err, "battle %d", i)
			}

			mu.Lock()
			defer mu.Unlock()
			switch log.Outcome {
			case engine.OutcomePlayerWon:
				out.AttackerWins++
			case engine.OutcomeOpponentWon:
				out.DefenderWins++
			default:
				out.Draws++
			}
			out.TotalTurns += log.Turns
			logs[i] = log
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if input.KeepLogs {
		out.Logs = logs
	}

	slog.InfoContext(ctx, "Simulation finished",
		"attacker", input.Attacker,
		"defender", input.Defender,
		"battles", input.Battles,
		"attacker_wins", out.AttackerWins,
		"defender_wins", out.DefenderWins,
		"draws", out.Draws)

	return &out, nil
}

func (s *service) runOne(ctx context.Context, input *RunInput, index, maxTurns int) (BattleLog, error) {
	seed := input.Seed + int64(index)
	log := BattleLog{Index: index, Seed: seed}

	player, err := s.registry.NewCombatant(fmt.Sprintf("sim-%d-attacker", index), input.Attacker, input.Level)
	if err != nil {
		return log, err
	}
	opponent, err := s.registry.NewCombatant(fmt.Sprintf("sim-%d-defender", index), input.Defender, input.Level)
	if err != nil {
		return log, err
	}

	session, err := engine.NewSession(&engine.Config{
		ID:       fmt.Sprintf("sim-%d", index),
		Registry: s.registry,
		Rand:     rng.NewSeeded(seed),
		Player:   player,
		Opponent: opponent,
	})
	if err != nil {
		return log, err
	}

	outcome := engine.OutcomeOngoing
	for outcome == engine.OutcomeOngoing && session.TurnNumber() < maxTurns {
		if err := ctx.Err(); err != nil {
			return log, err
		}

		playerMove := session.RandomMoveIndex(engine.SidePlayer)
		opponentMove := session.RandomMoveIndex(engine.SideOpponent)
		if playerMove == engine.NoMove && opponentMove == engine.NoMove {
			break
		}

		turn, err := session.RunTurn(ctx, playerMove, opponentMove)
		if err != nil {
			return log, err
		}
		outcome = turn.Outcome
	}
	session.EndBattle(ctx)

	if outcome == engine.OutcomeOngoing {
		outcome = engine.OutcomeDraw
	}
	log.Outcome = outcome
	log.Turns = session.TurnNumber()
	if input.KeepLogs {
		log.Messages = engine.Messages(session.Drain())
	}
	return log, nil
}
