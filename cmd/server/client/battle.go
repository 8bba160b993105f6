package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	v1 "github.com/KirkDiggler/monster-battle/internal/handlers/grpc/v1"
)

var (
	ownerID    string
	level      int
	seed       int64
	savePlayer bool
)

var startBattleCmd = &cobra.Command{
	Use:   "start-battle [player-species] [opponent-species]",
	Short: "Start a battle between two fresh monsters",
	Long: `Start a battle. Examples:

  start-battle Embercub Sproutle --level 20
  start-battle Zapling Drizzlet --seed 42 --owner trainer-1`,
	Args: cobra.ExactArgs(2),
	RunE: startBattle,
}

var useMoveCmd = &cobra.Command{
	Use:   "use-move [battle-id] [move-index]",
	Short: "Use one of the player's moves; the opponent picks at random",
	Args:  cobra.ExactArgs(2),
	RunE:  useMove,
}

var getBattleCmd = &cobra.Command{
	Use:   "get-battle [battle-id]",
	Short: "Show the state of a battle",
	Args:  cobra.ExactArgs(1),
	RunE:  getBattle,
}

var endBattleCmd = &cobra.Command{
	Use:   "end-battle [battle-id]",
	Short: "End a battle, optionally saving the player",
	Args:  cobra.ExactArgs(1),
	RunE:  endBattle,
}

func init() {
	startBattleCmd.Flags().StringVar(&ownerID, "owner", "", "trainer id owning the player")
	startBattleCmd.Flags().IntVar(&level, "level", 50, "level of both monsters")
	startBattleCmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible battle, 0 for random")
	endBattleCmd.Flags().BoolVar(&savePlayer, "save", false, "persist the player's monster")
}

func call(cmd *cobra.Command, method string, fields map[string]any) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	return printResponse(cmd, resp)
}

func startBattle(cmd *cobra.Command, args []string) error {
	fields := map[string]any{
		"player":   map[string]any{"species": args[0], "level": level},
		"opponent": map[string]any{"species": args[1], "level": level},
	}
	if ownerID != "" {
		fields["owner_id"] = ownerID
	}
	if seed != 0 {
		fields["seed"] = seed
	}
	return call(cmd, v1.MethodStartBattle, fields)
}

func useMove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("move index must be a number: %w", err)
	}
	return call(cmd, v1.MethodUseMove, map[string]any{"battle_id": args[0], "move_index": index})
}

func getBattle(cmd *cobra.Command, args []string) error {
	return call(cmd, v1.MethodGetBattle, map[string]any{"battle_id": args[0]})
}

func endBattle(cmd *cobra.Command, args []string) error {
	return call(cmd, v1.MethodEndBattle, map[string]any{"battle_id": args[0], "save_player": savePlayer})
}
