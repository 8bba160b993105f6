// Package client provides test commands for the battle gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	v1 "github.com/KirkDiggler/monster-battle/internal/handlers/grpc/v1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the battle API",
	Long:  `Client commands allow you to drive a battle by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(startBattleCmd)
	ClientCmd.AddCommand(useMoveCmd)
	ClientCmd.AddCommand(getBattleCmd)
	ClientCmd.AddCommand(endBattleCmd)
}

// createBattleClient creates a battle service client
func createBattleClient() (*v1.BattleServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1.NewBattleServiceClient(conn), cleanup, nil
}

func printResponse(cmd *cobra.Command, resp *structpb.Struct) error {
	out, err := json.MarshalIndent(resp.AsMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
