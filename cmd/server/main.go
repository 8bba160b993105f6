// Package main is the entry point for the monster battle server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/monster-battle/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "monster-battle",
	Short: "Monster battle engine server",
	Long:  `Monster battle runs turn-based monster battles over gRPC, streams narration over websockets and simulates battles offline.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
