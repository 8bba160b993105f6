package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/monster-battle/internal/config"
	"github.com/KirkDiggler/monster-battle/internal/services/simulation"
)

var (
	simBattles     int
	simSeed        int64
	simAttacker    string
	simDefender    string
	simLevel       int
	simConcurrency int
	simMaxTurns    int
	simVerbose     bool
	simCatalog     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run seeded battles offline and print win tallies",
	Long: `Run many independent battles between two species in parallel. Every battle
draws from its own seeded random stream, so a seed always reproduces the same tallies.

  simulate --attacker Embercub --defender Sproutle --level 30 --battles 1000 --seed 7`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simBattles, "battles", 100, "number of battles")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 1, "seed of the first battle")
	simulateCmd.Flags().StringVar(&simAttacker, "attacker", "Embercub", "attacking species")
	simulateCmd.Flags().StringVar(&simDefender, "defender", "Sproutle", "defending species")
	simulateCmd.Flags().IntVar(&simLevel, "level", 50, "level of both combatants")
	simulateCmd.Flags().IntVar(&simConcurrency, "concurrency", 0, "parallel battles, 0 for unbounded")
	simulateCmd.Flags().IntVar(&simMaxTurns, "max-turns", simulation.DefaultMaxTurns, "turns before a battle is called a draw")
	simulateCmd.Flags().BoolVar(&simVerbose, "verbose", false, "print the narration of every battle")
	simulateCmd.Flags().StringVar(&simCatalog, "catalog", "", "directory holding species.yaml and moves.yaml")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{LogLevel: "warn", LogFormat: config.LogFormatText}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	registry, err := loadRegistry(simCatalog)
	if err != nil {
		return err
	}

	svc, err := simulation.NewService(&simulation.Config{Registry: registry})
	if err != nil {
		return err
	}

	out, err := svc.Run(cmd.Context(), &simulation.RunInput{
		Attacker:    simAttacker,
		Defender:    simDefender,
		Level:       simLevel,
		Battles:     simBattles,
		Seed:        simSeed,
		Concurrency: simConcurrency,
		MaxTurns:    simMaxTurns,
		KeepLogs:    simVerbose,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, log := range out.Logs {
		fmt.Fprintf(w, "\n=== Battle %d (seed %d): %s after %d turns ===\n", log.Index+1, log.Seed, log.Outcome, log.Turns)
		for _, msg := range log.Messages {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}

	total := float64(simBattles)
	fmt.Fprintf(w, "\n%s vs %s at level %d, %d battles\n", simAttacker, simDefender, simLevel, simBattles)
	fmt.Fprintf(w, "  %-10s %5d (%5.1f%%)\n", simAttacker, out.AttackerWins, 100*float64(out.AttackerWins)/total)
	fmt.Fprintf(w, "  %-10s %5d (%5.1f%%)\n", simDefender, out.DefenderWins, 100*float64(out.DefenderWins)/total)
	fmt.Fprintf(w, "  %-10s %5d (%5.1f%%)\n", "draws", out.Draws, 100*float64(out.Draws)/total)
	fmt.Fprintf(w, "  average turns: %.1f\n", float64(out.TotalTurns)/total)

	return nil
}
