package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/sim"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSimGames    int
	flagSimPreset   string
	flagSimMaxMoves int
	flagSimRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play random games headless and check the rules",
	Long: `Play games with uniformly random directions and no rendering.
After every move the sum of tiles, the tile count, the notification batch
and the no-op rule are checked. Any violation makes the command fail.

Examples:
  t2048 simulate
  t2048 simulate --games 500 --seed 1
  t2048 simulate --preset 2048_4x6 --max-moves 200
  t2048 simulate --games 20 --record`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 50, "Number of games to play")
	simulateCmd.Flags().StringVar(&flagSimPreset, "preset", "2048", "Board preset")
	simulateCmd.Flags().IntVar(&flagSimMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = play out)")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save simulated games to the history database")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	info, ok := registry.Lookup(flagSimPreset)
	if !ok {
		return fmt.Errorf("%w %q (run 't2048 list')", registry.ErrUnknownGame, flagSimPreset)
	}

	seed := appCfg.Play.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	report, err := sim.Run(ctx, sim.Options{
		Rows:     info.Rows,
		Cols:     info.Cols,
		Games:    flagSimGames,
		Seed:     seed,
		MaxMoves: flagSimMaxMoves,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Debug("simulation finished", "games", len(report.Games), "elapsed", time.Since(start))

	fmt.Printf("Simulated %d games on %s (%dx%d), seed %d\n", len(report.Games), info.Title, info.Rows, info.Cols, seed)
	fmt.Printf("Average moves: %.1f\n", report.AvgMoves())
	t := newTable("Max tile", "Games", "Share")
	for _, row := range report.MaxTiles() {
		share := 100 * float64(row[1]) / float64(max(len(report.Games), 1))
		t.Row(strconv.Itoa(row[0]), strconv.Itoa(row[1]), fmt.Sprintf("%.1f%%", share))
	}
	fmt.Println(t)

	if flagSimRecord {
		recordSimulation(info, report)
	}

	if len(report.Violations) > 0 {
		for _, v := range report.Violations {
			logger.Error("rule violation", "error", v)
		}
		return fmt.Errorf("%d rule violations", len(report.Violations))
	}

	fmt.Println()
	fmt.Println("No rule violations.")
	return nil
}

func recordSimulation(info registry.GameInfo, report sim.Report) {
	store, err := storage.Open(appCfg.DBPath())
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	for _, g := range report.Games {
		if _, err := store.SaveResult(storage.Result{
			GameID:  info.ID,
			Rows:    info.Rows,
			Cols:    info.Cols,
			Moves:   g.Moves,
			Fusions: g.Fusions,
			MaxTile: g.MaxTile,
			TileSum: g.TileSum,
			Outcome: "sim_" + g.Outcome,
			Seed:    g.Seed,
		}); err != nil {
			logger.Warn("could not save simulated game", "error", err)
			return
		}
	}
	logger.Info("simulated games recorded", "games", len(report.Games))
}
