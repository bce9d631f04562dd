package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagHistoryTUI   bool
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [preset]",
	Short: "Show finished games",
	Long: `Display recently finished games and per-board statistics.
Without a preset every board is listed.

Examples:
  t2048 history
  t2048 history 2048 --limit 5
  t2048 history --tui
  t2048 history 2048_3x3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse history in an interactive table")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the history of the preset (or of every preset)")
}

func runHistory(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("%w %q (run 't2048 list')", registry.ErrUnknownGame, gameID)
		}
	}

	store, err := storage.Open(appCfg.DBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		n, err := store.ClearResults(gameID)
		if err != nil {
			return err
		}
		logger.Info("history cleared", "preset", gameID, "games", n)
		return nil
	}

	if flagHistoryTUI {
		cfg := runtimeConfig()
		_, err := tui.RunHistory(store, gameID, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	return printHistory(store, gameID)
}

func printHistory(store *storage.Store, gameID string) error {
	results, err := store.RecentResults(gameID, flagHistoryLimit)
	if err != nil {
		return err
	}

	title := "all boards"
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}
	fmt.Printf("History - %s\n", title)

	if len(results) == 0 {
		fmt.Println("No finished games yet.")
		return nil
	}

	t := newTable("Board", "Size", "Max", "Moves", "Merges", "End", "Date")
	for _, r := range results {
		t.Row(r.GameID, fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			strconv.Itoa(r.MaxTile), strconv.Itoa(r.Moves), strconv.Itoa(r.Fusions),
			r.Outcome, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Println(t)

	stats, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Println()
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok || (gameID != "" && g.ID != gameID) {
			continue
		}
		fmt.Printf("%s: %d games, best tile %d, average max %.0f\n", g.Title, s.GamesCount, s.BestTile, s.AvgMaxTile)
	}

	return nil
}
