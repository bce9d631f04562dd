package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board preset",
	Long: `Start playing the given preset. Without a preset a menu lets you pick
one; after each game you return to the menu.

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  P/Esc/Space       - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play 2048
  t2048 play 2048_4x6 --seed 7
  t2048 play 2048_custom --config ./big-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg := runtimeConfig()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if len(args) == 1 {
		return playGame(args[0], store, cfg)
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(bestTiler(store), cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsHistory {
			goBack, err := tui.RunHistory(historyReader(store), "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if err := playGame(menuResult.GameID, store, cfg); err != nil {
			return err
		}
	}
}

// playGame runs one preset until the player quits.
func playGame(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available presets.")
		return err
	}

	l, closer := playLogger()
	defer closer.Close()
	t2048.SetLogger(l)

	var saver tui.ResultSaver
	if store != nil {
		saver = store
	}

	logger.Debug("starting game", "preset", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	if err := tui.Run(game, saver, l, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the platform config from the terminal and app config.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appCfg.Play.TickRate
	cfg.Seed = appCfg.Play.Seed
	return cfg
}

// bestTiler and historyReader keep a nil store from becoming a non-nil interface.
func bestTiler(store *storage.Store) tui.BestTiler {
	if store == nil {
		return nil
	}
	return store
}

func historyReader(store *storage.Store) tui.HistoryReader {
	if store == nil {
		return nil
	}
	return store
}
