// t2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	t2048 list               - List board presets
//	t2048 play [preset]      - Play a preset (menu when omitted)
//	t2048 history [preset]   - Show finished games
//	t2048 simulate           - Play random games headless and check the rules
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set history database path (default: ~/.t2048/history.db)
//	--config <path>      - Use a config file instead of the search path
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Resolved by the root PersistentPreRunE
	appCfg config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide every tile in one direction; equal tiles that meet merge into their
sum. After each move that changes the board a new 2 (or, one time in ten,
a 4) appears on a random empty cell.

Available commands:
  list      - Show board presets
  play      - Play a preset
  history   - View finished games
  simulate  - Play random games headless

Examples:
  t2048 list
  t2048 play
  t2048 play 2048_5x5 --seed 42
  t2048 history 2048 --tui
  t2048 simulate --games 100 --preset 2048_4x6`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, or time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup loads config, applies flag overrides and wires package settings.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagFPS > 0 {
		cfg.Play.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Play.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.History.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appCfg = cfg

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           cfg.LogLevel(),
	})
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}

	t2048.SetAnimation(cfg.Animation.SlideTicks, cfg.Animation.PopTicks)
	if _, err := t2048.RegisterCustom(cfg.Board.Rows, cfg.Board.Cols); err != nil {
		return err
	}

	return nil
}

// openStore opens the history database, or returns nil when history is
// disabled or the database cannot be opened.
func openStore() *storage.Store {
	if !appCfg.History.Enabled {
		return nil
	}
	store, err := storage.Open(appCfg.DBPath())
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return nil
	}
	return store
}

// playLogger returns the logger used while the TUI owns the terminal.
// It writes to log.file, or discards everything when no file is set.
func playLogger() (*log.Logger, io.Closer) {
	if appCfg.Log.File == "" {
		return log.New(io.Discard), io.NopCloser(nil)
	}

	f, err := os.OpenFile(appCfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Warn("could not open log file", "path", appCfg.Log.File, "error", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           appCfg.LogLevel(),
	})
	return l, f
}
