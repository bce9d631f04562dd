// Package config provides YAML-based configuration loading for the
// 2048 player: board size, timing, history storage and logging.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete player configuration.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Play      PlayConfig      `yaml:"play"`
	Animation AnimationConfig `yaml:"animation"`
	History   HistoryConfig   `yaml:"history"`
	Log       LogConfig       `yaml:"log"`
}

// BoardConfig sets the size used by the custom preset.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// PlayConfig defines simulation timing.
type PlayConfig struct {
	TickRate int   `yaml:"tick_rate"` // Ticks per second
	Seed     int64 `yaml:"seed"`      // 0 picks a seed from the clock
}

// AnimationConfig defines animation lengths in ticks. Zero disables a phase.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
}

// HistoryConfig controls the finished-games database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"` // Empty uses ~/.t2048/history.db
}

// LogConfig controls logging. The TUI owns the terminal, so play logs go
// to File or nowhere.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalid, c.Board.Rows, c.Board.Cols)
	}
	if c.Play.TickRate <= 0 {
		return fmt.Errorf("%w: play.tick_rate %d", ErrInvalid, c.Play.TickRate)
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 {
		return fmt.Errorf("%w: negative animation ticks", ErrInvalid)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// LogLevel returns the parsed log level, or info if it does not parse.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
