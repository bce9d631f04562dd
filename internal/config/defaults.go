package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It matches the embedded defaults/t2048.yaml.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows: 4,
			Cols: 4,
		},
		Play: PlayConfig{
			TickRate: 60,
			Seed:     0,
		},
		Animation: AnimationConfig{
			SlideTicks: 8,
			PopTicks:   6,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
