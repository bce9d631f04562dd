package core

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{1, time.Second},
		{0, time.Second},
		{-5, time.Second},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TickInterval(); got != tc.expected {
			t.Errorf("TickInterval() at rate %d = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, expected 0 so the platform picks one", cfg.Seed)
	}
	if cfg.TickInterval() != time.Second/60 {
		t.Errorf("TickInterval() = %v", cfg.TickInterval())
	}
}
