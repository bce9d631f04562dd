// Package t2048 plays the 2048 engine inside the terminal platform.
// Each preset is one board size registered with the registry.
package t2048

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Preset is a named board size.
type Preset struct {
	ID    string
	Title string
	Rows  int
	Cols  int
}

// CustomID is the registry ID used for a board size taken from config.
const CustomID = "2048_custom"

// ErrCustomTaken is returned when the custom preset already holds another size.
var ErrCustomTaken = errors.New("t2048: custom board already registered")

// Presets lists the built-in board sizes.
var Presets = []Preset{
	{ID: "2048", Title: "2048", Rows: engine.DefaultRows, Cols: engine.DefaultCols},
	{ID: "2048_3x3", Title: "2048 (3x3)", Rows: 3, Cols: 3},
	{ID: "2048_5x5", Title: "2048 (5x5)", Rows: 5, Cols: 5},
	{ID: "2048_6x6", Title: "2048 (6x6)", Rows: 6, Cols: 6},
	{ID: "2048_4x6", Title: "2048 (4x6 wide)", Rows: 4, Cols: 6},
}

func init() {
	for _, p := range Presets {
		registry.Register(p.ID, func() registry.Game {
			return New(p)
		})
	}
}

// RegisterCustom registers a preset for a board size that no built-in
// preset covers. It returns the ID to play, which is a built-in one when
// the size already exists.
func RegisterCustom(rows, cols int) (string, error) {
	if rows <= 0 || cols <= 0 {
		return "", fmt.Errorf("t2048: custom board: %w", engine.ErrInvalidSize)
	}
	for _, p := range Presets {
		if p.Rows == rows && p.Cols == cols {
			return p.ID, nil
		}
	}
	if info, ok := registry.Lookup(CustomID); ok {
		if info.Rows != rows || info.Cols != cols {
			return "", fmt.Errorf("%w as %dx%d, want %dx%d", ErrCustomTaken, info.Rows, info.Cols, rows, cols)
		}
		return CustomID, nil
	}

	p := Preset{
		ID:    CustomID,
		Title: fmt.Sprintf("2048 (%dx%d)", rows, cols),
		Rows:  rows,
		Cols:  cols,
	}
	registry.Register(p.ID, func() registry.Game {
		return New(p)
	})
	return p.ID, nil
}
