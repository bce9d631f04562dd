package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// Directions returns all four directions in declaration order.
func Directions() []Direction {
	return []Direction{DirLeft, DirUp, DirRight, DirDown}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection parses a direction name. Single-letter forms (l, u, r, d)
// are accepted as well.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return DirLeft, nil
	case "up", "u":
		return DirUp, nil
	case "right", "r":
		return DirRight, nil
	case "down", "d":
		return DirDown, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
