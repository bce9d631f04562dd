package engine

import "errors"

var (
	ErrInvalidSize      = errors.New("board dimensions must be positive")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrOutOfBounds      = errors.New("cell out of bounds")
	ErrCellOccupied     = errors.New("cell already occupied")
	ErrInvalidValue     = errors.New("tile value must be a power of two >= 2")
)
