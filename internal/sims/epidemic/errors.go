package epidemic

import "errors"

var (
	// ErrGridSize indicates a non-positive grid size at construction.
	ErrGridSize = errors.New("epidemic: grid size must be positive")
	// ErrOutOfBounds indicates cell coordinates outside the grid.
	ErrOutOfBounds = errors.New("epidemic: cell coordinates out of range")
)
