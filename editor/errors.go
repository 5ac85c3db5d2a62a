package editor

import "errors"

// Error kinds surfaced by the editor core.
var (
	// ErrOutOfBounds reports a buffer mutation addressed outside the
	// document. The cursor layer clamps all coordinates, so seeing this
	// error means a dispatcher bug, not bad user input.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrNotTerminal is returned when stdin is not attached to a
	// terminal and raw mode cannot be entered.
	ErrNotTerminal = errors.New("not running in a terminal")
)
