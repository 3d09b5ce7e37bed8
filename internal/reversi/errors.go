package reversi

import (
	"errors"
	"fmt"
)

// The two error kinds of the engine. Specific errors wrap one of these,
// so callers can classify with errors.Is and phrase their own messages.
var (
	// ErrInvalidArgument covers structurally bad input, like coordinates
	// off the grid or a level outside the allowed range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState covers operations that are valid in themselves but
	// not allowed in the current game state, like moving after the game
	// ended or asking for a winner too early.
	ErrIllegalState = errors.New("illegal state")
)

var (
	// ErrOffBoard is returned for coordinates outside [1, Size].
	ErrOffBoard = fmt.Errorf("%w: coordinate outside the board", ErrInvalidArgument)

	// ErrLevel is returned for a search level outside [MinLevel, MaxLevel].
	ErrLevel = fmt.Errorf("%w: level outside the allowed range", ErrInvalidArgument)

	// ErrMoveNotAllowed is returned when a move is requested while the
	// game is over or it is the other player's turn.
	ErrMoveNotAllowed = fmt.Errorf("%w: move not allowed", ErrIllegalState)

	// ErrGameNotOver is returned when the winner is requested before the
	// game has ended.
	ErrGameNotOver = fmt.Errorf("%w: game is not over", ErrIllegalState)
)
