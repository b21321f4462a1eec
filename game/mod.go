package game

import "errors"

// Size is the number of cells on the 3x3 grid.
const Size = 9

var (
	// ErrInvalidAction is returned when an action references an occupied or out-of-range cell.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidState is returned when a move is requested on a board with no legal action.
	ErrInvalidState = errors.New("invalid state")
)

type Mark int8

const (
	Empty Mark = iota
	MarkA
	MarkB
)

func (m Mark) String() string {
	switch m {
	case MarkA:
		return "O"
	case MarkB:
		return "X"
	default:
		return " "
	}
}

// Action is a cell index in [0, Size).
type Action int

func (a Action) Valid() bool {
	return a >= 0 && a < Size
}

// State is an immutable board snapshot used as a lookup key.
// Two boards with the same cells are the same State regardless of history.
type State = Board
