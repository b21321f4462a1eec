package engine

import (
	"tictactoe/game"
	"time"
)

// Rewards dispatched to participants at the end of a match
const (
	Win  = 10.0
	Lose = -10.0
	Tie  = 0.0
)

// Participant is anything that can choose moves and receive the final reward.
type Participant interface {
	// MakeMove returns the cell to mark on the given board
	MakeMove(board game.Board) (game.Action, error)
	// Reward receives the outcome signal together with the final board
	Reward(signal float64, board game.Board)
}

type Status int

const (
	InProgress Status = iota
	WonByA
	WonByB
	Draw
)

func (s Status) String() string {
	switch s {
	case WonByA:
		return "won by A"
	case WonByB:
		return "won by B"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Winner returns the index of the winning participant (0 or 1), or -1.
func (s Status) Winner() int {
	switch s {
	case WonByA:
		return 0
	case WonByB:
		return 1
	default:
		return -1
	}
}

// Result summarises a finished match. Participant 0 holds MarkA, participant 1 MarkB.
type Result struct {
	Status   Status
	Board    game.Board
	Starter  int // Index of the participant that moved first
	Moves    int
	Duration time.Duration
}
