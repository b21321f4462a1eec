package player

import (
	"fmt"
	"tictactoe/game"
	"tictactoe/learner"
)

// Random picks a uniformly random legal cell. It does not learn.
type Random struct {
	rng learner.Rand
}

// NewRandom creates a random player, a nil source falls back to a clock-seeded one.
func NewRandom(rng learner.Rand) *Random {
	if rng == nil {
		rng = learner.NewRand(0)
	}
	return &Random{rng: rng}
}

func (r *Random) MakeMove(board game.Board) (game.Action, error) {
	actions := board.LegalActions()
	if len(actions) == 0 {
		return 0, fmt.Errorf("no legal action on board %s: %w", board, game.ErrInvalidState)
	}
	return actions[r.rng.Intn(len(actions))], nil
}

func (r *Random) Reward(float64, game.Board) {}
