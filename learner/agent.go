package learner

import (
	"fmt"
	"tictactoe/game"
	"tictactoe/utils"
)

type Option func(a *Agent)

func WithEpsilon(epsilon float64) Option {
	return func(a *Agent) {
		if epsilon >= 0 && epsilon <= 1 {
			a.epsilon = epsilon
		}
	}
}

func WithAlpha(alpha float64) Option {
	return func(a *Agent) {
		if alpha > 0 && alpha <= 1 {
			a.alpha = alpha
		}
	}
}

func WithGamma(gamma float64) Option {
	return func(a *Agent) {
		if gamma >= 0 && gamma <= 1 {
			a.gamma = gamma
		}
	}
}

func WithDefaultValue(value float64) Option {
	return func(a *Agent) {
		a.defaultValue = value
	}
}

func WithRand(rng Rand) Option {
	return func(a *Agent) {
		if rng != nil {
			a.rng = rng
		}
	}
}

// Agent is a tabular Q-learning player with an epsilon-greedy policy.
type Agent struct {
	epsilon      float64
	alpha        float64
	gamma        float64
	defaultValue float64
	rng          Rand
	table        *Table

	// Turn memory, set by MakeMove and consumed by Reward
	state  game.State
	action game.Action
	moved  bool
}

func NewAgent(options ...Option) *Agent {
	a := &Agent{ // Default values
		epsilon:      Epsilon,
		alpha:        Alpha,
		gamma:        Gamma,
		defaultValue: DefaultValue,
	}
	for _, option := range options {
		option(a)
	}
	if a.rng == nil {
		a.rng = NewRand(0)
	}
	a.table = NewTable(a.defaultValue)
	return a
}

// SetEpsilon changes the exploration rate, e.g. 0 for pure exploitation after training.
func (a *Agent) SetEpsilon(epsilon float64) {
	if epsilon < 0 || epsilon > 1 {
		panic(fmt.Sprintf("epsilon %v out of [0, 1]", epsilon))
	}
	a.epsilon = epsilon
}

func (a *Agent) Epsilon() float64 {
	return a.epsilon
}

func (a *Agent) Table() *Table {
	return a.table
}

// MakeMove remembers the board and returns an epsilon-greedy action over it.
func (a *Agent) MakeMove(board game.Board) (game.Action, error) {
	a.state = board
	actions := board.LegalActions()
	if len(actions) == 0 {
		a.moved = false
		return 0, fmt.Errorf("no legal action on board %s: %w", board, game.ErrInvalidState)
	}

	if a.rng.Float64() < a.epsilon { // Explore
		a.remember(actions[a.rng.Intn(len(actions))])
		return a.action, nil
	}

	// Exploit, breaking ties between maximal values uniformly at random
	values := make([]float64, len(actions))
	for i, action := range actions {
		values[i] = a.table.Get(a.state, action)
	}
	best := utils.ArgMaxAll(values)
	if len(best) > 1 {
		a.remember(actions[best[a.rng.Intn(len(best))]])
	} else {
		a.remember(actions[best[0]])
	}
	return a.action, nil
}

func (a *Agent) remember(action game.Action) {
	a.action = action
	a.moved = true
}

// Reward applies a temporal-difference update to the last (state, action) pair
// and forgets it. It is a no-op if the agent has not moved since the last reward.
//
// The next-state maximum ranges over the legal actions of the remembered state,
// not of the new board, so the cell the agent just filled is still looked up.
func (a *Agent) Reward(signal float64, board game.Board) {
	if !a.moved {
		return
	}
	defer a.Reset()

	prev := a.table.Get(a.state, a.action)
	actions := a.state.LegalActions()
	next := make([]float64, len(actions))
	for i, action := range actions {
		next[i] = a.table.Get(board, action)
	}
	nextMax := utils.Max(next)
	a.table.Set(a.state, a.action, prev+a.alpha*(signal+a.gamma*nextMax-prev))
}

// Reset clears the turn memory.
func (a *Agent) Reset() {
	a.state = game.Board{}
	a.action = 0
	a.moved = false
}
