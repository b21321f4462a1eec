package learner

import (
	"testing"
	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

// stubRand returns scripted values, repeating the last one when exhausted.
type stubRand struct {
	floats []float64
	ints   []int
	intns  []int // n passed to each Intn call
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	f := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return f
}

func (r *stubRand) Intn(n int) int {
	r.intns = append(r.intns, n)
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return i % n
}

const (
	E = game.Empty
	A = game.MarkA
	B = game.MarkB
)

func TestMakeMove(t *testing.T) {
	t.Run("greedy agent picks the strictly best action", func(t *testing.T) {
		agent := NewAgent(WithEpsilon(0), WithRand(&stubRand{}))
		board := game.Board{}
		for a := game.Action(0); a < game.Size; a++ {
			agent.Table().Set(board, a, float64(a)*0.1)
		}
		agent.Table().Set(board, 4, 5)

		for i := 0; i < 10; i++ {
			got, err := agent.MakeMove(board)
			require.NoError(t, err)
			require.Equal(t, game.Action(4), got, "Center has the highest value")
		}
	})

	t.Run("ties are broken by the random source", func(t *testing.T) {
		rng := &stubRand{floats: []float64{0.9}, ints: []int{1}}
		agent := NewAgent(WithEpsilon(0.1), WithRand(rng))
		board := game.NewBoard(A, E, B, E, E, E, E, E, E)
		agent.Table().Set(board, 3, 2)
		agent.Table().Set(board, 7, 2)

		got, err := agent.MakeMove(board)

		require.NoError(t, err)
		require.Equal(t, game.Action(7), got, "Second of the tied actions should be chosen")
		require.Equal(t, []int{2}, rng.intns, "Tie-break should draw among the tied actions only")
	})

	t.Run("exploration draws among legal actions", func(t *testing.T) {
		rng := &stubRand{floats: []float64{0.1}, ints: []int{2}}
		agent := NewAgent(WithEpsilon(0.5), WithRand(rng))
		board := game.NewBoard(A, E, B, E, A, E, E, E, B)

		got, err := agent.MakeMove(board)

		require.NoError(t, err)
		require.Equal(t, game.Action(5), got, "Third legal action should be chosen")
		require.Equal(t, []int{5}, rng.intns)
		require.Zero(t, agent.Table().Len(), "Exploration should not read the table")
	})

	t.Run("full exploration with a single legal action", func(t *testing.T) {
		board := game.NewBoard(A, B, A, A, B, B, B, A, E)
		for seed := uint64(1); seed <= 20; seed++ {
			agent := NewAgent(WithEpsilon(1), WithRand(NewRand(seed)))

			got, err := agent.MakeMove(board)

			require.NoError(t, err)
			require.Equal(t, game.Action(8), got)
		}
	})

	t.Run("full board is an invalid state", func(t *testing.T) {
		agent := NewAgent(WithRand(&stubRand{}))
		board := game.NewBoard(A, B, A, A, B, B, B, A, A)

		_, err := agent.MakeMove(board)

		require.ErrorIs(t, err, game.ErrInvalidState)
	})

	t.Run("greedy choice never picks an occupied cell", func(t *testing.T) {
		agent := NewAgent(WithEpsilon(0), WithRand(NewRand(7)))
		board := game.NewBoard(A, E, B)
		agent.Table().Set(board, 0, 100)

		got, err := agent.MakeMove(board)

		require.NoError(t, err)
		require.Contains(t, board.LegalActions(), got)
	})
}

func TestReward(t *testing.T) {
	t.Run("temporal-difference update", func(t *testing.T) {
		agent := NewAgent(
			WithEpsilon(0), WithAlpha(0.5), WithGamma(0.8), WithDefaultValue(1),
			WithRand(&stubRand{}),
		)
		prior := game.NewBoard(A, B, E, E, E, E, E, E, E)
		agent.Table().Set(prior, 2, 3)

		action, err := agent.MakeMove(prior)
		require.NoError(t, err)
		require.Equal(t, game.Action(2), action)

		next := prior
		require.NoError(t, next.Place(action, A))
		agent.Table().Set(next, 5, 4)

		agent.Reward(10, next)

		// prev = 3, nextMax = 4 over the prior state's legal actions on the new board
		expected := 3 + 0.5*(10+0.8*4-3)
		require.InDelta(t, expected, agent.Table().Get(prior, 2), 1e-9)
	})

	t.Run("next maximum includes the cell just filled", func(t *testing.T) {
		agent := NewAgent(
			WithEpsilon(0), WithAlpha(1), WithGamma(1), WithDefaultValue(0),
			WithRand(&stubRand{}),
		)
		prior := game.NewBoard(A, B, E, B, A, B, A, B, E)
		agent.Table().Set(prior, 8, 1)

		action, err := agent.MakeMove(prior)
		require.NoError(t, err)
		require.Equal(t, game.Action(8), action)

		next := prior
		require.NoError(t, next.Place(8, A))
		// Occupied on the new board, yet legal in the remembered state
		agent.Table().Set(next, 8, 6)

		agent.Reward(0, next)

		require.InDelta(t, 6.0, agent.Table().Get(prior, 8), 1e-9,
			"Lookup should range over the prior state's legal actions")
	})

	t.Run("no-op without a remembered action", func(t *testing.T) {
		agent := NewAgent(WithRand(&stubRand{}))

		agent.Reward(10, game.Board{})

		require.Zero(t, agent.Table().Len(), "Reward without a move should not touch the table")
	})

	t.Run("memory is consumed by the reward", func(t *testing.T) {
		agent := NewAgent(WithEpsilon(0), WithAlpha(1), WithGamma(0), WithRand(&stubRand{}))
		prior := game.Board{}

		action, err := agent.MakeMove(prior)
		require.NoError(t, err)
		next := prior
		require.NoError(t, next.Place(action, B))

		agent.Reward(-10, next)
		require.Equal(t, -10.0, agent.Table().Get(prior, action))

		agent.Reward(10, next)
		require.Equal(t, -10.0, agent.Table().Get(prior, action), "Second reward should be ignored")
	})

	t.Run("action zero is updated", func(t *testing.T) {
		agent := NewAgent(WithEpsilon(0), WithAlpha(1), WithGamma(0), WithRand(&stubRand{}))
		prior := game.Board{}
		agent.Table().Set(prior, 0, 50)

		action, err := agent.MakeMove(prior)
		require.NoError(t, err)
		require.Equal(t, game.Action(0), action)

		agent.Reward(10, game.NewBoard(B))

		require.Equal(t, 10.0, agent.Table().Get(prior, 0))
	})
}

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		agent := NewAgent()

		require.Equal(t, Epsilon, agent.epsilon)
		require.Equal(t, Alpha, agent.alpha)
		require.Equal(t, Gamma, agent.gamma)
		require.Equal(t, DefaultValue, agent.defaultValue)
		require.NotNil(t, agent.rng)
	})

	t.Run("out of range values are ignored", func(t *testing.T) {
		agent := NewAgent(WithEpsilon(2), WithAlpha(0), WithGamma(-1))

		require.Equal(t, Epsilon, agent.epsilon)
		require.Equal(t, Alpha, agent.alpha)
		require.Equal(t, Gamma, agent.gamma)
	})

	t.Run("set epsilon panics out of range", func(t *testing.T) {
		agent := NewAgent()

		require.Panics(t, func() { agent.SetEpsilon(1.5) })
		agent.SetEpsilon(0)
		require.Equal(t, 0.0, agent.Epsilon())
	})
}
