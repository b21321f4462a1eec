package experiments

import (
	"context"
	"testing"
	"tictactoe/experiments/metrics"
	"tictactoe/learner"
	"tictactoe/player"

	"github.com/stretchr/testify/require"
)

func TestTrain(t *testing.T) {
	t.Run("plays every game and records it", func(t *testing.T) {
		rng := learner.NewRand(1)
		a1 := learner.NewAgent(learner.WithRand(rng))
		a2 := learner.NewAgent(learner.WithRand(rng))
		collector := metrics.NewCollector()

		summary, err := Train(context.Background(), Config{Name: "training", Games: 300, LogEvery: 100, Rand: rng}, 0.4, a1, a2, collector)

		require.NoError(t, err)
		require.Equal(t, 300, summary.Games)
		require.Equal(t, summary.Games, summary.P1+summary.P2+summary.Draws)
		require.Len(t, collector.Records(), 300)
		require.Equal(t, 0.4, a1.Epsilon())
		require.Equal(t, 0.4, a2.Epsilon())
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		summary, err := Train(ctx, Config{Name: "training", Games: 10}, 0.4, learner.NewAgent(), learner.NewAgent(), nil)

		require.ErrorIs(t, err, context.Canceled)
		require.Zero(t, summary.Games)
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("trained agent beats a random player", func(t *testing.T) {
		rng := learner.NewRand(2024)
		a1 := learner.NewAgent(learner.WithRand(rng))
		a2 := learner.NewAgent(learner.WithRand(rng))
		_, err := Train(context.Background(), Config{Name: "training", Games: 20000, Rand: rng}, 0.4, a1, a2, nil)
		require.NoError(t, err)

		summary, err := Evaluate(context.Background(), Config{Name: "evaluation", Games: 500, Rand: rng}, a1, player.NewRandom(rng))

		require.NoError(t, err)
		require.Greater(t, summary.P1, summary.P2, "Trained agent should win more often than the random player")
		require.Equal(t, 0.4, a1.Epsilon(), "Exploration rate should be restored")
	})
}

func TestSummaryString(t *testing.T) {
	require.Equal(t, "no games", Summary{}.String())
	require.Equal(t,
		"4 games: player 1 won 2 (50.0%), player 2 won 1 (25.0%), 1 draws (25.0%)",
		Summary{Games: 4, P1: 2, P2: 1, Draws: 1}.String())
}
