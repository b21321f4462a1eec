package experiments

import (
	"context"
	"fmt"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/learner"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Name     string
	Games    int
	LogEvery int          // Progress log interval, 0 disables progress logs
	Rand     learner.Rand // Draws the starting participant of each game
}

// Summary counts the outcomes of a series of games.
type Summary struct {
	Games int
	P1    int
	P2    int
	Draws int
}

func (s *Summary) add(status engine.Status) {
	s.Games++
	switch status.Winner() {
	case 0:
		s.P1++
	case 1:
		s.P2++
	default:
		s.Draws++
	}
}

func (s Summary) String() string {
	if s.Games == 0 {
		return "no games"
	}
	pct := func(n int) float64 { return 100 * float64(n) / float64(s.Games) }
	return fmt.Sprintf("%d games: player 1 won %d (%.1f%%), player 2 won %d (%.1f%%), %d draws (%.1f%%)",
		s.Games, s.P1, pct(s.P1), s.P2, pct(s.P2), s.Draws, pct(s.Draws))
}

// Run plays cfg.Games sequential matches between p1 and p2. Each match owns a
// fresh board; the participants carry over between matches. It stops early
// when ctx is cancelled, returning the games played so far.
func Run(ctx context.Context, cfg Config, p1, p2 engine.Participant, collector metrics.Collector) (Summary, error) {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	if cfg.Rand == nil {
		cfg.Rand = learner.NewRand(0)
	}
	var summary Summary

	log.Info().Msgf("starting %s: %d games...", cfg.Name, cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Msgf("%s interrupted after %d games", cfg.Name, i)
			return summary, err
		}

		result, err := engine.NewGame(p1, p2, engine.WithRand(cfg.Rand)).Run()
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}
		summary.add(result.Status)
		collector.Record(result)

		if cfg.LogEvery > 0 && (i+1)%cfg.LogEvery == 0 {
			log.Info().Msgf("%s game %d of %d: %s", cfg.Name, i+1, cfg.Games, summary)
		}
	}

	log.Info().Msgf("completed %s: %s", cfg.Name, summary)
	return summary, nil
}

// Train runs self-play between two learning agents at the given exploration rate.
func Train(ctx context.Context, cfg Config, epsilon float64, a1, a2 *learner.Agent, collector metrics.Collector) (Summary, error) {
	a1.SetEpsilon(epsilon)
	a2.SetEpsilon(epsilon)
	return Run(ctx, cfg, a1, a2, collector)
}

// Evaluate plays a greedy agent against an opponent and restores the agent's
// exploration rate afterwards.
func Evaluate(ctx context.Context, cfg Config, agent *learner.Agent, opponent engine.Participant) (Summary, error) {
	epsilon := agent.Epsilon()
	agent.SetEpsilon(0)
	defer agent.SetEpsilon(epsilon)
	return Run(ctx, cfg, agent, opponent, nil)
}
