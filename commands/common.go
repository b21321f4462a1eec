package commands

import (
	"context"
	"flag"
	"fmt"
	"tictactoe/experiments"
	"tictactoe/experiments/metrics"
	"tictactoe/learner"
	"tictactoe/meta"

	"github.com/rs/zerolog/log"
)

// trainer holds the flags shared by every command that trains agents.
type trainer struct {
	cfg meta.Config
	out string
}

func (t *trainer) setFlags(flags *flag.FlagSet, cfg meta.Config) {
	t.cfg = cfg
	flags.IntVar(&t.cfg.Episodes, "episodes", cfg.Episodes, "number of self-play training games")
	flags.Float64Var(&t.cfg.TrainingEpsilon, "epsilon", cfg.TrainingEpsilon, "exploration rate while training")
	flags.Float64Var(&t.cfg.Alpha, "alpha", cfg.Alpha, "learning rate")
	flags.Float64Var(&t.cfg.Gamma, "gamma", cfg.Gamma, "discount factor")
	flags.Float64Var(&t.cfg.DefaultQ, "default-q", cfg.DefaultQ, "value of unseen state/action pairs")
	flags.Uint64Var(&t.cfg.Seed, "seed", cfg.Seed, "random seed, 0 seeds from the clock")
	flags.IntVar(&t.cfg.LogEvery, "log-every", cfg.LogEvery, "games between progress logs, 0 to disable")
	flags.IntVar(&t.cfg.Window, "window", cfg.Window, "games per point of the outcome chart")
	flags.StringVar(&t.out, "out", "", "directory to write game records and the outcome chart to")
}

// train builds two fresh agents sharing one random source and runs self-play.
func (t *trainer) train(ctx context.Context, rng learner.Rand) (*learner.Agent, *learner.Agent, error) {
	if err := t.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	options := []learner.Option{
		learner.WithAlpha(t.cfg.Alpha),
		learner.WithGamma(t.cfg.Gamma),
		learner.WithDefaultValue(t.cfg.DefaultQ),
		learner.WithRand(rng),
	}
	a1 := learner.NewAgent(options...)
	a2 := learner.NewAgent(options...)

	var collector metrics.Collector = metrics.NewDummyCollector()
	if t.out != "" {
		collector = metrics.NewCollector()
	}

	log.Info().Msg("currently training the AI")
	cfg := experiments.Config{Name: "training", Games: t.cfg.Episodes, LogEvery: t.cfg.LogEvery, Rand: rng}
	if _, err := experiments.Train(ctx, cfg, t.cfg.TrainingEpsilon, a1, a2, collector); err != nil {
		return nil, nil, fmt.Errorf("training failed: %w", err)
	}
	log.Info().Msgf("done with training, %d table entries", a1.Table().Len())

	if t.out != "" {
		if err := t.write(collector.Records()); err != nil {
			return nil, nil, err
		}
	}
	return a1, a2, nil
}

func (t *trainer) write(records []metrics.GameRecord) error {
	writer, err := metrics.NewWriter(t.out, "training")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteGameRecords(records)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	rates := metrics.Rolling(records, t.cfg.Window)
	err = writer.WriteRates(rates)
	if err != nil {
		return fmt.Errorf("failed to write rates: %w", err)
	}
	path, err := writer.WriteChart("Self-play outcomes", rates)
	if err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	log.Info().Msgf("stored outcome chart at %s", path)
	return nil
}
