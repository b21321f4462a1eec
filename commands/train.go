package commands

import (
	"context"
	"flag"
	"tictactoe/experiments"
	"tictactoe/learner"
	"tictactoe/meta"
	"tictactoe/player"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type TrainCommand struct {
	trainer
	Config meta.Config

	evalGames int
}

func (*TrainCommand) Name() string     { return "train" }
func (*TrainCommand) Synopsis() string { return "Train two agents by self-play and evaluate them" }
func (*TrainCommand) Usage() string {
	return `train [flags]
`
}

func (c *TrainCommand) SetFlags(flags *flag.FlagSet) {
	c.setFlags(flags, c.Config)
	flags.IntVar(&c.evalGames, "eval-games", c.Config.EvalGames, "games against a random player after training")
}

func (c *TrainCommand) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng := learner.NewRand(c.cfg.Seed)
	a1, _, err := c.train(ctx, rng)
	if err != nil {
		log.Error().Err(err).Msg("train")
		return subcommands.ExitFailure
	}

	if c.evalGames > 0 {
		cfg := experiments.Config{Name: "evaluation against random", Games: c.evalGames, Rand: rng}
		summary, err := experiments.Evaluate(ctx, cfg, a1, player.NewRandom(rng))
		if err != nil {
			log.Error().Err(err).Msg("evaluate")
			return subcommands.ExitFailure
		}
		log.Info().Msgf("trained agent as player 1: %s", summary)
	}
	return subcommands.ExitSuccess
}
