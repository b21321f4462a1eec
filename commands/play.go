package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"tictactoe/engine"
	"tictactoe/learner"
	"tictactoe/meta"
	"tictactoe/player"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type PlayCommand struct {
	trainer
	Config meta.Config

	// Human input and output, stdin and stdout when nil
	In  io.Reader
	Out io.Writer

	color bool
}

func (*PlayCommand) Name() string     { return "play" }
func (*PlayCommand) Synopsis() string { return "Train an agent, then play one game against it" }
func (*PlayCommand) Usage() string {
	return `play [flags]
`
}

func (c *PlayCommand) SetFlags(flags *flag.FlagSet) {
	c.setFlags(flags, c.Config)
	flags.BoolVar(&c.color, "color", true, "colour the board")
}

func (c *PlayCommand) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, out := c.In, c.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	rng := learner.NewRand(c.cfg.Seed)
	agent, _, err := c.train(ctx, rng)
	if err != nil {
		log.Error().Err(err).Msg("train")
		return subcommands.ExitFailure
	}

	// No exploration: the agent only uses what it learned
	agent.SetEpsilon(0)
	renderer := player.NewRenderer(c.color)
	human := player.NewHuman(in, out, renderer)

	result, err := engine.NewGame(agent, human, engine.WithRand(rng)).Run()
	if err != nil {
		log.Error().Err(err).Msg("play")
		return subcommands.ExitFailure
	}

	renderer.Show(out, result.Board)
	renderer.Announce(out, announcement(result.Status))
	return subcommands.ExitSuccess
}

func announcement(status engine.Status) string {
	switch status {
	case engine.WonByA:
		return "The AI won!"
	case engine.WonByB:
		return "You won!"
	case engine.Draw:
		return "It is a tie!"
	default:
		return fmt.Sprintf("Game ended: %s", status)
	}
}
