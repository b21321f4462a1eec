package engine

import (
	"fmt"
	"tictactoe/game"
	"tictactoe/learner"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(g *Game)

// WithRand sets the source used to draw the starting participant.
func WithRand(rng learner.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithStarter forces participant 0 or 1 to move first.
func WithStarter(starter int) Option {
	return func(g *Game) {
		if starter == 0 || starter == 1 {
			g.starter = starter
		}
	}
}

// Game is a single match between two participants. Participant 0 always writes
// MarkA and participant 1 MarkB. A Game is discarded once Run returns.
type Game struct {
	players   [2]Participant
	board     game.Board
	firstTurn bool
	starter   int
	rng       learner.Rand
	done      bool
}

func NewGame(p1, p2 Participant, options ...Option) *Game {
	if p1 == nil || p2 == nil {
		panic("need two participants")
	}
	g := &Game{
		players: [2]Participant{p1, p2},
		starter: -1,
	}
	for _, option := range options {
		option(g)
	}
	if g.starter < 0 {
		if g.rng == nil {
			g.rng = learner.NewRand(0)
		}
		g.starter = g.rng.Intn(2)
	}
	g.firstTurn = g.starter == 0
	return g
}

// Board returns a snapshot of the current board.
func (g *Game) Board() game.Board {
	return g.board
}

// Run plays the match to completion and dispatches the terminal rewards.
// An invalid move from a participant aborts the match with an error.
func (g *Game) Run() (Result, error) {
	if g.done {
		return Result{}, fmt.Errorf("game is over - no moves allowed")
	}
	defer func() { g.done = true }()

	start := time.Now()
	moves := 0
	log.Debug().Msgf("player %d is starting", g.starter)

	for {
		current, other := 1, 0
		marks := [2]game.Mark{game.MarkB, game.MarkA}
		if g.firstTurn {
			current, other = 0, 1
			marks = [2]game.Mark{game.MarkA, game.MarkB}
		}

		outcome := game.Evaluate(g.board, marks[0], marks[1])
		if outcome.Over() {
			status := g.dispatch(outcome, current, other, marks)
			log.Debug().Msgf("game over after %d moves: %s %s", moves, status, g.board)
			return Result{
				Status:   status,
				Board:    g.board,
				Starter:  g.starter,
				Moves:    moves,
				Duration: time.Since(start),
			}, nil
		}

		// Next participant's turn in the next iteration
		g.firstTurn = !g.firstTurn

		action, err := g.players[current].MakeMove(g.board)
		if err != nil {
			return Result{}, fmt.Errorf("player %d failed to move: %w", current, err)
		}
		if err := g.board.Place(action, marks[0]); err != nil {
			return Result{}, fmt.Errorf("player %d played an illegal move: %w", current, err)
		}
		moves++
		log.Debug().Msgf("player %d marked cell %d: %s", current, action, g.board)
	}
}

func (g *Game) dispatch(outcome game.Outcome, current, other int, marks [2]game.Mark) Status {
	final := g.board
	switch {
	case outcome.Status == game.Won && outcome.Winner == marks[0]:
		g.players[current].Reward(Win, final)
		g.players[other].Reward(Lose, final)
		return wonBy(current)
	case outcome.Status == game.Won && outcome.Winner == marks[1]:
		g.players[other].Reward(Win, final)
		g.players[current].Reward(Lose, final)
		return wonBy(other)
	default:
		g.players[current].Reward(Tie, final)
		g.players[other].Reward(Tie, final)
		return Draw
	}
}

func wonBy(player int) Status {
	if player == 0 {
		return WonByA
	}
	return WonByB
}
